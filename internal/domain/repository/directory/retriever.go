package directory

import (
	"context"

	"pfp3/internal/domain/model"
)

type Retriever interface {
	GetByID(ctx context.Context, userID string) (*model.User, error)
}
