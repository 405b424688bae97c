package abstraction

import (
	"context"

	"pfp3/internal/domain/entity"
)

type Getter interface {
	Get(ctx context.Context, userID string) (*entity.Avatar, error)
}
