package abstraction

import (
	"context"
	"io"

	"pfp3/internal/domain/entity"
	"pfp3/internal/domain/model"
)

type Uploader interface {
	Upload(ctx context.Context, user *model.User, body io.Reader,
		fileName, mediaType string) (entity.UploadResult, error)
}
