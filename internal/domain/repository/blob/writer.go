package blob

import (
	"context"

	"pfp3/internal/domain/entity"
)

// Writer persists a validated image under a freshly generated blob name.
// The full content becomes visible atomically; no concurrent reader may ever
// observe a partially written blob. Save must not depend on existing blob state.
type Writer interface {
	Save(ctx context.Context, userID string, img entity.ValidatedImage) (entity.BlobRef, error)
}
