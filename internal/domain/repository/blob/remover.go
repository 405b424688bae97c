package blob

import "context"

// Remover deletes a stored blob. Idempotent: removing a non-existent or
// already-deleted blob is not an error.
type Remover interface {
	Remove(ctx context.Context, fileName string) error
}
