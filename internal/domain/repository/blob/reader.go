package blob

import (
	"context"
	"io"
)

// Reader streams a stored blob. Fails with entity.ErrBlobMissing when the
// named blob is absent from storage.
type Reader interface {
	Open(ctx context.Context, fileName string) (io.ReadCloser, int64, error)
}
