package directory

import "context"

// Writer replaces a user's avatar pointer. The update must be atomic with
// respect to concurrent reads of the same record.
type Writer interface {
	SetAvatar(ctx context.Context, userID string, fileName *string) error
}
