package identity

import (
	"context"
	"errors"

	"pfp3/internal/domain/entity"
	"pfp3/internal/domain/model"
	"pfp3/internal/domain/repository/directory"
)

// DirectoryResolver is the placeholder identity resolver: the credential space
// coincides with the user-id space, so resolving is a directory lookup.
// A real deployment substitutes a verified-token resolver behind the same
// interface without touching the upload path.
type DirectoryResolver struct {
	users directory.Retriever
}

func NewDirectoryResolver(users directory.Retriever) *DirectoryResolver {
	return &DirectoryResolver{users: users}
}

func (r *DirectoryResolver) Resolve(ctx context.Context, credential string) (*model.User, error) {
	user, err := r.users.GetByID(ctx, credential)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrUnauthenticated
		}

		return nil, err
	}

	return user, nil
}
