package identity

import (
	"context"

	"pfp3/internal/domain/model"
)

// Resolver maps an opaque caller credential to a user identity. Pure lookup,
// no side effects; implementations fail with entity.ErrUnauthenticated when the
// credential maps to no known identity.
type Resolver interface {
	Resolve(ctx context.Context, credential string) (*model.User, error)
}
