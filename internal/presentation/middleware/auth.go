package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"pfp3/internal/domain/dto"
	"pfp3/internal/domain/repository/identity"
	"pfp3/internal/presentation"
)

// AuthMiddleware resolves the bearer credential to a user identity and stores
// it on the request context. Unauthenticated requests are rejected here,
// before the upload path touches any storage.
func AuthMiddleware(resolver identity.Resolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			credential, err := bearerCredential(ctx.Request().Header.Get(presentation.AuthKey))
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Detail: err.Error()})
			}

			user, err := resolver.Resolve(ctx.Request().Context(), credential)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized,
					dto.ErrorResponse{Detail: "Invalid authentication token."})
			}

			ctx.Set(presentation.KeyUser, user)

			return next(ctx)
		}
	}
}

func bearerCredential(authHeader string) (string, error) {
	if authHeader == "" {
		return "", fmt.Errorf("missing Authorization header")
	}
	if !strings.HasPrefix(authHeader, presentation.BearerPrefix) {
		return "", fmt.Errorf("missing Bearer prefix")
	}

	credential := strings.TrimSpace(strings.TrimPrefix(authHeader, presentation.BearerPrefix))
	if credential == "" {
		return "", fmt.Errorf("empty bearer credential")
	}

	return credential, nil
}
