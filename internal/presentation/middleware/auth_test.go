package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfp3/internal/domain/entity"
	"pfp3/internal/domain/model"
	"pfp3/internal/presentation"
)

type stubResolver struct {
	users map[string]*model.User
}

func (r *stubResolver) Resolve(_ context.Context, credential string) (*model.User, error) {
	user, ok := r.users[credential]
	if !ok {
		return nil, entity.ErrUnauthenticated
	}

	return user, nil
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	resolver := &stubResolver{users: map[string]*model.User{
		"u1": {ID: "u1", Username: "alice"},
	}}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{"missing Authorization header", "", http.StatusUnauthorized},
		{"wrong prefix", "Basic dXNlcg==", http.StatusUnauthorized},
		{"empty credential", "Bearer ", http.StatusUnauthorized},
		{"unknown credential", "Bearer ghost", http.StatusUnauthorized},
		{"valid credential", "Bearer u1", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/users/me/avatar", http.NoBody)
			if tt.authHeader != "" {
				req.Header.Set(presentation.AuthKey, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			next := func(c echo.Context) error {
				user, ok := c.Get(presentation.KeyUser).(*model.User)
				require.True(t, ok, "middleware must store the resolved user")
				assert.Equal(t, "u1", user.ID)

				return c.NoContent(http.StatusOK)
			}

			err := AuthMiddleware(resolver)(next)(c)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
