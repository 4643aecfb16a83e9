// Package auth resolves bearer tokens to an identity and guards
// teacher-side routes. Student magic-link uploads bypass it.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/papertalk/papertalk/constants"
	"github.com/papertalk/papertalk/internal/common"
)

// Identity is the authenticated caller.
type Identity struct {
	UserID         uuid.UUID
	OrganizationID uuid.UUID
	Role           constants.UserRole
}

// Can reports whether the identity holds a permission.
func (id Identity) Can(permission string) bool {
	return constants.Can(id.Role, permission)
}

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (Identity, error)
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// Middleware authenticates the Authorization header and rejects requests
// without a valid bearer token.
func Middleware(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}
			id, err := a.Authenticate(r.Context(), token)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			ctx := WithIdentity(r.Context(), id)
			ctx = common.WithOrgID(ctx, id.OrganizationID.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// TokenMap is a static token table for development and tests.
type TokenMap map[string]Identity

func (m TokenMap) Authenticate(_ context.Context, token string) (Identity, error) {
	id, ok := m[token]
	if !ok {
		return Identity{}, common.ErrUnauthorized
	}
	return id, nil
}
