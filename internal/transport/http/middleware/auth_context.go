package middleware

import (
	"context"

	"github.com/nexthire/auth-service/internal/domain"
)

type identityKey struct{}

// identity is what Auth learned from a verified session token.
type identity struct {
	userID string
	role   domain.Role
}

// WithUser stores the verified session identity for downstream handlers.
func WithUser(ctx context.Context, userID, role string) context.Context {
	return context.WithValue(ctx, identityKey{}, identity{userID: userID, role: domain.Role(role)})
}

func identityFrom(ctx context.Context) (identity, bool) {
	id, ok := ctx.Value(identityKey{}).(identity)
	return id, ok
}

// UserIDFromContext returns the session user's id. Only set behind Auth.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := identityFrom(ctx)
	return id.userID, ok && id.userID != ""
}

// RoleFromContext returns the role taken from the token claims, never from
// the role cookie.
func RoleFromContext(ctx context.Context) (string, bool) {
	id, ok := identityFrom(ctx)
	return string(id.role), ok && id.role != ""
}
