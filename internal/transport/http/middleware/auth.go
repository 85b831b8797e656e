package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/nexthire/auth-service/internal/application/auth"
	"github.com/nexthire/auth-service/internal/domain"
	"github.com/nexthire/auth-service/internal/infrastructure/security"
)

// Authenticator verifies a raw session token, including revocation.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (auth.TokenClaims, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// ExtractToken reads the session token from the token cookie, falling back to
// Authorization: Bearer <token> for non-browser clients.
func ExtractToken(r *http.Request) string {
	if tok := strings.TrimSpace(security.ReadToken(r)); tok != "" {
		return tok
	}
	h := r.Header.Get("Authorization")
	parts := strings.SplitN(h, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// ClearSessionOnAuthError wraps writeErr so a rejected session (missing,
// invalid or expired token) also drops both session cookies. Infrastructure
// failures leave the cookies alone.
func ClearSessionOnAuthError(writeErr WriteErrFunc, secure bool) WriteErrFunc {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		var de *domain.Error
		if errors.As(err, &de) && de.Kind == domain.KindAuth {
			security.ClearSessionCookies(w, secure)
		}
		writeErr(w, r, err)
	}
}

// Auth verifies the session token and injects the identity into the request
// context. Unlike the gatekeeper this is a real authorization check.
func Auth(authn Authenticator, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := authn.Authenticate(r.Context(), ExtractToken(r))
			if err != nil {
				writeErr(w, r, err)
				return
			}

			ctx := WithUser(r.Context(), claims.UserID, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
