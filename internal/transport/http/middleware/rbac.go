package middleware

import (
	"net/http"
	"strings"

	"github.com/nexthire/auth-service/internal/domain"
)

// RequireRole only lets through identities whose verified role is one of roles.
// Assumes Auth() has already injected the role into context.
func RequireRole(writeErr WriteErrFunc, roles ...domain.Role) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		allowed[string(r)] = struct{}{}
		names = append(names, string(r))
	}
	required := strings.Join(names, "|")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok {
				// Auth not applied
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}
			if _, ok := allowed[role]; !ok {
				writeErr(w, r, domain.ErrInsufficientRole(required))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
