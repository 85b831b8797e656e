package auth

import (
	"context"
	"strings"

	"github.com/nexthire/auth-service/internal/domain"
)

// Logout revokes the token until its natural expiry. It is idempotent:
// missing, malformed or already expired tokens are a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" || s.revoked == nil {
		return nil
	}

	claims, err := s.signer.VerifySessionToken(token)
	if err != nil || claims.TokenID == "" {
		return nil
	}

	if err := s.revoked.Revoke(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		return domain.ErrRedisUnavailable(err)
	}

	s.audit(ctx, "logout", map[string]string{"user_id": claims.UserID})
	return nil
}
