package auth

import (
	"context"
	"strings"

	"github.com/nexthire/auth-service/internal/domain"
)

// GetCurrentUser resolves the profile behind a session token.
// This is the strict check: signature, expiry and revocation are all verified.
func (s *Service) GetCurrentUser(ctx context.Context, token string) (domain.Profile, error) {
	claims, err := s.Authenticate(ctx, token)
	if err != nil {
		return domain.Profile{}, err
	}

	// keyed by the immutable id, not the email carried in the claims
	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if domain.Is(err, domain.CodeNotFound) {
			return domain.Profile{}, domain.ErrUserNotFound()
		}
		return domain.Profile{}, storeErr(err)
	}
	return u.Public(), nil
}

// Authenticate verifies a raw session token and returns its claims.
// Shared by GetCurrentUser and the HTTP auth middleware.
func (s *Service) Authenticate(ctx context.Context, token string) (TokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return TokenClaims{}, domain.ErrTokenMissing()
	}

	claims, err := s.signer.VerifySessionToken(token)
	if err != nil {
		if domain.Is(err, domain.CodeInvalidToken) {
			return TokenClaims{}, err
		}
		return TokenClaims{}, domain.ErrTokenInvalid()
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return TokenClaims{}, domain.ErrTokenInvalid()
	}

	if s.revoked != nil && claims.TokenID != "" {
		revoked, err := s.revoked.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			return TokenClaims{}, domain.ErrRedisUnavailable(err)
		}
		if revoked {
			return TokenClaims{}, domain.WithMeta(domain.ErrTokenInvalid(), map[string]string{"reason": "revoked"})
		}
	}
	return claims, nil
}
