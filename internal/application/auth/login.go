package auth

import (
	"context"

	"github.com/nexthire/auth-service/internal/domain"
)

type LoginInput struct {
	Email    string
	Password string
	// Role is the role the client claims to log in as. It is checked against
	// the stored role, never used to select a profile.
	Role string
}

type LoginResult struct {
	User  domain.Profile
	Token string
}

// Login verifies credentials and role, then mints a session token.
func (s *Service) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	email := domain.CanonicalEmail(in.Email)

	var (
		u   domain.User
		err error
	)
	if email == "" {
		err = domain.ErrUserNotFound()
	} else {
		u, err = s.users.GetByEmail(ctx, email)
	}
	if err != nil {
		if s.dummyHash != "" {
			_ = s.hasher.Compare(s.dummyHash, in.Password)
		}
		s.audit(ctx, "login_failed", map[string]string{"email": email, "reason": "not_found"})
		return LoginResult{}, domain.ErrUserNotFound()
	}

	if err := s.hasher.Compare(u.PasswordHash, in.Password); err != nil {
		s.audit(ctx, "login_failed", map[string]string{"email": email, "reason": "invalid_credentials"})
		return LoginResult{}, domain.ErrInvalidCredentials()
	}

	if u.Role != in.Role {
		s.audit(ctx, "login_failed", map[string]string{"email": email, "reason": "unauthorized_role"})
		return LoginResult{}, domain.ErrUnauthorizedRole()
	}

	tok, err := s.signer.SignSessionToken(u.ID, u.Email, u.Role, s.tokenTTL)
	if err != nil {
		if domain.Is(err, "token_sign_failed") {
			return LoginResult{}, err
		}
		return LoginResult{}, domain.ErrTokenSignFailed(err)
	}

	s.audit(ctx, "login_success", map[string]string{"user_id": u.ID, "email": email, "role": u.Role})

	return LoginResult{
		User:  u.Public(),
		Token: tok,
	}, nil
}
