package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/nexthire/auth-service/internal/domain"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// Register creates a profile for a new, unique email.
// The only write is the single insert; the registered event is best-effort.
func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.Profile, error) {
	email := domain.CanonicalEmail(in.Email)
	name := strings.TrimSpace(in.Name)

	switch {
	case name == "":
		return domain.Profile{}, domain.ErrMissingField("name")
	case email == "":
		return domain.Profile{}, domain.ErrMissingField("email")
	case in.Password == "":
		return domain.Profile{}, domain.ErrMissingField("password")
	case !domain.IsValidRole(in.Role):
		return domain.Profile{}, domain.ErrInvalidRole(in.Role)
	}

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return domain.Profile{}, domain.ErrEmailAlreadyExists()
	case domain.Is(err, domain.CodeNotFound):
	default:
		return domain.Profile{}, storeErr(err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return domain.Profile{}, domain.ErrHashFailed(err)
	}

	now := s.now().UTC()
	created, err := s.users.Create(ctx, domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		// lost the race against a concurrent register; the unique index caught it
		if domain.Is(err, domain.CodeDuplicateEmail) {
			return domain.Profile{}, err
		}
		return domain.Profile{}, storeErr(err)
	}

	if s.pub != nil {
		evt := UserRegisteredEvent{
			UserID: created.ID,
			Name:   created.Name,
			Email:  created.Email,
			Role:   created.Role,
			At:     now,
		}
		if perr := s.pub.PublishUserRegistered(ctx, evt); perr != nil {
			s.audit(ctx, "publish_failed", map[string]string{
				"event":   "user.registered",
				"user_id": created.ID,
				"error":   perr.Error(),
			})
		}
	}

	s.audit(ctx, "user_registered", map[string]string{
		"user_id": created.ID,
		"email":   created.Email,
		"role":    created.Role,
	})

	return created.Public(), nil
}
