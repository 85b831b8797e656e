package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nexthire/auth-service/internal/domain"
)

type SeederHasher interface {
	Hash(password string) (string, error)
}

type SeederRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

type SeedUser struct {
	Name  string
	Email string
	Role  string
	Pass  string
}

// DevSeeds are the local development accounts, one per role.
var DevSeeds = []SeedUser{
	{Name: "Sam Seeker", Email: "seeker@example.com", Role: string(domain.RoleJobSeeker), Pass: "SeekerPassword1"},
	{Name: "Riley Recruiter", Email: "recruiter@example.com", Role: string(domain.RoleRecruiter), Pass: "RecruiterPassword1"},
}

// SeedUsers inserts seeds into any credential store. Duplicates are ignored
// so it is safe across restarts. Returns the number of users created.
func SeedUsers(ctx context.Context, repo SeederRepo, hasher SeederHasher, seeds []SeedUser, log zerolog.Logger) int {
	created := 0
	for _, s := range seeds {
		hash, err := hasher.Hash(s.Pass)
		if err != nil {
			log.Warn().Err(err).Str("role", s.Role).Msg("seed: hash failed")
			continue
		}

		now := time.Now().UTC()
		_, err = repo.Create(ctx, domain.User{
			ID:           uuid.NewString(),
			Name:         s.Name,
			Email:        s.Email,
			PasswordHash: hash,
			Role:         s.Role,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			if !domain.Is(err, domain.CodeDuplicateEmail) {
				log.Warn().Err(err).Str("role", s.Role).Msg("seed: create failed")
			}
			continue
		}
		created++
	}

	log.Info().Int("created", created).Msg("seed: users seeded")
	return created
}
