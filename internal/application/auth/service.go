package auth

import (
	"context"
	"errors"
	"time"

	"github.com/nexthire/auth-service/internal/domain"
)

// DefaultTokenTTL is the lifetime of a session token.
const DefaultTokenTTL = 24 * time.Hour

type Service struct {
	users   UserRepo
	hasher  PasswordHasher
	signer  TokenSigner
	revoked RevocationStore
	pub     EventPublisher

	tokenTTL time.Duration
	now      func() time.Time
	audit    func(ctx context.Context, action string, fields map[string]string)

	// hash compared against when the email is unknown so that a miss
	// costs roughly the same as a wrong password.
	dummyHash string
}

type Config struct {
	TokenTTL time.Duration
}

// NewService wires the auth service. revoked and pub may be nil: without a
// revocation store tokens live until expiry, without a publisher no events
// are emitted.
func NewService(
	users UserRepo,
	hasher PasswordHasher,
	signer TokenSigner,
	revoked RevocationStore,
	pub EventPublisher,
	cfg Config,
) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	s := &Service{
		users:    users,
		hasher:   hasher,
		signer:   signer,
		revoked:  revoked,
		pub:      pub,
		tokenTTL: ttl,
		now:      time.Now,
		audit:    func(context.Context, string, map[string]string) {},
	}
	if h, err := hasher.Hash("next-hire-timing-equalizer"); err == nil {
		s.dummyHash = h
	}
	return s
}

func (s *Service) WithAudit(fn func(ctx context.Context, action string, fields map[string]string)) *Service {
	if fn != nil {
		s.audit = fn
	}
	return s
}

// TokenTTL is exposed so the transport can align cookie lifetime with the token.
func (s *Service) TokenTTL() time.Duration { return s.tokenTTL }

// storeErr keeps domain errors produced by a repo and wraps anything else as StoreError.
func storeErr(err error) error {
	var de *domain.Error
	if errors.As(err, &de) && de.Kind == domain.KindInfrastructure {
		return de
	}
	return domain.ErrStore(err)
}
