package auth

import (
	"context"
	"time"

	"github.com/nexthire/auth-service/internal/domain"
)

/*
UserRepo
--------
Credential store port for user profiles.
Only describes WHAT the auth service needs, not HOW it's stored.
Implementations canonicalize emails with domain.CanonicalEmail.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt. Compare returns nil on match.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error
}

/*
TokenSigner
-----------
Issues and verifies session tokens (JWT).
Used by the service, the auth middleware and the strict gatekeeper.
*/
type TokenClaims struct {
	UserID    string
	Email     string
	Role      string
	TokenID   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type TokenSigner interface {
	SignSessionToken(userID, email, role string, ttl time.Duration) (string, error)
	VerifySessionToken(token string) (TokenClaims, error)
}

/*
RevocationStore
---------------
Denylist of token IDs revoked before their natural expiry (logout).
Backed by Redis, or memory in dev.
*/
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

/*
EventPublisher
--------------
Publishes account events to RabbitMQ for downstream consumers
(welcome mail, analytics). Best-effort from the service's point of view.
*/
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, evt UserRegisteredEvent) error
}

type UserRegisteredEvent struct {
	UserID string    `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Role   string    `json:"role"`
	At     time.Time `json:"at"`
}
