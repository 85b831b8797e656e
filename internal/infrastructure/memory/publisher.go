package memory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/nexthire/auth-service/internal/application/auth"
)

// NoopPublisher logs events instead of sending them. Used when RabbitMQ is
// not configured.
type NoopPublisher struct {
	log zerolog.Logger
}

func NewNoopPublisher(log zerolog.Logger) *NoopPublisher {
	return &NoopPublisher{log: log}
}

func (p *NoopPublisher) PublishUserRegistered(ctx context.Context, evt auth.UserRegisteredEvent) error {
	p.log.Debug().
		Str("event", "user.registered").
		Str("user_id", evt.UserID).
		Str("role", evt.Role).
		Msg("noop publish")
	return nil
}
