package memory

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/nexthire/auth-service/internal/application/auth"
)

func TestNoopPublisher_LogsAndSucceeds(t *testing.T) {
	var buf bytes.Buffer
	p := NewNoopPublisher(zerolog.New(&buf).Level(zerolog.DebugLevel))

	err := p.PublishUserRegistered(context.Background(), auth.UserRegisteredEvent{UserID: "u1", Role: "recruiter"})
	if err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
	if !strings.Contains(buf.String(), "user.registered") {
		t.Fatalf("expected event logged, got %q", buf.String())
	}
}
