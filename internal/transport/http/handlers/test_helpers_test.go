package http_handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/nexthire/auth-service/internal/application/auth"
	"github.com/nexthire/auth-service/internal/infrastructure/memory"
	"github.com/nexthire/auth-service/internal/infrastructure/security"
)

// mustJSONBody marshals v to JSON and returns an io.Reader for request body.
func mustJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Code    string            `json:"code"`
	Meta    map[string]string `json:"meta"`
}

func mustReadEnvelope(t *testing.T, r io.Reader) envelope {
	t.Helper()

	var env envelope
	if err := json.NewDecoder(r).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

// readCookie finds cookie by name from response headers.
func readCookie(res *http.Response, name string) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

type testEnv struct {
	svc     *auth.Service
	users   *memory.UserRepo
	revoked *memory.RevocationStore
	h       *AuthHandler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	users := memory.NewUserRepo()
	revoked := memory.NewRevocationStore()
	svc := auth.NewService(
		users,
		security.NewBcryptHasher(bcrypt.MinCost),
		security.NewJWTSigner("handler-test-secret-0123456789abcdef", "next-hire"),
		revoked,
		nil,
		auth.Config{},
	)
	return &testEnv{
		svc:     svc,
		users:   users,
		revoked: revoked,
		h:       NewAuthHandler(svc, svc.TokenTTL(), false),
	}
}
