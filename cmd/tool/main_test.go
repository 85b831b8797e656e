package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nexthire/auth-service/internal/infrastructure/security"
)

const testSecret = "tool-test-secret-0123456789abcdef"

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestHash_PrintsVerifiableHash(t *testing.T) {
	out, err := run(t, "hash", "--cost", "4", "secret1")
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(out), []byte("secret1")))
}

func TestHash_RequiresOneArg(t *testing.T) {
	_, err := run(t, "hash")
	assert.Error(t, err)
}

func TestToken_SignThenVerify(t *testing.T) {
	tok, err := run(t, "token", "sign", "--secret", testSecret, "--id", "u1", "--email", " Ann@X.com", "--role", "recruiter")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	out, err := run(t, "token", "verify", "--secret", testSecret, tok)
	require.NoError(t, err)

	var c claimsView
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, "u1", c.UserID)
	assert.Equal(t, "ann@x.com", c.Email)
	assert.Equal(t, "recruiter", c.Role)
	assert.NotEmpty(t, c.TokenID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), c.ExpiresAt, time.Minute)
}

func TestToken_VerifyRejectsForeignSecret(t *testing.T) {
	tok, err := security.NewJWTSigner("some-other-secret-0123456789abcdef", "next-hire").
		SignSessionToken("u1", "a@x.com", "job-seeker", time.Hour)
	require.NoError(t, err)

	_, err = run(t, "token", "verify", "--secret", testSecret, tok)
	assert.Error(t, err)
}

func TestToken_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := run(t, "token", "verify", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret")
}

func TestToken_SignRejectsUnknownRole(t *testing.T) {
	_, err := run(t, "token", "sign", "--secret", testSecret, "--id", "u1", "--email", "a@x.com", "--role", "admin")
	assert.Error(t, err)
}

func TestRunSeed_MissingDSN(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&bytes.Buffer{})

	err := runSeed(cmd, &seedConfig{timeout: time.Second})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_ADDR")
}

func TestRunSeed_InvalidDSN(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	cmd.SetOut(&bytes.Buffer{})

	err := runSeed(cmd, &seedConfig{dsn: "postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1", cost: 4, timeout: 5 * time.Second})
	assert.Error(t, err)
}
