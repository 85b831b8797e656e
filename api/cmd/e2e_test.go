//go:build e2e

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a live stack: E2E_BASE_URL=http://localhost:8080 go test -tags e2e ./api/cmd

func baseURL() string {
	if u := os.Getenv("E2E_BASE_URL"); u != "" {
		return u
	}
	return "http://localhost:8080"
}

type Client struct {
	t      *testing.T
	client *http.Client
}

func NewClient(t *testing.T) *Client {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &Client{
		t: t,
		client: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
			// surface gatekeeper redirects instead of following them
			CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
		},
	}
}

func (c *Client) do(method, path string, body any) (*http.Response, map[string]any) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, baseURL()+path, &buf)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	var resMap map[string]any
	// redirects have no JSON body
	_ = json.NewDecoder(resp.Body).Decode(&resMap)
	return resp, resMap
}

func TestE2E_SessionLifecycle(t *testing.T) {
	if _, err := http.Get(baseURL() + "/healthz"); err != nil {
		t.Skipf("no server at %s: %v", baseURL(), err)
	}

	seeker := NewClient(t)
	email := fmt.Sprintf("seeker_%d@test.com", time.Now().UnixNano())

	t.Log("Registering job seeker...")
	resp, body := seeker.do(http.MethodPost, "/api/auth/register", map[string]string{
		"name": "E2E Seeker", "email": email, "password": "secret123", "role": "job-seeker",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, "register failed: %v", body)

	t.Log("Private page without session...")
	resp, _ = seeker.do(http.MethodGet, "/job-seeker/dashboard", nil)
	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	t.Log("Logging in...")
	resp, body = seeker.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email": email, "password": "secret123", "role": "job-seeker",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, "login failed: %v", body)
	assert.NotEmpty(t, body["data"])

	resp, _ = seeker.do(http.MethodGet, "/login", nil)
	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "/job-seeker/dashboard", resp.Header.Get("Location"))

	resp, body = seeker.do(http.MethodGet, "/job-seeker/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "dashboard failed: %v", body)

	resp, _ = seeker.do(http.MethodGet, "/recruiter/dashboard", nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = seeker.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["data"].(map[string]any)
	assert.Equal(t, email, user["email"])
	assert.NotContains(t, user, "password")

	t.Log("Logging out...")
	resp, _ = seeker.do(http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = seeker.do(http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	t.Log("E2E session lifecycle completed")
}
