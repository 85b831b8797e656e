package security

import (
	"net/http"
	"time"
)

const (
	// TokenCookieName holds the session JWT. HttpOnly.
	TokenCookieName = "token"
	// RoleCookieName holds the role as a routing hint for the gatekeeper.
	// Not HttpOnly: client script reads it to pick a dashboard.
	RoleCookieName = "role"
)

func SetSessionCookies(w http.ResponseWriter, token, role string, ttl time.Duration, secure bool) {
	maxAge := int(ttl.Seconds())
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RoleCookieName,
		Value:    role,
		Path:     "/",
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func ClearSessionCookies(w http.ResponseWriter, secure bool) {
	for _, name := range []string{TokenCookieName, RoleCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: name == TokenCookieName,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
}

// ReadToken returns the session token cookie, or "" when absent.
func ReadToken(r *http.Request) string {
	return readCookie(r, TokenCookieName)
}

// ReadRole returns the role cookie, or "" when absent.
func ReadRole(r *http.Request) string {
	return readCookie(r, RoleCookieName)
}

func readCookie(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}
