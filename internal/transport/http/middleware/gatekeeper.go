package middleware

import (
	"net/http"
	"path"
	"strings"

	"github.com/nexthire/auth-service/internal/application/auth"
	"github.com/nexthire/auth-service/internal/domain"
	"github.com/nexthire/auth-service/internal/infrastructure/security"
	"github.com/nexthire/auth-service/internal/logger"
	"github.com/nexthire/auth-service/internal/metrics"
)

const LoginPath = "/login"

// Decision is the gatekeeper outcome for one navigation.
type Decision struct {
	// RedirectTo is empty when the request is allowed through.
	RedirectTo string
	// ClearSession asks the caller to drop the token and role cookies.
	ClearSession bool
}

func (d Decision) Allowed() bool { return d.RedirectTo == "" }

func Allow() Decision              { return Decision{} }
func Redirect(to string) Decision { return Decision{RedirectTo: to} }

// IsPrivate reports whether a path belongs to a role area.
func IsPrivate(p string) bool {
	return strings.HasPrefix(p, "/job-seeker") || strings.HasPrefix(p, "/recruiter")
}

// Decide is the gatekeeper state machine. It only looks at cookie presence and
// the role cookie; the role is a routing hint, not an authorization check.
//
//	private + no token          -> /login
//	public  + token + role      -> /{role}/dashboard (token validity not checked)
//	public  + token + bad role  -> /login, clear cookies (allow if already /login)
//	otherwise                   -> allow
func Decide(p, token, role string) Decision {
	private := IsPrivate(p)

	if private && token == "" {
		return Redirect(LoginPath)
	}

	if !private && token != "" {
		if domain.IsValidRole(role) {
			return Redirect(domain.DashboardPath(role))
		}
		if p == LoginPath {
			return Decision{ClearSession: true}
		}
		return Decision{RedirectTo: LoginPath, ClearSession: true}
	}

	return Allow()
}

var skipPrefixes = []string{"/_next/", "/static/", "/api/", "/healthz", "/readyz", "/metrics"}

var assetExts = map[string]struct{}{
	".html": {}, ".htm": {}, ".css": {}, ".js": {},
	".jpg": {}, ".jpeg": {}, ".webp": {}, ".png": {}, ".gif": {}, ".svg": {},
	".ttf": {}, ".woff": {}, ".woff2": {}, ".ico": {},
	".csv": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {}, ".zip": {},
	".webmanifest": {},
}

// ShouldGate reports whether the gatekeeper applies to a path. Static assets
// and service endpoints pass through untouched.
func ShouldGate(p string) bool {
	for _, pre := range skipPrefixes {
		if strings.HasPrefix(p, pre) || p+"/" == pre {
			return false
		}
	}
	_, isAsset := assetExts[strings.ToLower(path.Ext(p))]
	return !isAsset
}

// TokenVerifier is used by the strict gate.
type TokenVerifier interface {
	VerifySessionToken(token string) (auth.TokenClaims, error)
}

type GatekeeperConfig struct {
	// Verifier, when set, makes the gate verify signature and expiry and take
	// the role from the claims instead of the role cookie.
	Verifier      TokenVerifier
	SecureCookies bool
}

// Gatekeeper applies Decide to page navigations. It never fails a request.
func Gatekeeper(cfg GatekeeperConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !ShouldGate(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			token := security.ReadToken(r)
			role := security.ReadRole(r)
			staleSession := false

			if cfg.Verifier != nil && token != "" {
				claims, err := cfg.Verifier.VerifySessionToken(token)
				if err != nil {
					token, role = "", ""
					staleSession = true
				} else {
					role = claims.Role
				}
			}

			d := Decide(r.URL.Path, token, role)
			if d.ClearSession || staleSession {
				security.ClearSessionCookies(w, cfg.SecureCookies)
			}

			if d.Allowed() {
				metrics.GateDecisionsTotal.WithLabelValues("allow").Inc()
				next.ServeHTTP(w, r)
				return
			}

			metrics.GateDecisionsTotal.WithLabelValues("redirect").Inc()
			logger.WithCtx(r.Context()).Debug().
				Str("path", r.URL.Path).
				Str("to", d.RedirectTo).
				Msg("gatekeeper redirect")
			http.Redirect(w, r, d.RedirectTo, http.StatusTemporaryRedirect)
		})
	}
}
