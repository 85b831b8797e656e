package http_handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/nexthire/auth-service/internal/application/auth"
	"github.com/nexthire/auth-service/internal/domain"
	"github.com/nexthire/auth-service/internal/infrastructure/security"
	"github.com/nexthire/auth-service/internal/logger"
	"github.com/nexthire/auth-service/internal/transport/http/dto"
	"github.com/nexthire/auth-service/internal/transport/http/middleware"
	"github.com/nexthire/auth-service/internal/transport/http/response"
)

// AuthService is the subset of *auth.Service the handlers drive.
type AuthService interface {
	Register(ctx context.Context, in auth.RegisterInput) (domain.Profile, error)
	Login(ctx context.Context, in auth.LoginInput) (auth.LoginResult, error)
	GetCurrentUser(ctx context.Context, token string) (domain.Profile, error)
	Logout(ctx context.Context, token string) error
}

type AuthHandler struct {
	svc           AuthService
	tokenTTL      time.Duration
	secureCookies bool
}

func NewAuthHandler(svc AuthService, tokenTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		svc:           svc,
		tokenTTL:      tokenTTL,
		secureCookies: secureCookies,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	p, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", p.ID).
		Str("role", p.Role).
		Msg("user_registered")

	response.Created(w, auth.MsgRegistered, nil)
}

// Login handles POST /api/auth/login. The token is returned as data and also
// stored in the token/role cookie pair read by the gatekeeper.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Msg("user_logged_in")

	security.SetSessionCookies(w, res.Token, res.User.Role, h.tokenTTL, h.secureCookies)
	response.OK(w, auth.MsgLoggedIn, res.Token)
}

// Logout handles POST /api/auth/logout. Cookies are cleared even when the
// token is already invalid.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Logout(r.Context(), middleware.ExtractToken(r))
	security.ClearSessionCookies(w, h.secureCookies)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, auth.MsgLoggedOut, nil)
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetCurrentUser(r.Context(), middleware.ExtractToken(r))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, auth.MsgCurrentUser, dto.NewUserResponse(p))
}
