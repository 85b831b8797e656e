package http_handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nexthire/auth-service/internal/domain"
	"github.com/nexthire/auth-service/internal/transport/http/dto"
	"github.com/nexthire/auth-service/internal/transport/http/middleware"
	"github.com/nexthire/auth-service/internal/transport/http/response"
)

type CurrentUserResolver interface {
	GetCurrentUser(ctx context.Context, token string) (domain.Profile, error)
}

// PageHandler serves JSON page descriptors. Rendering lives in the client;
// these exist so navigation has something for the gatekeeper to guard.
type PageHandler struct {
	users CurrentUserResolver
}

func NewPageHandler(users CurrentUserResolver) *PageHandler {
	return &PageHandler{users: users}
}

func (h *PageHandler) page(w http.ResponseWriter, name, title string, params map[string]string) {
	response.OK(w, "", dto.PageResponse{Page: name, Title: title, Params: params})
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.page(w, "home", "NextHire", nil)
}

func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.page(w, "login", "Log in", nil)
}

func (h *PageHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.page(w, "register", "Create an account", nil)
}

func (h *PageHandler) dashboard(w http.ResponseWriter, r *http.Request, name, title string) {
	p, err := h.users.GetCurrentUser(r.Context(), middleware.ExtractToken(r))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	u := dto.NewUserResponse(p)
	response.OK(w, "", dto.PageResponse{Page: name, Title: title, User: &u})
}

func (h *PageHandler) JobSeekerDashboard(w http.ResponseWriter, r *http.Request) {
	h.dashboard(w, r, "job-seeker/dashboard", "Job seeker dashboard")
}

func (h *PageHandler) RecruiterDashboard(w http.ResponseWriter, r *http.Request) {
	h.dashboard(w, r, "recruiter/dashboard", "Recruiter dashboard")
}

func (h *PageHandler) RecruiterJobs(w http.ResponseWriter, r *http.Request) {
	h.page(w, "recruiter/jobs", "Job postings", nil)
}

func (h *PageHandler) RecruiterJobAdd(w http.ResponseWriter, r *http.Request) {
	h.page(w, "recruiter/jobs/add", "Add job posting", nil)
}

func (h *PageHandler) RecruiterJobEdit(w http.ResponseWriter, r *http.Request) {
	h.page(w, "recruiter/jobs/edit", "Edit job posting", map[string]string{"id": chi.URLParam(r, "id")})
}
