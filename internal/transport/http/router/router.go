package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/nexthire/auth-service/internal/transport/http/middleware"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type PageHandler interface {
	Home(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	JobSeekerDashboard(w http.ResponseWriter, r *http.Request)
	RecruiterDashboard(w http.ResponseWriter, r *http.Request)
	RecruiterJobs(w http.ResponseWriter, r *http.Request)
	RecruiterJobAdd(w http.ResponseWriter, r *http.Request)
	RecruiterJobEdit(w http.ResponseWriter, r *http.Request)
}

type Middleware = func(http.Handler) http.Handler

type Deps struct {
	Health HealthHandler
	Auth   AuthHandler
	Pages  PageHandler

	// Metrics serves /metrics; nil disables the endpoint.
	Metrics http.Handler

	RequestIDMW Middleware
	GateMW      Middleware
	AuthMW      Middleware
	SeekerMW    Middleware
	RecruiterMW Middleware

	// Optional per-route rate limits.
	LoginRL    Middleware
	RegisterRL Middleware
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Pages == nil {
		return nil, fmt.Errorf("nil Pages handler")
	}
	if deps.RequestIDMW == nil {
		return nil, fmt.Errorf("nil RequestID middleware")
	}
	if deps.GateMW == nil {
		return nil, fmt.Errorf("nil Gatekeeper middleware")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}
	if deps.SeekerMW == nil || deps.RecruiterMW == nil {
		return nil, fmt.Errorf("nil role middleware")
	}

	loginRL := orNoop(deps.LoginRL)
	registerRL := orNoop(deps.RegisterRL)

	r := chi.NewRouter()
	r.Use(deps.RequestIDMW)
	r.Use(middleware.SecurityHeaders)
	r.Use(chimw.Recoverer)
	r.Use(middleware.AccessLog)
	r.Use(middleware.Metrics)

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.With(registerRL).Post("/register", deps.Auth.Register)
		r.With(loginRL).Post("/login", deps.Auth.Login)
		r.Post("/logout", deps.Auth.Logout)
		r.Get("/me", deps.Auth.Me)
	})

	// Page navigation goes through the gatekeeper first; private areas then
	// get the strict check.
	r.Group(func(r chi.Router) {
		r.Use(deps.GateMW)

		r.Get("/", deps.Pages.Home)
		r.Get("/login", deps.Pages.Login)
		r.Get("/register", deps.Pages.Register)

		r.Route("/job-seeker", func(r chi.Router) {
			r.Use(deps.AuthMW)
			r.Use(deps.SeekerMW)
			r.Get("/dashboard", deps.Pages.JobSeekerDashboard)
		})

		r.Route("/recruiter", func(r chi.Router) {
			r.Use(deps.AuthMW)
			r.Use(deps.RecruiterMW)
			r.Get("/dashboard", deps.Pages.RecruiterDashboard)
			r.Get("/jobs", deps.Pages.RecruiterJobs)
			r.Get("/jobs/add", deps.Pages.RecruiterJobAdd)
			r.Get("/jobs/edit/{id}", deps.Pages.RecruiterJobEdit)
		})
	})

	return r, nil
}

func orNoop(mw Middleware) Middleware {
	if mw != nil {
		return mw
	}
	return func(next http.Handler) http.Handler { return next }
}
