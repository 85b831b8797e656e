package dto

import (
	"strings"

	"github.com/nexthire/auth-service/internal/domain"
)

// -------- Core auth --------

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,role"`
}

func (r *RegisterRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = domain.CanonicalEmail(r.Email)
	return Validate(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,role"`
}

func (r *LoginRequest) Validate() error {
	r.Email = domain.CanonicalEmail(r.Email)
	return Validate(r)
}
