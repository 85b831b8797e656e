package dto

import (
	"time"

	"github.com/nexthire/auth-service/internal/domain"
)

// UserResponse is the client view of a profile. There is no password field.
type UserResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	ProfilePic string    `json:"profile_pic,omitempty"`
	ResumeURL  string    `json:"resume_url,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewUserResponse(p domain.Profile) UserResponse {
	return UserResponse{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		Role:       p.Role,
		ProfilePic: p.ProfilePictureURL,
		ResumeURL:  p.ResumeURL,
		Bio:        p.Bio,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// PageResponse describes a page the client should render.
type PageResponse struct {
	Page  string        `json:"page"`
	Title string        `json:"title"`
	User  *UserResponse `json:"user,omitempty"`
	// Params carries path parameters, e.g. the job id being edited.
	Params map[string]string `json:"params,omitempty"`
}
