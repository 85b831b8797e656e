package domain

import "time"

// User is the persisted user profile. PasswordHash never leaves the service;
// use Public() for anything sent to a client.
type User struct {
	ID                string
	Name              string
	Email             string
	PasswordHash      string
	Role              string
	ProfilePictureURL string
	ResumeURL         string
	Bio               string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Profile is a User without credentials.
type Profile struct {
	ID                string
	Name              string
	Email             string
	Role              string
	ProfilePictureURL string
	ResumeURL         string
	Bio               string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (u User) Public() Profile {
	return Profile{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Role:              u.Role,
		ProfilePictureURL: u.ProfilePictureURL,
		ResumeURL:         u.ResumeURL,
		Bio:               u.Bio,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}
