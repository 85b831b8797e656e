package postgres

import (
	"database/sql"
	"time"

	"github.com/nexthire/auth-service/internal/domain"
)

type userRow struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	ProfilePic   sql.NullString
	ResumeURL    sql.NullString
	Bio          sql.NullString
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const userColumns = `id, name, email, password, role, profile_pic, resume_url, bio, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanUserRow(row scanner) (userRow, error) {
	var ur userRow
	err := row.Scan(
		&ur.ID,
		&ur.Name,
		&ur.Email,
		&ur.PasswordHash,
		&ur.Role,
		&ur.ProfilePic,
		&ur.ResumeURL,
		&ur.Bio,
		&ur.CreatedAt,
		&ur.UpdatedAt,
	)
	return ur, err
}

func toDomainUser(ur userRow) domain.User {
	return domain.User{
		ID:                ur.ID,
		Name:              ur.Name,
		Email:             ur.Email,
		PasswordHash:      ur.PasswordHash,
		Role:              ur.Role,
		ProfilePictureURL: ur.ProfilePic.String,
		ResumeURL:         ur.ResumeURL.String,
		Bio:               ur.Bio.String,
		CreatedAt:         ur.CreatedAt,
		UpdatedAt:         ur.UpdatedAt,
	}
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
