package domain

import "strings"

type Role string

const (
	// RoleJobSeeker browses postings and keeps a profile/resume.
	RoleJobSeeker Role = "job-seeker"
	// RoleRecruiter creates and edits job postings.
	RoleRecruiter Role = "recruiter"
)

func IsValidRole(r string) bool {
	return r == string(RoleJobSeeker) || r == string(RoleRecruiter)
}

// Roles lists every supported role in display order.
func Roles() []Role {
	return []Role{RoleJobSeeker, RoleRecruiter}
}

// DashboardPath is the landing page for a role: /{role}/dashboard.
func DashboardPath(role string) string {
	return "/" + role + "/dashboard"
}

// CanonicalEmail is the single canonicalization rule for emails,
// applied both when profiles are written and when they are looked up.
func CanonicalEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
