package domain

import "time"

const (
	RoleSeeker    = "seeker"
	RoleRecruiter = "recruiter"
)

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	return role == RoleSeeker || role == RoleRecruiter
}

// Profile holds the mutable, non-credential part of a user account.
type Profile struct {
	Bio                string   `json:"bio,omitempty"`
	Skills             []string `json:"skills,omitempty"`
	Resume             string   `json:"resume,omitempty"`
	ResumeOriginalName string   `json:"resumeOriginalName,omitempty"`
	ProfilePhoto       string   `json:"profilePhoto,omitempty"`
	CompanyID          string   `json:"company,omitempty"`
}

// User models an authenticated actor in the system. PasswordHash never
// leaves the process boundary: it is excluded from JSON and cleared from
// any view returned by the services.
type User struct {
	ID           string    `json:"_id"`
	Fullname     string    `json:"fullname"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phoneNumber"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Profile      Profile   `json:"profile"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Sanitized returns a copy safe to ship to clients.
func (u *User) Sanitized() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
