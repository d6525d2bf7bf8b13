package ports

import (
	"context"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
)

// RegisterInput carries all data needed to create an account.
type RegisterInput struct {
	Fullname    string
	Email       string
	PhoneNumber string
	Password    string
	Role        string
	// ProfilePhoto is optional. When present, the upload happens before the
	// account is created and an upload failure aborts registration.
	ProfilePhoto *FileUpload
}

// LoginInput carries the credential tuple checked at login.
type LoginInput struct {
	Email    string
	Password string
	Role     string
}

// UpdateProfileInput carries a partial profile update. Empty string fields
// are left untouched.
type UpdateProfileInput struct {
	UserID      string
	Fullname    string
	Email       string
	PhoneNumber string
	Bio         string
	// Skills is a comma-separated list; it is parsed and trimmed.
	Skills string
	// Resume is optional; pdf/doc/docx up to 5MB.
	Resume *FileUpload
}

// AuthService implements registration, login and profile maintenance.
// All returned users are sanitized views (no password hash). Register
// deliberately does not issue a token: the client logs in as a separate
// step.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input LoginInput) (string, *domain.User, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
