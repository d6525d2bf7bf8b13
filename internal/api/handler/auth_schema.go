package handler

import (
	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
)

type registerRequest struct {
	Fullname    string `form:"fullname"    validate:"required"`
	Email       string `form:"email"       validate:"required,email"`
	PhoneNumber string `form:"phoneNumber" validate:"required"`
	Password    string `form:"password"    validate:"required"`
	Role        string `form:"role"        validate:"required,oneof=seeker recruiter"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
}

type updateProfileRequest struct {
	Fullname    string `form:"fullname"`
	Email       string `form:"email"`
	PhoneNumber string `form:"phoneNumber"`
	Bio         string `form:"bio"`
	Skills      string `form:"skills"`
}

// Response-only types owned by the transport layer, deliberately separate
// from domain types so the JSON contract survives internal changes. The
// password hash has no field here at all.

type profileResponse struct {
	Bio                string   `json:"bio,omitempty"`
	Skills             []string `json:"skills,omitempty"`
	Resume             string   `json:"resume,omitempty"`
	ResumeOriginalName string   `json:"resumeOriginalName,omitempty"`
	ProfilePhoto       string   `json:"profilePhoto,omitempty"`
}

type userResponse struct {
	ID          string          `json:"_id"`
	Fullname    string          `json:"fullname"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phoneNumber"`
	Role        string          `json:"role"`
	Profile     profileResponse `json:"profile"`
}

type authResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	User    *userResponse `json:"user,omitempty"`
}

func toUserResponse(u *domain.User) *userResponse {
	if u == nil {
		return nil
	}
	return &userResponse{
		ID:          u.ID,
		Fullname:    u.Fullname,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		Profile: profileResponse{
			Bio:                u.Profile.Bio,
			Skills:             u.Profile.Skills,
			Resume:             u.Profile.Resume,
			ResumeOriginalName: u.Profile.ResumeOriginalName,
			ProfilePhoto:       u.Profile.ProfilePhoto,
		},
	}
}
