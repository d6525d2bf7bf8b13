package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Virag-Koradiya/ElevateU/internal/api/metrics"
	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
)

// AuthHandler exposes registration, login, logout and profile maintenance.
type AuthHandler struct {
	authService ports.AuthService
	env         string
	tokenTTL    time.Duration
}

func NewAuthHandler(authService ports.AuthService, env string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, env: env, tokenTTL: tokenTTL}
}

// Register creates a new account. No token is issued; clients log in next.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       mpfd
// @Produce      json
// @Param        fullname     formData  string  true   "Display name"
// @Param        email        formData  string  true   "Email (unique, case-insensitive)"
// @Param        phoneNumber  formData  string  true   "Phone number"
// @Param        password     formData  string  true   "Password"
// @Param        role         formData  string  true   "seeker or recruiter"
// @Param        file         formData  file    false  "Profile photo"
// @Success      201  {object}  authResponse
// @Failure      400  {object}  api.errorResponse
// @Failure      409  {object}  api.errorResponse
// @Failure      502  {object}  api.errorResponse
// @Router       /api/user/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.Validation(err.Error())
	}

	photo, err := formFile(c, "file")
	if err != nil {
		return domain.Validation("invalid profile photo upload")
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Fullname:     req.Fullname,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Password:     req.Password,
		Role:         req.Role,
		ProfilePhoto: photo,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(user.Role).Inc()

	return c.JSON(http.StatusCreated, authResponse{
		Success: true,
		Message: "Account created successfully.",
		User:    toUserResponse(user),
	})
}

// Login verifies credentials, sets the session cookie and returns the
// sanitized user.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  api.errorResponse
// @Failure      429   {object}  api.errorResponse
// @Router       /api/user/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return domain.Validation(err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.SetCookie(sessionCookie(h.env, token, h.tokenTTL))

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		Message: "Welcome back " + user.Fullname,
		User:    toUserResponse(user),
	})
}

// Logout clears the session cookie. Tokens are stateless: the server keeps
// no session to destroy, and an already-issued token stays valid until its
// natural expiry.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Router       /api/user/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(clearedSessionCookie(h.env))
	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		Message: "Logged out successfully.",
	})
}

// UpdateProfile applies a partial profile update for the authenticated
// user, optionally uploading a resume.
//
// @Summary      Update profile
// @Tags         auth
// @Accept       mpfd
// @Produce      json
// @Param        fullname     formData  string  false  "Display name"
// @Param        email        formData  string  false  "Email"
// @Param        phoneNumber  formData  string  false  "Phone number"
// @Param        bio          formData  string  false  "Bio"
// @Param        skills       formData  string  false  "Comma-separated skills"
// @Param        file         formData  file    false  "Resume (pdf/doc/docx, max 5MB)"
// @Success      200  {object}  authResponse
// @Failure      400  {object}  api.errorResponse
// @Failure      401  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Failure      409  {object}  api.errorResponse
// @Failure      502  {object}  api.errorResponse
// @Router       /api/user/profile/update [patch]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return domain.Validation("invalid payload")
	}

	resume, err := formFile(c, "file")
	if err != nil {
		return domain.Validation("invalid resume upload")
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), ports.UpdateProfileInput{
		UserID:      userID,
		Fullname:    req.Fullname,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Bio:         req.Bio,
		Skills:      req.Skills,
		Resume:      resume,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		Message: "Profile updated successfully.",
		User:    toUserResponse(user),
	})
}

// Me returns the authenticated user's sanitized record.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      401  {object}  api.errorResponse
// @Failure      404  {object}  api.errorResponse
// @Router       /api/user/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := subjectID(c)
	if err != nil {
		return err
	}

	user, err := h.authService.GetUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{
		Success: true,
		User:    toUserResponse(user),
	})
}
