package service

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
)

const (
	bcryptCost      = 10
	maxResumeBytes  = 5 * 1024 * 1024
	profileFolder   = "profile_photos"
	resumeFolder    = "resumes"
	defaultTokenTTL = 24 * time.Hour
)

var resumeContentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// AuthService implements registration, login and profile maintenance on
// top of the user store, the password hasher and the token codec.
type AuthService struct {
	repo      ports.UserRepository
	uploader  ports.MediaUploader
	limiter   ports.LoginLimiter
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

// NewAuthService builds an AuthService. The JWT secret and TTL are injected
// here once at startup; business logic never reads them from globals.
// limiter may be nil, in which case login throttling is disabled.
func NewAuthService(repo ports.UserRepository, uploader ports.MediaUploader, limiter ports.LoginLimiter, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		repo:      repo,
		uploader:  uploader,
		limiter:   limiter,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// NormalizeEmail is the single definition of email equality: trimmed,
// lowercased. Registration, login and the store all use it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account and returns the sanitized user. No token is
// issued here; the client logs in as a separate step.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Fullname == "" || input.Email == "" || input.PhoneNumber == "" || input.Password == "" || input.Role == "" {
		return nil, domain.Validation("fullname, email, phoneNumber, password and role are required.")
	}
	if !domain.ValidRole(input.Role) {
		return nil, domain.Validation("role must be seeker or recruiter.")
	}

	email := NormalizeEmail(input.Email)

	// Advisory pre-check. The unique index on email remains the final
	// arbiter; a race here surfaces as a 409 from Create below.
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("User already exists with this email.")
	}

	profilePhotoURL := ""
	if input.ProfilePhoto != nil {
		url, err := s.uploader.Upload(ctx, *input.ProfilePhoto, profileFolder)
		if err != nil {
			s.logger.Error().Err(err).Str("email", email).Msg("profile photo upload failed")
			return nil, domain.Upstream("Failed to upload profile photo.")
		}
		profilePhotoURL = url
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Fullname:     strings.TrimSpace(input.Fullname),
		Email:        email,
		PhoneNumber:  input.PhoneNumber,
		PasswordHash: string(hash),
		Role:         input.Role,
		Profile:      domain.Profile{ProfilePhoto: profilePhotoURL},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user registered")
	return created.Sanitized(), nil
}

// Login verifies the credential tuple and issues a session token. Absent
// user, role mismatch, missing hash and password mismatch all collapse into
// one uniform failure so callers cannot probe which part was wrong.
func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (string, *domain.User, error) {
	if input.Email == "" || input.Password == "" || input.Role == "" {
		return "", nil, domain.Validation("Email, password and role are required.")
	}

	email := NormalizeEmail(input.Email)
	role := strings.TrimSpace(input.Role)

	if s.limiter != nil {
		blocked, err := s.limiter.TooManyAttempts(ctx, email)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login limiter unavailable")
		} else if blocked {
			return "", nil, domain.TooManyRequests("Too many login attempts. Try again later.")
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if user == nil || user.Role != role || user.PasswordHash == "" ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		s.recordFailure(ctx, email)
		return "", nil, domain.InvalidCredentials()
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user logged in")
	return token, user.Sanitized(), nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login limiter record failed")
	}
}

// issueToken signs the compact claim set {user_id, role, exp}. Tokens are
// stateless and cannot be revoked before their expiry.
func (s *AuthService) issueToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// UpdateProfile applies a partial update to the authenticated user.
func (s *AuthService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("User not found.")
	}

	if input.Email != "" {
		email := NormalizeEmail(input.Email)
		if email != user.Email {
			existing, err := s.repo.FindByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, domain.DuplicateConflict("Email already in use by another account.")
			}
			user.Email = email
		}
	}

	if input.Fullname != "" {
		user.Fullname = strings.TrimSpace(input.Fullname)
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Bio != "" {
		user.Profile.Bio = input.Bio
	}
	if skills := splitList(input.Skills); len(skills) > 0 {
		user.Profile.Skills = skills
	}

	if input.Resume != nil {
		if _, ok := resumeContentTypes[input.Resume.ContentType]; !ok {
			return nil, domain.Validation("Unsupported resume file type.")
		}
		if input.Resume.Size > maxResumeBytes {
			return nil, domain.Validation("Resume file too large (max 5MB).")
		}
		url, err := s.uploader.Upload(ctx, *input.Resume, resumeFolder)
		if err != nil {
			s.logger.Error().Err(err).Str("user_id", user.ID).Msg("resume upload failed")
			return nil, domain.Upstream("Failed to upload resume. Try again later.")
		}
		user.Profile.Resume = url
		user.Profile.ResumeOriginalName = input.Resume.Filename
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user.Sanitized(), nil
}

// GetUser returns the sanitized user by id.
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound("User not found.")
	}
	return user.Sanitized(), nil
}
