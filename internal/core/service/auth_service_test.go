package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
)

type stubUserRepo struct {
	users   map[string]*domain.User // keyed by email
	nextID  int
	creates int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	return cloneUser(r.users[email]), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.creates++
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.DuplicateConflict("User already exists with this email.")
	}
	r.nextID++
	clone := cloneUser(user)
	clone.ID = fmt.Sprintf("user_%d", r.nextID)
	r.users[clone.Email] = clone
	return cloneUser(clone), nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	for email, u := range r.users {
		if u.ID == user.ID {
			if email != user.Email {
				delete(r.users, email)
			}
			r.users[user.Email] = cloneUser(user)
			return nil
		}
	}
	return errors.New("user not found")
}

type stubUploader struct {
	url   string
	err   error
	calls int
}

func (u *stubUploader) Upload(_ context.Context, file ports.FileUpload, folder string) (string, error) {
	u.calls++
	if u.err != nil {
		return "", u.err
	}
	if u.url != "" {
		return u.url, nil
	}
	return "https://media.test/" + folder + "/" + file.Filename, nil
}

func newTestAuthService(repo ports.UserRepository, uploader ports.MediaUploader) *AuthService {
	return NewAuthService(repo, uploader, nil, "secret", 24*time.Hour, zerolog.Nop())
}

func registerInput() ports.RegisterInput {
	return ports.RegisterInput{
		Fullname:    "Ana",
		Email:       "ana@x.com",
		PhoneNumber: "1234567890",
		Password:    "secret1",
		Role:        domain.RoleSeeker,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubUploader{})

	user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash != "" {
		t.Fatalf("sanitized view must not carry the password hash")
	}
	if user.Email != "ana@x.com" || user.Role != domain.RoleSeeker {
		t.Fatalf("unexpected user: %+v", user)
	}

	stored := repo.users["ana@x.com"]
	if stored == nil {
		t.Fatalf("user not persisted")
	}
	if stored.PasswordHash == "secret1" || stored.PasswordHash == "" {
		t.Fatalf("plaintext stored or hash missing")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestAuthService_Register_SanitizedJSONOmitsPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubUploader{})

	user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	raw, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var asMap map[string]any
	_ = json.Unmarshal(raw, &asMap)
	for _, key := range []string{"password", "PasswordHash", "password_hash"} {
		if _, ok := asMap[key]; ok {
			t.Fatalf("serialized user leaks %q", key)
		}
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubUploader{})

	cases := []struct {
		name   string
		mutate func(*ports.RegisterInput)
	}{
		{"fullname", func(in *ports.RegisterInput) { in.Fullname = "" }},
		{"email", func(in *ports.RegisterInput) { in.Email = "" }},
		{"phone", func(in *ports.RegisterInput) { in.PhoneNumber = "" }},
		{"password", func(in *ports.RegisterInput) { in.Password = "" }},
		{"role", func(in *ports.RegisterInput) { in.Role = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := registerInput()
			tc.mutate(&in)
			_, err := svc.Register(context.Background(), in)
			if !domain.IsKind(err, domain.KindValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
	if repo.creates != 0 {
		t.Fatalf("no store write must occur on validation failure, got %d", repo.creates)
	}
}

func TestAuthService_Register_BadRole(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), &stubUploader{})
	in := registerInput()
	in.Role = "admin"
	if _, err := svc.Register(context.Background(), in); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error for unknown role, got %v", err)
	}
}

func TestAuthService_Register_DuplicateNormalizedEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubUploader{})

	first := registerInput()
	first.Email = "Test@Example.com "
	if _, err := svc.Register(context.Background(), first); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if repo.users["test@example.com"] == nil {
		t.Fatalf("email was not normalized on write")
	}

	second := registerInput()
	second.Email = "test@example.com"
	_, err := svc.Register(context.Background(), second)
	if !domain.IsKind(err, domain.KindDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestAuthService_Register_StoreRaceBecomesConflict(t *testing.T) {
	// Repo whose pre-check lookup sees nothing, but whose create hits the
	// unique index: the lost check-then-act race.
	repo := newStubUserRepo()
	repo.users["ana@x.com"] = &domain.User{ID: "user_0", Email: "ana@x.com"}
	racing := &racingUserRepo{stubUserRepo: repo}
	svc := newTestAuthService(racing, &stubUploader{})

	_, err := svc.Register(context.Background(), registerInput())
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind != domain.KindDuplicate || de.Status != 409 {
		t.Fatalf("expected 409 duplicate conflict, got %v", err)
	}
}

type racingUserRepo struct{ *stubUserRepo }

func (r *racingUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, nil
}

func TestAuthService_Register_PhotoUploadFailure(t *testing.T) {
	repo := newStubUserRepo()
	uploader := &stubUploader{err: errors.New("connection reset")}
	svc := newTestAuthService(repo, uploader)

	in := registerInput()
	in.ProfilePhoto = &ports.FileUpload{Filename: "me.png", ContentType: "image/png", Size: 10, Data: []byte("x")}

	_, err := svc.Register(context.Background(), in)
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind != domain.KindUpstream || de.Status != 502 {
		t.Fatalf("expected 502 upstream error, got %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("user must not be created when the photo upload fails")
	}
}

func TestAuthService_Register_PhotoOptional(t *testing.T) {
	uploader := &stubUploader{}
	svc := newTestAuthService(newStubUserRepo(), uploader)

	user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if uploader.calls != 0 {
		t.Fatalf("uploader must not be called without a photo")
	}
	if user.Profile.ProfilePhoto != "" {
		t.Fatalf("unexpected profile photo url: %q", user.Profile.ProfilePhoto)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubUploader{})

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), ports.LoginInput{
		Email: "Ana@X.com ", Password: "secret1", Role: domain.RoleSeeker,
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}
	if user.PasswordHash != "" {
		t.Fatalf("login must return a sanitized view")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["user_id"] != user.ID || claims["role"] != domain.RoleSeeker {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		t.Fatalf("exp claim: %v", err)
	}
	remaining := time.Until(exp.Time)
	if remaining < 23*time.Hour+59*time.Minute || remaining > 24*time.Hour {
		t.Fatalf("expiry must be 24h from issuance, got %v", remaining)
	}
}

func TestAuthService_Login_UniformFailures(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubUploader{})
	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	cases := []struct {
		name  string
		input ports.LoginInput
	}{
		{"unknown email", ports.LoginInput{Email: "ghost@x.com", Password: "secret1", Role: domain.RoleSeeker}},
		{"wrong password", ports.LoginInput{Email: "ana@x.com", Password: "wrong", Role: domain.RoleSeeker}},
		{"wrong role", ports.LoginInput{Email: "ana@x.com", Password: "secret1", Role: domain.RoleRecruiter}},
	}

	var msgs []string
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(context.Background(), tc.input)
			var de *domain.Error
			if !errors.As(err, &de) || de.Kind != domain.KindInvalidCredentials {
				t.Fatalf("expected invalid-credentials error, got %v", err)
			}
			if de.Status != 400 {
				t.Fatalf("expected status 400, got %d", de.Status)
			}
			msgs = append(msgs, de.Message)
		})
	}
	for i := 1; i < len(msgs); i++ {
		if msgs[i] != msgs[0] {
			t.Fatalf("failure messages must be indistinguishable: %q vs %q", msgs[0], msgs[i])
		}
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), &stubUploader{})
	_, _, err := svc.Login(context.Background(), ports.LoginInput{Email: "a@x.com", Password: "p"})
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAuthService_Login_NoStoredHash(t *testing.T) {
	repo := newStubUserRepo()
	repo.users["sso@x.com"] = &domain.User{ID: "user_9", Email: "sso@x.com", Role: domain.RoleSeeker}
	svc := newTestAuthService(repo, &stubUploader{})

	_, _, err := svc.Login(context.Background(), ports.LoginInput{
		Email: "sso@x.com", Password: "whatever", Role: domain.RoleSeeker,
	})
	if !domain.IsKind(err, domain.KindInvalidCredentials) {
		t.Fatalf("expected invalid-credentials error, got %v", err)
	}
}

type stubLimiter struct {
	blocked  bool
	failures int
	resets   int
}

func (l *stubLimiter) TooManyAttempts(context.Context, string) (bool, error) {
	return l.blocked, nil
}
func (l *stubLimiter) RecordFailure(context.Context, string) error { l.failures++; return nil }
func (l *stubLimiter) Reset(context.Context, string) error         { l.resets++; return nil }

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{blocked: true}
	svc := NewAuthService(repo, &stubUploader{}, limiter, "secret", time.Hour, zerolog.Nop())

	_, _, err := svc.Login(context.Background(), ports.LoginInput{
		Email: "ana@x.com", Password: "secret1", Role: domain.RoleSeeker,
	})
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind != domain.KindTooManyRequests || de.Status != 429 {
		t.Fatalf("expected 429 throttle error, got %v", err)
	}
}

func TestAuthService_Login_LimiterBookkeeping(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc := NewAuthService(repo, &stubUploader{}, limiter, "secret", time.Hour, zerolog.Nop())

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, _ = svc.Login(context.Background(), ports.LoginInput{Email: "ana@x.com", Password: "bad", Role: domain.RoleSeeker})
	if limiter.failures != 1 {
		t.Fatalf("failed login must be recorded, got %d", limiter.failures)
	}

	_, _, err := svc.Login(context.Background(), ports.LoginInput{Email: "ana@x.com", Password: "secret1", Role: domain.RoleSeeker})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if limiter.resets != 1 {
		t.Fatalf("successful login must reset the counter, got %d", limiter.resets)
	}
}

func TestAuthService_UpdateProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubUploader{})
	created, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID:   created.ID,
		Fullname: "Ana B",
		Bio:      "platform engineer",
		Skills:   "go, mongodb , ",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if user.Fullname != "Ana B" || user.Profile.Bio != "platform engineer" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if len(user.Profile.Skills) != 2 || user.Profile.Skills[0] != "go" || user.Profile.Skills[1] != "mongodb" {
		t.Fatalf("skills not parsed: %v", user.Profile.Skills)
	}
}

func TestAuthService_UpdateProfile_NotFound(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo(), &stubUploader{})
	_, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{UserID: "missing"})
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestAuthService_UpdateProfile_EmailConflict(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubUploader{})
	a, _ := svc.Register(context.Background(), registerInput())
	other := registerInput()
	other.Email = "bob@x.com"
	if _, err := svc.Register(context.Background(), other); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID: a.ID, Email: "Bob@X.com",
	})
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind != domain.KindDuplicate || de.Status != 409 {
		t.Fatalf("expected 409 duplicate, got %v", err)
	}
}

func TestAuthService_UpdateProfile_ResumeValidation(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubUploader{})
	created, _ := svc.Register(context.Background(), registerInput())

	_, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID: created.ID,
		Resume: &ports.FileUpload{Filename: "cv.exe", ContentType: "application/octet-stream", Size: 100},
	})
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error for file type, got %v", err)
	}

	_, err = svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID: created.ID,
		Resume: &ports.FileUpload{Filename: "cv.pdf", ContentType: "application/pdf", Size: 6 * 1024 * 1024},
	})
	if !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error for file size, got %v", err)
	}
}

func TestAuthService_UpdateProfile_ResumeUploadFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubUploader{err: errors.New("503 from media host")})
	created, _ := svc.Register(context.Background(), registerInput())

	_, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID: created.ID,
		Resume: &ports.FileUpload{Filename: "cv.pdf", ContentType: "application/pdf", Size: 100},
	})
	var de *domain.Error
	if !errors.As(err, &de) || de.Status != 502 {
		t.Fatalf("expected 502, got %v", err)
	}
}

func TestAuthService_UpdateProfile_ResumeStored(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo, &stubUploader{url: "https://media.test/resumes/abc"})
	created, _ := svc.Register(context.Background(), registerInput())

	user, err := svc.UpdateProfile(context.Background(), ports.UpdateProfileInput{
		UserID: created.ID,
		Resume: &ports.FileUpload{Filename: "ana-cv.pdf", ContentType: "application/pdf", Size: 100},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if user.Profile.Resume != "https://media.test/resumes/abc" || user.Profile.ResumeOriginalName != "ana-cv.pdf" {
		t.Fatalf("resume not stored: %+v", user.Profile)
	}
}
