package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
)

func strPtr(s string) *string { return &s }

func TestCompanyService_Register(t *testing.T) {
	repo := newStubCompanyRepo()
	svc := NewCompanyService(repo, &stubUploader{}, zerolog.Nop())

	company, err := svc.Register(context.Background(), "  Initech  ", "rec_1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if company.Name != "Initech" || company.OwnerID != "rec_1" {
		t.Fatalf("unexpected company: %+v", company)
	}

	if _, err := svc.Register(context.Background(), "Initech", "rec_2"); !domain.IsKind(err, domain.KindDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	if _, err := svc.Register(context.Background(), "   ", "rec_1"); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCompanyService_ListByOwner(t *testing.T) {
	repo := newStubCompanyRepo()
	svc := NewCompanyService(repo, &stubUploader{}, zerolog.Nop())
	if _, err := svc.Register(context.Background(), "Initech", "rec_1"); err != nil {
		t.Fatalf("register: %v", err)
	}

	mine, err := svc.ListByOwner(context.Background(), "rec_1")
	if err != nil || len(mine) != 1 {
		t.Fatalf("expected one company, got %v (%v)", mine, err)
	}
	if _, err := svc.ListByOwner(context.Background(), "rec_2"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestCompanyService_Update(t *testing.T) {
	repo := newStubCompanyRepo()
	svc := NewCompanyService(repo, &stubUploader{url: "https://media.test/logo.png"}, zerolog.Nop())
	company, _ := svc.Register(context.Background(), "Initech", "rec_1")

	updated, err := svc.Update(context.Background(), ports.UpdateCompanyInput{
		CompanyID:   company.ID,
		UserID:      "rec_1",
		Description: strPtr("TPS reports as a service"),
		Website:     strPtr("https://initech.example"),
		Logo:        &ports.FileUpload{Filename: "logo.png", ContentType: "image/png", Size: 10},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Description != "TPS reports as a service" || updated.Logo != "https://media.test/logo.png" {
		t.Fatalf("unexpected company: %+v", updated)
	}
	// Untouched fields stay.
	if updated.Name != "Initech" {
		t.Fatalf("name must be untouched, got %q", updated.Name)
	}
}

func TestCompanyService_Update_NotOwner(t *testing.T) {
	repo := newStubCompanyRepo()
	svc := NewCompanyService(repo, &stubUploader{}, zerolog.Nop())
	company, _ := svc.Register(context.Background(), "Initech", "rec_1")

	_, err := svc.Update(context.Background(), ports.UpdateCompanyInput{
		CompanyID: company.ID,
		UserID:    "rec_2",
		Name:      strPtr("Hijacked"),
	})
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind != domain.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestCompanyService_Update_LogoUploadFailure(t *testing.T) {
	repo := newStubCompanyRepo()
	svc := NewCompanyService(repo, &stubUploader{err: errors.New("timeout")}, zerolog.Nop())
	company, _ := svc.Register(context.Background(), "Initech", "rec_1")

	_, err := svc.Update(context.Background(), ports.UpdateCompanyInput{
		CompanyID: company.ID,
		UserID:    "rec_1",
		Logo:      &ports.FileUpload{Filename: "logo.png", ContentType: "image/png", Size: 10},
	})
	var de *domain.Error
	if !errors.As(err, &de) || de.Status != 502 {
		t.Fatalf("expected 502, got %v", err)
	}
}

func TestCompanyService_GetByID_NotFound(t *testing.T) {
	svc := NewCompanyService(newStubCompanyRepo(), &stubUploader{}, zerolog.Nop())
	if _, err := svc.GetByID(context.Background(), "missing"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
