package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
)

const logoFolder = "company_logos"

// CompanyService implements company registration and maintenance.
type CompanyService struct {
	repo     ports.CompanyRepository
	uploader ports.MediaUploader
	logger   zerolog.Logger
}

func NewCompanyService(repo ports.CompanyRepository, uploader ports.MediaUploader, logger zerolog.Logger) *CompanyService {
	return &CompanyService{repo: repo, uploader: uploader, logger: logger}
}

func (s *CompanyService) Register(ctx context.Context, name, ownerID string) (*domain.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.Validation("Company name is required.")
	}

	// Advisory pre-check; the unique index on name settles races.
	existing, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("You can't register same company.")
	}

	company := &domain.Company{
		Name:      name,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, company)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("company_id", created.ID).Str("owner_id", ownerID).Msg("company registered")
	return created, nil
}

func (s *CompanyService) ListByOwner(ctx context.Context, ownerID string) ([]domain.Company, error) {
	if ownerID == "" {
		return nil, domain.Unauthenticated("User not authenticated")
	}
	companies, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(companies) == 0 {
		return nil, domain.NotFound("Companies not found.")
	}
	return companies, nil
}

func (s *CompanyService) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	if id == "" {
		return nil, domain.Validation("Company id is required.")
	}
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFound("Company not found.")
	}
	return company, nil
}

// Update applies a partial update. Only the owner may modify a company.
func (s *CompanyService) Update(ctx context.Context, input ports.UpdateCompanyInput) (*domain.Company, error) {
	company, err := s.GetByID(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}

	if normalizeID(company.OwnerID) != normalizeID(input.UserID) {
		return nil, domain.Forbidden("You are not authorized to update this company.")
	}

	if input.Name != nil {
		company.Name = strings.TrimSpace(*input.Name)
	}
	if input.Description != nil {
		company.Description = *input.Description
	}
	if input.Website != nil {
		company.Website = *input.Website
	}
	if input.Location != nil {
		company.Location = *input.Location
	}

	if input.Logo != nil {
		url, err := s.uploader.Upload(ctx, *input.Logo, logoFolder)
		if err != nil {
			s.logger.Error().Err(err).Str("company_id", company.ID).Msg("logo upload failed")
			return nil, domain.Upstream("Failed to upload logo.")
		}
		company.Logo = url
	}

	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}
