package ports

import (
	"context"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
)

// UpdateCompanyInput carries a partial company update. Nil pointers leave
// the field untouched, so an explicit empty string can clear it.
type UpdateCompanyInput struct {
	CompanyID   string
	UserID      string
	Name        *string
	Description *string
	Website     *string
	Location    *string
	Logo        *FileUpload
}

// CompanyService defines use-case operations for companies.
type CompanyService interface {
	Register(ctx context.Context, name, ownerID string) (*domain.Company, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Company, error)
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	Update(ctx context.Context, input UpdateCompanyInput) (*domain.Company, error)
}
