package ports

import (
	"context"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
)

// CompanyRepository defines persistence for companies. Lookups report
// absence with (nil, nil); Create translates the store's unique-name
// violation into a domain duplicate error.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	FindByID(ctx context.Context, id string) (*domain.Company, error)
	FindByName(ctx context.Context, name string) (*domain.Company, error)
	FindByOwner(ctx context.Context, ownerID string) ([]domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
}
