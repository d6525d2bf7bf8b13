package ports

import (
	"context"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
)

// ApplicationRepository defines persistence for job applications.
// Lookups report absence with (nil, nil); list results come newest first.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID string) (*domain.Application, error)
	FindByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error)
	FindByJob(ctx context.Context, jobID string) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
}
