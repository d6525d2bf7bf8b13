package ports

import (
	"context"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
)

// JobRepository defines persistence for job postings. Lookups report
// absence with (nil, nil).
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	// Search returns postings whose title or description matches keyword
	// case-insensitively, newest first. An empty keyword matches everything.
	Search(ctx context.Context, keyword string) ([]domain.Job, error)
	FindByCreator(ctx context.Context, userID string) ([]domain.Job, error)
	Delete(ctx context.Context, id string) error
	// AttachApplication appends an application id to the job's list.
	AttachApplication(ctx context.Context, jobID, applicationID string) error
}
