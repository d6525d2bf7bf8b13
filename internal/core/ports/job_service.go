package ports

import (
	"context"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
)

// CreateJobInput carries all data needed to post a job.
type CreateJobInput struct {
	Title       string
	Description string
	// Requirements is a comma-separated list; it is parsed and trimmed.
	Requirements string
	Salary       float64
	Location     string
	JobType      string
	Experience   string
	Position     int
	CompanyID    string
	// CreatedBy is the authenticated recruiter, taken from the session.
	CreatedBy string
}

// JobWithCompany pairs a posting with its company for list views.
type JobWithCompany struct {
	Job     domain.Job
	Company *domain.Company
}

// JobService defines use-case operations for postings.
type JobService interface {
	Create(ctx context.Context, input CreateJobInput) (*domain.Job, error)
	// Search returns matching postings with companies attached, newest
	// first. No match is a not-found failure, mirroring the API contract.
	Search(ctx context.Context, keyword string) ([]JobWithCompany, error)
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	ListByCreator(ctx context.Context, userID string) ([]JobWithCompany, error)
	// Delete removes a posting. Only its creator may delete it; anyone else
	// gets a forbidden failure even though they are authenticated.
	Delete(ctx context.Context, jobID, userID string) error
}
