package ports

import (
	"context"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
)

// AppliedJob is one entry in a seeker's application history, with the
// posting and company attached.
type AppliedJob struct {
	Application domain.Application
	Job         *domain.Job
	Company     *domain.Company
}

// Applicant is one entry in a recruiter's applicant review list.
type Applicant struct {
	Application domain.Application
	User        *domain.User
}

// ApplicationService defines use-case operations for applications.
type ApplicationService interface {
	// Apply files an application. Applying twice to the same job is a
	// duplicate failure; a missing job is not found.
	Apply(ctx context.Context, jobID, applicantID string) (*domain.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]AppliedJob, error)
	// Applicants returns the review list for a posting. Only the posting's
	// creator may see it.
	Applicants(ctx context.Context, jobID, requesterID string) ([]Applicant, error)
	UpdateStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus) (*domain.Application, error)
}
