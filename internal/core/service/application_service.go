package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
)

// ApplicationService implements the seeker/recruiter application flows.
type ApplicationService struct {
	apps   ports.ApplicationRepository
	jobs   ports.JobRepository
	users  ports.UserRepository
	comps  ports.CompanyRepository
	logger zerolog.Logger
}

func NewApplicationService(apps ports.ApplicationRepository, jobs ports.JobRepository, users ports.UserRepository, comps ports.CompanyRepository, logger zerolog.Logger) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, users: users, comps: comps, logger: logger}
}

func (s *ApplicationService) Apply(ctx context.Context, jobID, applicantID string) (*domain.Application, error) {
	if jobID == "" {
		return nil, domain.Validation("Job id is required.")
	}
	if applicantID == "" {
		return nil, domain.Unauthenticated("User not authenticated")
	}

	existing, err := s.apps.FindByJobAndApplicant(ctx, jobID, applicantID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Duplicate("You have already applied for this job.")
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.NotFound("Job not found.")
	}

	app := &domain.Application{
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      domain.ApplicationPending,
		CreatedAt:   time.Now().UTC(),
	}
	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, err
	}

	if err := s.jobs.AttachApplication(ctx, jobID, created.ID); err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_id", jobID).Str("applicant_id", applicantID).Msg("application submitted")
	return created, nil
}

func (s *ApplicationService) ListByApplicant(ctx context.Context, applicantID string) ([]ports.AppliedJob, error) {
	if applicantID == "" {
		return nil, domain.Unauthenticated("User not authenticated")
	}

	apps, err := s.apps.FindByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, domain.NotFound("No applications found.")
	}

	out := make([]ports.AppliedJob, 0, len(apps))
	for _, app := range apps {
		entry := ports.AppliedJob{Application: app}
		job, err := s.jobs.FindByID(ctx, app.JobID)
		if err != nil {
			return nil, err
		}
		if job != nil {
			entry.Job = job
			company, err := s.comps.FindByID(ctx, job.CompanyID)
			if err != nil {
				return nil, err
			}
			entry.Company = company
		}
		out = append(out, entry)
	}
	return out, nil
}

// Applicants returns the review list for a posting; only its creator may
// read it. Authentication alone is not enough here.
func (s *ApplicationService) Applicants(ctx context.Context, jobID, requesterID string) ([]ports.Applicant, error) {
	if jobID == "" {
		return nil, domain.Validation("Job id is required.")
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.NotFound("Job not found.")
	}
	if normalizeID(job.CreatedBy) != normalizeID(requesterID) {
		return nil, domain.Forbidden("You are not authorized to view applicants for this job.")
	}

	apps, err := s.apps.FindByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	out := make([]ports.Applicant, 0, len(apps))
	for _, app := range apps {
		applicant, err := s.users.FindByID(ctx, app.ApplicantID)
		if err != nil {
			return nil, err
		}
		out = append(out, ports.Applicant{Application: app, User: applicant.Sanitized()})
	}
	return out, nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus) (*domain.Application, error) {
	if applicationID == "" {
		return nil, domain.Validation("Application id is required.")
	}
	if !domain.ValidApplicationStatus(status) {
		return nil, domain.Validation("Status must be pending, accepted or rejected.")
	}

	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.NotFound("Application not found.")
	}

	if err := s.apps.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, err
	}
	app.Status = status
	return app, nil
}
