package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
)

// JobService implements posting creation, search and owner-scoped deletion.
type JobService struct {
	jobs      ports.JobRepository
	companies ports.CompanyRepository
	logger    zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, companies ports.CompanyRepository, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, companies: companies, logger: logger}
}

func (s *JobService) Create(ctx context.Context, input ports.CreateJobInput) (*domain.Job, error) {
	if input.Title == "" || input.Description == "" || input.Requirements == "" ||
		input.Location == "" || input.JobType == "" || input.Experience == "" ||
		input.Position <= 0 || input.CompanyID == "" {
		return nil, domain.Validation("Required fields are missing.")
	}
	if input.Salary <= 0 {
		return nil, domain.Validation("Salary must be a valid positive number.")
	}

	company, err := s.companies.FindByID(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.NotFound("Company not found.")
	}

	job := &domain.Job{
		Title:           input.Title,
		Description:     input.Description,
		Requirements:    splitList(input.Requirements),
		Salary:          input.Salary,
		Location:        input.Location,
		JobType:         input.JobType,
		ExperienceLevel: input.Experience,
		Position:        input.Position,
		CompanyID:       input.CompanyID,
		CreatedBy:       input.CreatedBy,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("job_id", created.ID).Str("created_by", input.CreatedBy).Msg("job posted")
	return created, nil
}

func (s *JobService) Search(ctx context.Context, keyword string) ([]ports.JobWithCompany, error) {
	jobs, err := s.jobs.Search(ctx, keyword)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, domain.NotFound("No jobs found.")
	}
	return s.withCompanies(ctx, jobs)
}

func (s *JobService) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	if id == "" {
		return nil, domain.Validation("Job ID is required.")
	}
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.NotFound("Job not found.")
	}
	return job, nil
}

func (s *JobService) ListByCreator(ctx context.Context, userID string) ([]ports.JobWithCompany, error) {
	jobs, err := s.jobs.FindByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, domain.NotFound("No jobs found.")
	}
	return s.withCompanies(ctx, jobs)
}

// Delete removes a posting after an ownership check. The comparison is on
// string-normalized ids since the subject comes from token claims and the
// owner from the store.
func (s *JobService) Delete(ctx context.Context, jobID, userID string) error {
	if jobID == "" {
		return domain.Validation("Job ID is required.")
	}
	if userID == "" {
		return domain.Unauthenticated("User not authenticated")
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job == nil {
		return domain.NotFound("Job not found.")
	}

	if normalizeID(job.CreatedBy) != normalizeID(userID) {
		return domain.Forbidden("You are not authorized to delete this job.")
	}

	if err := s.jobs.Delete(ctx, jobID); err != nil {
		return err
	}

	s.logger.Info().Str("job_id", jobID).Str("user_id", userID).Msg("job deleted")
	return nil
}

func (s *JobService) withCompanies(ctx context.Context, jobs []domain.Job) ([]ports.JobWithCompany, error) {
	out := make([]ports.JobWithCompany, 0, len(jobs))
	for _, job := range jobs {
		company, err := s.companies.FindByID(ctx, job.CompanyID)
		if err != nil {
			return nil, err
		}
		out = append(out, ports.JobWithCompany{Job: job, Company: company})
	}
	return out, nil
}
