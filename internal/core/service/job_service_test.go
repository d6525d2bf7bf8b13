package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
)

type stubJobRepo struct {
	jobs   map[string]*domain.Job
	nextID int
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{jobs: make(map[string]*domain.Job)}
}

func cloneJob(j *domain.Job) *domain.Job {
	if j == nil {
		return nil
	}
	clone := *j
	return &clone
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.nextID++
	clone := cloneJob(job)
	clone.ID = fmt.Sprintf("job_%d", r.nextID)
	r.jobs[clone.ID] = clone
	return cloneJob(clone), nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	return cloneJob(r.jobs[id]), nil
}

func (r *stubJobRepo) Search(_ context.Context, keyword string) ([]domain.Job, error) {
	kw := strings.ToLower(keyword)
	var out []domain.Job
	for _, j := range r.jobs {
		if kw == "" || strings.Contains(strings.ToLower(j.Title), kw) || strings.Contains(strings.ToLower(j.Description), kw) {
			out = append(out, *j)
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	return out, nil
}

func (r *stubJobRepo) FindByCreator(_ context.Context, userID string) ([]domain.Job, error) {
	var out []domain.Job
	for _, j := range r.jobs {
		if j.CreatedBy == userID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *stubJobRepo) Delete(_ context.Context, id string) error {
	delete(r.jobs, id)
	return nil
}

func (r *stubJobRepo) AttachApplication(_ context.Context, jobID, applicationID string) error {
	job, ok := r.jobs[jobID]
	if !ok {
		return errors.New("job not found")
	}
	job.ApplicationIDs = append(job.ApplicationIDs, applicationID)
	return nil
}

type stubCompanyRepo struct {
	companies map[string]*domain.Company
	nextID    int
}

func newStubCompanyRepo() *stubCompanyRepo {
	return &stubCompanyRepo{companies: make(map[string]*domain.Company)}
}

func cloneCompany(c *domain.Company) *domain.Company {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCompanyRepo) Create(_ context.Context, company *domain.Company) (*domain.Company, error) {
	for _, c := range r.companies {
		if c.Name == company.Name {
			return nil, domain.DuplicateConflict("You can't register same company.")
		}
	}
	r.nextID++
	clone := cloneCompany(company)
	clone.ID = fmt.Sprintf("company_%d", r.nextID)
	r.companies[clone.ID] = clone
	return cloneCompany(clone), nil
}

func (r *stubCompanyRepo) FindByID(_ context.Context, id string) (*domain.Company, error) {
	return cloneCompany(r.companies[id]), nil
}

func (r *stubCompanyRepo) FindByName(_ context.Context, name string) (*domain.Company, error) {
	for _, c := range r.companies {
		if c.Name == name {
			return cloneCompany(c), nil
		}
	}
	return nil, nil
}

func (r *stubCompanyRepo) FindByOwner(_ context.Context, ownerID string) ([]domain.Company, error) {
	var out []domain.Company
	for _, c := range r.companies {
		if c.OwnerID == ownerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCompanyRepo) Update(_ context.Context, company *domain.Company) error {
	if _, ok := r.companies[company.ID]; !ok {
		return errors.New("company not found")
	}
	r.companies[company.ID] = cloneCompany(company)
	return nil
}

func seedCompany(t *testing.T, repo *stubCompanyRepo, owner string) *domain.Company {
	t.Helper()
	c, err := repo.Create(context.Background(), &domain.Company{Name: "Acme " + owner, OwnerID: owner})
	if err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return c
}

func jobInput(companyID, creator string) ports.CreateJobInput {
	return ports.CreateJobInput{
		Title:        "Backend Engineer",
		Description:  "Build APIs in Go",
		Requirements: "go, mongodb, docker",
		Salary:       120000,
		Location:     "Remote",
		JobType:      "full-time",
		Experience:   "mid",
		Position:     2,
		CompanyID:    companyID,
		CreatedBy:    creator,
	}
}

func TestJobService_Create_Success(t *testing.T) {
	jobs, companies := newStubJobRepo(), newStubCompanyRepo()
	company := seedCompany(t, companies, "rec_1")
	svc := NewJobService(jobs, companies, zerolog.Nop())

	job, err := svc.Create(context.Background(), jobInput(company.ID, "rec_1"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if job.ID == "" || job.CreatedBy != "rec_1" {
		t.Fatalf("unexpected job: %+v", job)
	}
	if len(job.Requirements) != 3 || job.Requirements[0] != "go" {
		t.Fatalf("requirements not parsed: %v", job.Requirements)
	}
}

func TestJobService_Create_Validation(t *testing.T) {
	jobs, companies := newStubJobRepo(), newStubCompanyRepo()
	company := seedCompany(t, companies, "rec_1")
	svc := NewJobService(jobs, companies, zerolog.Nop())

	in := jobInput(company.ID, "rec_1")
	in.Title = ""
	if _, err := svc.Create(context.Background(), in); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	in = jobInput(company.ID, "rec_1")
	in.Salary = -5
	if _, err := svc.Create(context.Background(), in); !domain.IsKind(err, domain.KindValidation) {
		t.Fatalf("expected validation error for salary, got %v", err)
	}
}

func TestJobService_Create_UnknownCompany(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), newStubCompanyRepo(), zerolog.Nop())
	if _, err := svc.Create(context.Background(), jobInput("missing", "rec_1")); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestJobService_Search(t *testing.T) {
	jobs, companies := newStubJobRepo(), newStubCompanyRepo()
	company := seedCompany(t, companies, "rec_1")
	svc := NewJobService(jobs, companies, zerolog.Nop())

	older := jobInput(company.ID, "rec_1")
	older.Title = "Data Scientist"
	if _, err := svc.Create(context.Background(), older); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(context.Background(), jobInput(company.ID, "rec_1")); err != nil {
		t.Fatalf("create: %v", err)
	}

	results, err := svc.Search(context.Background(), "backend")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(results) != 1 || results[0].Job.Title != "Backend Engineer" {
		t.Fatalf("unexpected results: %+v", results)
	}
	if results[0].Company == nil || results[0].Company.ID != company.ID {
		t.Fatalf("company not attached")
	}

	if _, err := svc.Search(context.Background(), "blockchain"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not-found for empty result, got %v", err)
	}
}

func TestJobService_Delete_Ownership(t *testing.T) {
	jobs, companies := newStubJobRepo(), newStubCompanyRepo()
	company := seedCompany(t, companies, "owner")
	svc := NewJobService(jobs, companies, zerolog.Nop())

	job, err := svc.Create(context.Background(), jobInput(company.ID, "owner"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Authenticated as somebody else: forbidden, and the job survives.
	err = svc.Delete(context.Background(), job.ID, "intruder")
	var de *domain.Error
	if !errors.As(err, &de) || de.Kind != domain.KindForbidden || de.Status != 403 {
		t.Fatalf("expected 403 forbidden, got %v", err)
	}
	if got, _ := svc.GetByID(context.Background(), job.ID); got == nil {
		t.Fatalf("job must survive a forbidden delete")
	}

	// The owner may delete; afterwards the job is gone.
	if err := svc.Delete(context.Background(), job.ID, "owner"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), job.ID); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not-found after delete, got %v", err)
	}
}

func TestJobService_Delete_NormalizedComparison(t *testing.T) {
	jobs, companies := newStubJobRepo(), newStubCompanyRepo()
	company := seedCompany(t, companies, "owner")
	svc := NewJobService(jobs, companies, zerolog.Nop())

	job, _ := svc.Create(context.Background(), jobInput(company.ID, "owner"))
	if err := svc.Delete(context.Background(), job.ID, " owner "); err != nil {
		t.Fatalf("whitespace-padded id must still match: %v", err)
	}
}

func TestJobService_Delete_MissingJob(t *testing.T) {
	svc := NewJobService(newStubJobRepo(), newStubCompanyRepo(), zerolog.Nop())
	if err := svc.Delete(context.Background(), "job_404", "anyone"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestJobService_ListByCreator(t *testing.T) {
	jobs, companies := newStubJobRepo(), newStubCompanyRepo()
	company := seedCompany(t, companies, "rec_1")
	svc := NewJobService(jobs, companies, zerolog.Nop())

	if _, err := svc.Create(context.Background(), jobInput(company.ID, "rec_1")); err != nil {
		t.Fatalf("create: %v", err)
	}
	time.Sleep(time.Millisecond)

	mine, err := svc.ListByCreator(context.Background(), "rec_1")
	if err != nil || len(mine) != 1 {
		t.Fatalf("expected one posting, got %v (%v)", mine, err)
	}
	if _, err := svc.ListByCreator(context.Background(), "rec_2"); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not-found for empty list, got %v", err)
	}
}
