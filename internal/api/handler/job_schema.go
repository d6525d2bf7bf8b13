package handler

import (
	"time"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
)

type createJobRequest struct {
	Title        string  `json:"title"        validate:"required"`
	Description  string  `json:"description"  validate:"required"`
	Requirements string  `json:"requirements" validate:"required"`
	Salary       float64 `json:"salary"       validate:"required,gt=0"`
	Location     string  `json:"location"     validate:"required"`
	JobType      string  `json:"jobType"      validate:"required"`
	Experience   string  `json:"experience"   validate:"required"`
	Position     int     `json:"position"     validate:"required,gt=0"`
	CompanyID    string  `json:"companyId"    validate:"required"`
}

type companyResponse struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	Location    string    `json:"location,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	OwnerID     string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type jobResponse struct {
	ID              string           `json:"_id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Requirements    []string         `json:"requirements"`
	Salary          float64          `json:"salary"`
	Location        string           `json:"location"`
	JobType         string           `json:"jobType"`
	ExperienceLevel string           `json:"experienceLevel"`
	Position        int              `json:"position"`
	CompanyID       string           `json:"company"`
	Company         *companyResponse `json:"companyDetails,omitempty"`
	CreatedBy       string           `json:"created_by"`
	Applications    []string         `json:"applications"`
	CreatedAt       time.Time        `json:"createdAt"`
}

type jobEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Job     *jobResponse `json:"job,omitempty"`
}

type jobsEnvelope struct {
	Success bool          `json:"success"`
	Jobs    []jobResponse `json:"jobs"`
}

func toCompanyResponse(c *domain.Company) *companyResponse {
	if c == nil {
		return nil
	}
	return &companyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		Location:    c.Location,
		Logo:        c.Logo,
		OwnerID:     c.OwnerID,
		CreatedAt:   c.CreatedAt,
	}
}

func toJobResponse(j *domain.Job, company *domain.Company) *jobResponse {
	if j == nil {
		return nil
	}
	return &jobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    j.Requirements,
		Salary:          j.Salary,
		Location:        j.Location,
		JobType:         j.JobType,
		ExperienceLevel: j.ExperienceLevel,
		Position:        j.Position,
		CompanyID:       j.CompanyID,
		Company:         toCompanyResponse(company),
		CreatedBy:       j.CreatedBy,
		Applications:    j.ApplicationIDs,
		CreatedAt:       j.CreatedAt,
	}
}

func toJobsResponse(items []ports.JobWithCompany) []jobResponse {
	out := make([]jobResponse, 0, len(items))
	for _, item := range items {
		job := item.Job
		out = append(out, *toJobResponse(&job, item.Company))
	}
	return out
}
