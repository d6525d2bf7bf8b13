package handler

import (
	"time"

	"github.com/Virag-Koradiya/ElevateU/internal/core/domain"
	"github.com/Virag-Koradiya/ElevateU/internal/core/ports"
)

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}

type applicationResponse struct {
	ID        string    `json:"_id"`
	JobID     string    `json:"job"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type appliedJobResponse struct {
	applicationResponse
	Job *jobResponse `json:"jobDetails,omitempty"`
}

type applicantResponse struct {
	applicationResponse
	Applicant *userResponse `json:"applicant,omitempty"`
}

type applicationEnvelope struct {
	Success     bool                 `json:"success"`
	Message     string               `json:"message,omitempty"`
	Application *applicationResponse `json:"application,omitempty"`
}

type appliedJobsEnvelope struct {
	Success      bool                 `json:"success"`
	Applications []appliedJobResponse `json:"applications"`
}

type applicantsEnvelope struct {
	Success    bool                `json:"success"`
	Applicants []applicantResponse `json:"applicants"`
}

func toApplicationResponse(a *domain.Application) *applicationResponse {
	if a == nil {
		return nil
	}
	return &applicationResponse{
		ID:        a.ID,
		JobID:     a.JobID,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
	}
}

func toAppliedJobsResponse(items []ports.AppliedJob) []appliedJobResponse {
	out := make([]appliedJobResponse, 0, len(items))
	for _, item := range items {
		entry := appliedJobResponse{applicationResponse: *toApplicationResponse(&item.Application)}
		entry.Job = toJobResponse(item.Job, item.Company)
		out = append(out, entry)
	}
	return out
}

func toApplicantsResponse(items []ports.Applicant) []applicantResponse {
	out := make([]applicantResponse, 0, len(items))
	for _, item := range items {
		entry := applicantResponse{applicationResponse: *toApplicationResponse(&item.Application)}
		entry.Applicant = toUserResponse(item.User)
		out = append(out, entry)
	}
	return out
}
