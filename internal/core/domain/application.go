package domain

import "time"

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// ValidApplicationStatus reports whether s is a known review state.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationPending, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Application links a seeker to a job. At most one exists per
// (job, applicant) pair.
type Application struct {
	ID          string            `json:"_id"`
	JobID       string            `json:"job"`
	ApplicantID string            `json:"applicant"`
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
}
