package domain

import "time"

// Job is a posting created by a recruiter on behalf of a company.
type Job struct {
	ID              string    `json:"_id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Requirements    []string  `json:"requirements"`
	Salary          float64   `json:"salary"`
	Location        string    `json:"location"`
	JobType         string    `json:"jobType"`
	ExperienceLevel string    `json:"experienceLevel"`
	Position        int       `json:"position"`
	CompanyID       string    `json:"company"`
	CreatedBy       string    `json:"created_by"`
	ApplicationIDs  []string  `json:"applications"`
	CreatedAt       time.Time `json:"createdAt"`
}
