package domain

import "time"

// Company is a recruiter-owned organization jobs are posted under.
// Name is unique across the store.
type Company struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	Location    string    `json:"location,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	OwnerID     string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
}
