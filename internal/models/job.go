// internal/models/job.go
package models

// JobType enumerates the employment types the portal knows about.
type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)

// JobStatus is the posting lifecycle state.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

// ExperienceRange is the required experience window in years.
type ExperienceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SalaryRange is optional on a posting.
type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency,omitempty"`
}

// JobCompany is the denormalized company block embedded in a posting.
type JobCompany struct {
	ID      string   `json:"_id"`
	Name    string   `json:"name"`
	Company *Company `json:"company,omitempty"`
}

// JobPosting mirrors the wire shape served by the portal API. Immutable from
// the gateway's perspective except recruiter-initiated delete.
type JobPosting struct {
	ID           string          `json:"_id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Company      JobCompany      `json:"company"`
	Location     string          `json:"location"`
	Country      string          `json:"country,omitempty"`
	State        string          `json:"state,omitempty"`
	City         string          `json:"city,omitempty"`
	Requirements []string        `json:"requirements"`
	Type         JobType         `json:"type"`
	Experience   ExperienceRange `json:"experience"`
	Salary       *SalaryRange    `json:"salary,omitempty"`
	Status       JobStatus       `json:"status"`
	CreatedAt    string          `json:"createdAt,omitempty"`
	UpdatedAt    string          `json:"updatedAt,omitempty"`
}

// NewJobPosting is the payload for recruiter job creation.
type NewJobPosting struct {
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Location     string          `json:"location"`
	Country      string          `json:"country,omitempty"`
	State        string          `json:"state,omitempty"`
	City         string          `json:"city,omitempty"`
	Requirements []string        `json:"requirements"`
	Type         JobType         `json:"type"`
	Experience   ExperienceRange `json:"experience"`
	Salary       *SalaryRange    `json:"salary,omitempty"`
}
