// internal/models/application.go
package models

// ApplicationStatus is the review state of a submitted application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Applicant is the denormalized profile snapshot attached to an application.
type Applicant struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Application ties a job posting to an applicant and a resume.
type Application struct {
	ID        string            `json:"_id"`
	JobID     string            `json:"job"`
	Applicant Applicant         `json:"applicant"`
	ResumeURL string            `json:"resume"`
	Status    ApplicationStatus `json:"status"`
	CreatedAt string            `json:"createdAt,omitempty"`
	UpdatedAt string            `json:"updatedAt,omitempty"`
}

// Resume is a saved resume the seeker can reuse when applying.
type Resume struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	URL        string `json:"url"`
	UploadedAt string `json:"uploadedAt,omitempty"`
}
