// internal/models/profile.go
package models

// Role discriminates the two account kinds on the portal.
type Role string

const (
	RoleUser      Role = "user"
	RoleRecruiter Role = "recruiter"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleRecruiter
}

// Education is one entry in a job seeker's education history.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        int    `json:"graduationYear"`
}

// Experience is one entry in a job seeker's work history.
type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// SeekerProfile holds the job-seeker-only profile section.
type SeekerProfile struct {
	Address    string       `json:"address,omitempty"`
	Skills     []string     `json:"skills,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
}

// Company holds the recruiter-only profile section.
type Company struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Address     string `json:"address,omitempty"`
	Website     string `json:"website,omitempty"`
	Industry    string `json:"industry,omitempty"`
}

// Profile is a tagged union discriminated by Role: exactly one of Seeker or
// Company is populated. This replaces the loose optional-field record the
// portal API serves, so views never have to guard both sections at once.
type Profile struct {
	ID           string         `json:"_id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Role         Role           `json:"role"`
	ProfileImage string         `json:"profileImage,omitempty"`
	Seeker       *SeekerProfile `json:"profile,omitempty"`
	Company      *Company       `json:"company,omitempty"`
	CreatedAt    string         `json:"createdAt,omitempty"`
	UpdatedAt    string         `json:"updatedAt,omitempty"`
}

// IsRecruiter reports whether the profile belongs to a recruiter account.
func (p *Profile) IsRecruiter() bool {
	return p.Role == RoleRecruiter
}

// Normalize enforces the union invariant after decoding an upstream payload:
// the section that does not match the role is dropped.
func (p *Profile) Normalize() {
	if p.IsRecruiter() {
		p.Seeker = nil
	} else {
		p.Company = nil
	}
}
