// Package profile holds the profile-completion heuristic shown on the
// profile page: a percentage plus the list of missing field names, with the
// field set depending on the account role.
package profile

import "jobportal-gateway/internal/models"

// Completion is the result of scoring a profile.
type Completion struct {
	Percent int      `json:"percent"`
	Missing []string `json:"missing,omitempty"`
}

type fieldCheck struct {
	name   string
	filled bool
}

// Calculate scores a profile. Common fields count for both roles; recruiters
// are scored on their company section, seekers on address, education, skills
// and experience.
func Calculate(p *models.Profile) Completion {
	if p == nil {
		return Completion{}
	}

	checks := []fieldCheck{
		{"Name", p.Name != ""},
		{"Email", p.Email != ""},
		{"Profile Image", p.ProfileImage != ""},
	}

	if p.IsRecruiter() {
		var c models.Company
		if p.Company != nil {
			c = *p.Company
		}
		checks = append(checks,
			fieldCheck{"Company Name", c.Name != ""},
			fieldCheck{"Company Description", c.Description != ""},
			fieldCheck{"Company Address", c.Address != ""},
			fieldCheck{"Company Website", c.Website != ""},
			fieldCheck{"Company Industry", c.Industry != ""},
		)
	} else {
		var s models.SeekerProfile
		if p.Seeker != nil {
			s = *p.Seeker
		}
		checks = append(checks,
			fieldCheck{"Address", s.Address != ""},
			fieldCheck{"Education Details", len(s.Education) > 0},
			fieldCheck{"Skills", len(s.Skills) > 0},
			fieldCheck{"Experience Details", len(s.Experience) > 0},
		)
	}

	completed := 0
	var missing []string
	for _, check := range checks {
		if check.filled {
			completed++
		} else {
			missing = append(missing, check.name)
		}
	}

	return Completion{
		Percent: completed * 100 / len(checks),
		Missing: missing,
	}
}
