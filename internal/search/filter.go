// Package search implements the in-memory faceted filtering of an already
// loaded job list. It is a pure linear scan: no pagination, sorting or
// indexing, because the owning page holds the full list in memory.
package search

import (
	"strings"

	"jobportal-gateway/internal/models"
)

// FilterState holds the currently selected facet values. Zero values ("" and
// nil bounds) leave a facet unconstrained. It is purely request-local state;
// nothing here is persisted.
type FilterState struct {
	Search        string `json:"search"`
	Country       string `json:"country"`
	State         string `json:"state"`
	City          string `json:"city"`
	Type          string `json:"type"`
	ExperienceMin *int   `json:"experienceMin,omitempty"`
	ExperienceMax *int   `json:"experienceMax,omitempty"`
}

// SetCountry selects a country facet and clears the dependent state and city
// selections, keeping child facets consistent with their parent.
func (f *FilterState) SetCountry(country string) {
	if f.Country != country {
		f.State = ""
		f.City = ""
	}
	f.Country = country
}

// SetState selects a state facet and clears the dependent city selection.
func (f *FilterState) SetState(state string) {
	if f.State != state {
		f.City = ""
	}
	f.State = state
}

// SetCity selects a city facet.
func (f *FilterState) SetCity(city string) {
	f.City = city
}

// Matches reports whether a job passes every selected facet. All predicates
// are ANDed together; the free-text predicate is itself an OR across fields.
func Matches(job *models.JobPosting, f *FilterState) bool {
	if !matchesSearch(job, f.Search) {
		return false
	}
	if f.Country != "" && job.Country != f.Country {
		return false
	}
	if f.State != "" && job.State != f.State {
		return false
	}
	if f.City != "" && job.City != f.City {
		return false
	}
	if f.Type != "" && string(job.Type) != f.Type {
		return false
	}
	if f.ExperienceMin != nil && job.Experience.Min < *f.ExperienceMin {
		return false
	}
	if f.ExperienceMax != nil && job.Experience.Max > *f.ExperienceMax {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match against title, company
// name, location and the decomposed country/state/city. An empty term matches
// everything.
func matchesSearch(job *models.JobPosting, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)

	fields := []string{
		job.Title,
		job.Company.Name,
		job.Location,
		job.Country,
		job.State,
		job.City,
	}
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Apply returns the subset of jobs matching the filter, preserving order.
func Apply(jobs []models.JobPosting, f *FilterState) []models.JobPosting {
	matched := make([]models.JobPosting, 0, len(jobs))
	for i := range jobs {
		if Matches(&jobs[i], f) {
			matched = append(matched, jobs[i])
		}
	}
	return matched
}
