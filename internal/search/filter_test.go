// internal/search/filter_test.go
package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobportal-gateway/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func createJob(title, company, location string) *models.JobPosting {
	return &models.JobPosting{
		Title:    title,
		Company:  models.JobCompany{Name: company},
		Location: location,
		Type:     models.JobTypeFullTime,
	}
}

func intPtr(v int) *int { return &v }

func sampleJobs() []models.JobPosting {
	return []models.JobPosting{
		{
			Title:      "Data Analyst",
			Company:    models.JobCompany{Name: "Acme"},
			Type:       models.JobTypeFullTime,
			Experience: models.ExperienceRange{Min: 0, Max: 2},
			Country:    "US", State: "CA", City: "SF",
		},
		{
			Title:      "Data Engineer",
			Company:    models.JobCompany{Name: "Initech"},
			Type:       models.JobTypeContract,
			Experience: models.ExperienceRange{Min: 3, Max: 6},
			Country:    "US", State: "NY", City: "NYC",
		},
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestMatches_IdentityFilter(t *testing.T) {
	jobs := sampleJobs()
	empty := &FilterState{}

	for i := range jobs {
		assert.True(t, Matches(&jobs[i], empty), "empty filter must match %q", jobs[i].Title)
	}
}

func TestMatches_TypeFacet(t *testing.T) {
	job := createJob("Backend Engineer", "Acme", "Remote")

	tests := []struct {
		name     string
		jobType  string
		expected bool
	}{
		{"matching type includes", "full-time", true},
		{"different type excludes", "contract", false},
		{"unset type matches everything", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &FilterState{Type: tt.jobType}
			assert.Equal(t, tt.expected, Matches(job, f))
		})
	}
}

func TestMatches_FreeTextSearch(t *testing.T) {
	job := createJob("Backend Engineer", "Acme", "Remote")

	tests := []struct {
		name     string
		term     string
		expected bool
	}{
		{"case-insensitive company match", "ACME", true},
		{"title match", "backend", true},
		{"location match", "remote", true},
		{"no field matches", "xyz", false},
		{"empty term matches", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &FilterState{Search: tt.term}
			assert.Equal(t, tt.expected, Matches(job, f))
		})
	}
}

func TestMatches_FreeTextSearchesDecomposedLocation(t *testing.T) {
	job := &models.JobPosting{
		Title:   "SRE",
		Company: models.JobCompany{Name: "Acme"},
		Country: "IN", State: "Karnataka", City: "Bengaluru",
	}

	assert.True(t, Matches(job, &FilterState{Search: "karnataka"}))
	assert.True(t, Matches(job, &FilterState{Search: "bengaluru"}))
	assert.False(t, Matches(job, &FilterState{Search: "mumbai"}))
}

func TestMatches_ExperienceRange(t *testing.T) {
	job := &models.JobPosting{
		Title:      "Platform Engineer",
		Experience: models.ExperienceRange{Min: 2, Max: 5},
	}

	tests := []struct {
		name     string
		filter   FilterState
		expected bool
	}{
		{"job min below selected min excludes", FilterState{ExperienceMin: intPtr(3)}, false},
		{"job min at selected min includes", FilterState{ExperienceMin: intPtr(2)}, true},
		{"job max above selected max excludes", FilterState{ExperienceMax: intPtr(4)}, false},
		{"job max at selected max includes", FilterState{ExperienceMax: intPtr(5)}, true},
		{"both bounds satisfied", FilterState{ExperienceMin: intPtr(1), ExperienceMax: intPtr(6)}, true},
		{"unset bounds unconstrained", FilterState{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Matches(job, &tt.filter))
		})
	}
}

func TestApply_EndToEnd(t *testing.T) {
	jobs := sampleJobs()

	result := Apply(jobs, &FilterState{Type: "full-time"})

	assert.Len(t, result, 1)
	assert.Equal(t, "Data Analyst", result[0].Title)
}

func TestApply_PreservesOrderAndHandlesEmpty(t *testing.T) {
	jobs := sampleJobs()

	all := Apply(jobs, &FilterState{})
	assert.Equal(t, []string{"Data Analyst", "Data Engineer"}, []string{all[0].Title, all[1].Title})

	none := Apply(jobs, &FilterState{Search: "nonexistent"})
	assert.Empty(t, none)

	assert.Empty(t, Apply(nil, &FilterState{}))
}

func TestFilterState_ParentFacetChangeClearsChildren(t *testing.T) {
	f := &FilterState{}
	f.SetCountry("IN")
	f.SetState("Karnataka")
	f.SetCity("Bengaluru")

	f.SetCountry("US")

	assert.Equal(t, "US", f.Country)
	assert.Empty(t, f.State, "state must reset on country change")
	assert.Empty(t, f.City, "city must reset on country change")
}

func TestFilterState_StateChangeClearsCity(t *testing.T) {
	f := &FilterState{Country: "US", State: "CA", City: "SF"}

	f.SetState("NY")

	assert.Equal(t, "NY", f.State)
	assert.Empty(t, f.City)
}

func TestFilterState_ReselectingSameParentKeepsChildren(t *testing.T) {
	f := &FilterState{Country: "US", State: "CA", City: "SF"}

	f.SetCountry("US")

	assert.Equal(t, "CA", f.State)
	assert.Equal(t, "SF", f.City)
}
