// internal/search/facets.go
package search

import (
	"sort"

	"jobportal-gateway/internal/models"
)

// Countries returns the distinct, sorted set of countries present in jobs.
func Countries(jobs []models.JobPosting) []string {
	return distinct(jobs, func(j *models.JobPosting) string { return j.Country })
}

// States returns the distinct, sorted set of states among jobs whose country
// matches the selected country. An empty country yields no states: the state
// facet only becomes selectable once a parent country is chosen.
func States(jobs []models.JobPosting, country string) []string {
	if country == "" {
		return nil
	}
	return distinct(jobs, func(j *models.JobPosting) string {
		if j.Country != country {
			return ""
		}
		return j.State
	})
}

// Cities returns the distinct, sorted set of cities among jobs matching the
// selected country and state.
func Cities(jobs []models.JobPosting, country, state string) []string {
	if country == "" || state == "" {
		return nil
	}
	return distinct(jobs, func(j *models.JobPosting) string {
		if j.Country != country || j.State != state {
			return ""
		}
		return j.City
	})
}

// Types returns the distinct, sorted set of employment types present in jobs.
func Types(jobs []models.JobPosting) []string {
	return distinct(jobs, func(j *models.JobPosting) string { return string(j.Type) })
}

func distinct(jobs []models.JobPosting, extract func(*models.JobPosting) string) []string {
	seen := make(map[string]bool)
	for i := range jobs {
		if val := extract(&jobs[i]); val != "" {
			seen[val] = true
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for val := range seen {
		out = append(out, val)
	}
	sort.Strings(out)
	return out
}
