// internal/server/job_handlers.go
package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "jobportal-gateway/internal/common/errors"
	"jobportal-gateway/internal/common/metrics"
	"jobportal-gateway/internal/models"
	"jobportal-gateway/internal/search"
	"jobportal-gateway/internal/upstream"
)

// listJobs serves the jobs page: fetch the full list (optionally narrowed
// upstream), then apply the in-memory facet filter and derive the dependent
// facet options for the current selection.
func (s *Server) listJobs(c *gin.Context) {
	metrics.PageRequestsTotal.WithLabelValues("jobs").Inc()
	snap := s.snapshot(c)

	query := upstream.JobQuery{
		Location:     c.Query("location"),
		Type:         c.Query("type"),
		Experience:   c.Query("experience"),
		Requirements: c.Query("requirements"),
	}
	jobs, err := s.upstream.ListJobs(c.Request.Context(), snap.Token, query)
	if err != nil {
		s.respondError(c, "jobs", err)
		return
	}

	filter := filterFromQuery(c)
	visible := search.Apply(jobs, filter)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    visible,
		"facets": gin.H{
			"countries": search.Countries(jobs),
			"states":    search.States(jobs, filter.Country),
			"cities":    search.Cities(jobs, filter.Country, filter.State),
			"types":     search.Types(jobs),
		},
	})
}

// filterFromQuery builds the request-local filter state. Country and state
// are applied through the setters so a child facet inconsistent with its
// parent can never reach the scan.
func filterFromQuery(c *gin.Context) *search.FilterState {
	f := &search.FilterState{
		Search: c.Query("search"),
		Type:   c.Query("jobType"),
	}
	f.SetCountry(c.Query("country"))
	f.SetState(c.Query("state"))
	f.SetCity(c.Query("city"))

	if raw := c.Query("experienceMin"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			f.ExperienceMin = &v
		}
	}
	if raw := c.Query("experienceMax"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			f.ExperienceMax = &v
		}
	}
	return f
}

func (s *Server) getJob(c *gin.Context) {
	metrics.PageRequestsTotal.WithLabelValues("job-detail").Inc()
	snap := s.snapshot(c)

	job, err := s.upstream.GetJob(c.Request.Context(), snap.Token, c.Param("id"))
	if err != nil {
		s.respondError(c, "job-detail", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": job})
}

// createJob posts a new opening. Recruiter-only in the UI; the payload is
// checked against the posting schema before anything goes upstream.
func (s *Server) createJob(c *gin.Context) {
	metrics.PageRequestsTotal.WithLabelValues("post-job").Inc()
	snap := s.snapshot(c)

	if snap.Role != models.RoleRecruiter {
		s.respondError(c, "post-job", apperrors.NewValidationFailedError("only recruiters can post jobs"))
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		s.respondError(c, "post-job", apperrors.NewValidationFailedError(err.Error()))
		return
	}
	if err := validateJobPayload(raw); err != nil {
		s.respondError(c, "post-job", err)
		return
	}

	var job models.NewJobPosting
	if err := jsonUnmarshal(raw, &job); err != nil {
		s.respondError(c, "post-job", apperrors.NewValidationFailedError(err.Error()))
		return
	}

	if err := s.upstream.CreateJob(c.Request.Context(), snap.Token, job); err != nil {
		s.respondError(c, "post-job", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Job posted"})
}

// deleteJob removes a posting. The jobs page drops the card from its local
// list on a success response; there is no rollback path.
func (s *Server) deleteJob(c *gin.Context) {
	metrics.PageRequestsTotal.WithLabelValues("delete-job").Inc()
	snap := s.snapshot(c)

	if snap.Role != models.RoleRecruiter {
		s.respondError(c, "delete-job", apperrors.NewValidationFailedError("only recruiters can delete jobs"))
		return
	}

	if err := s.upstream.DeleteJob(c.Request.Context(), snap.Token, c.Param("id")); err != nil {
		s.respondError(c, "delete-job", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
