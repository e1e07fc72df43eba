// internal/server/application_handlers.go
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "jobportal-gateway/internal/common/errors"
	"jobportal-gateway/internal/common/metrics"
	"jobportal-gateway/internal/models"
)

// applyToJob submits an application. Two submission modes, matching the
// apply page: a multipart PDF upload, or a JSON body reusing a saved resume
// URL. The PDF gate runs before anything is sent upstream.
func (s *Server) applyToJob(c *gin.Context) {
	metrics.PageRequestsTotal.WithLabelValues("apply").Inc()
	snap := s.snapshot(c)
	jobID := c.Param("id")

	contentType := c.ContentType()
	if contentType == "application/json" {
		var body struct {
			ResumeURL string `json:"resumeUrl"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.ResumeURL == "" {
			s.respondError(c, "apply", apperrors.NewValidationFailedError("resumeUrl is required"))
			return
		}
		if err := s.upstream.ApplyWithSavedResume(c.Request.Context(), snap.Token, jobID, body.ResumeURL); err != nil {
			s.respondError(c, "apply", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application submitted"})
		return
	}

	file, err := c.FormFile("resume")
	if err != nil {
		s.respondError(c, "apply", apperrors.NewValidationFailedError("resume file is required"))
		return
	}
	if file.Header.Get("Content-Type") != "application/pdf" {
		s.respondError(c, "apply", apperrors.NewResumeTypeInvalidError(file.Header.Get("Content-Type")))
		return
	}

	reader, err := file.Open()
	if err != nil {
		s.respondError(c, "apply", apperrors.NewValidationFailedError(err.Error()))
		return
	}
	defer reader.Close()

	if err := s.upstream.ApplyWithFile(c.Request.Context(), snap.Token, jobID, file.Filename, reader); err != nil {
		s.respondError(c, "apply", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application submitted"})
}

// jobApplicants lists the applications received for one posting.
// Recruiter-only in the UI; authorization is enforced upstream.
func (s *Server) jobApplicants(c *gin.Context) {
	metrics.PageRequestsTotal.WithLabelValues("applicants").Inc()
	snap := s.snapshot(c)

	if snap.Role != models.RoleRecruiter {
		s.respondError(c, "applicants", apperrors.NewValidationFailedError("recruiter view only"))
		return
	}

	apps, err := s.upstream.JobApplications(c.Request.Context(), snap.Token, c.Param("id"))
	if err != nil {
		s.respondError(c, "applicants", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": apps})
}

// userApplications lists one applicant's applications for the recruiter's
// applicant detail page.
func (s *Server) userApplications(c *gin.Context) {
	metrics.PageRequestsTotal.WithLabelValues("applicant-detail").Inc()
	snap := s.snapshot(c)

	if snap.Role != models.RoleRecruiter {
		s.respondError(c, "applicant-detail", apperrors.NewValidationFailedError("recruiter view only"))
		return
	}

	apps, err := s.upstream.UserApplications(c.Request.Context(), snap.Token, c.Param("userId"))
	if err != nil {
		s.respondError(c, "applicant-detail", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": apps})
}

func (s *Server) listResumes(c *gin.Context) {
	metrics.PageRequestsTotal.WithLabelValues("resumes").Inc()
	snap := s.snapshot(c)

	resumes, err := s.upstream.ListResumes(c.Request.Context(), snap.Token)
	if err != nil {
		s.respondError(c, "resumes", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": resumes})
}

// deleteResume removes a saved resume; the page drops it from local state on
// success.
func (s *Server) deleteResume(c *gin.Context) {
	metrics.PageRequestsTotal.WithLabelValues("delete-resume").Inc()
	snap := s.snapshot(c)

	if err := s.upstream.DeleteResume(c.Request.Context(), snap.Token, c.Param("id")); err != nil {
		s.respondError(c, "delete-resume", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
