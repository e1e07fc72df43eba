// internal/server/profile_handlers.go
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "jobportal-gateway/internal/common/errors"
	"jobportal-gateway/internal/common/metrics"
	"jobportal-gateway/internal/profile"
	"jobportal-gateway/internal/upstream"
)

// getProfile serves the profile page: the cached profile plus the completion
// score and missing-field list.
func (s *Server) getProfile(c *gin.Context) {
	metrics.PageRequestsTotal.WithLabelValues("profile").Inc()
	snap := s.snapshot(c)

	completion := profile.Calculate(snap.User)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       snap.User,
		"completion": completion,
	})
}

// updateProfile forwards the multipart edit form upstream and refreshes the
// session's cached profile on success, leaving the token untouched.
func (s *Server) updateProfile(c *gin.Context) {
	metrics.PageRequestsTotal.WithLabelValues("profile-edit").Inc()
	snap := s.snapshot(c)

	form, err := c.MultipartForm()
	if err != nil {
		s.respondError(c, "profile-edit", apperrors.NewValidationFailedError(err.Error()))
		return
	}

	update := upstream.ProfileUpdate{Fields: make(map[string]string)}
	for key, vals := range form.Value {
		if len(vals) > 0 {
			update.Fields[key] = vals[0]
		}
	}

	if files := form.File["profileImage"]; len(files) > 0 {
		reader, err := files[0].Open()
		if err != nil {
			s.respondError(c, "profile-edit", apperrors.NewValidationFailedError(err.Error()))
			return
		}
		defer reader.Close()
		update.Image = reader
		update.ImageName = files[0].Filename
	}

	if err := s.upstream.UpdateProfile(c.Request.Context(), snap.Token, update); err != nil {
		s.respondError(c, "profile-edit", err)
		return
	}

	// Refetch so the session cache reflects the accepted edit.
	fresh, err := s.upstream.GetProfile(c.Request.Context(), snap.Token)
	if err == nil {
		if id, cerr := c.Cookie(s.cfg.Session.CookieName); cerr == nil {
			s.sessions.UpdateUser(id, fresh)
		}
		snap.User = fresh
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": snap.User})
}
