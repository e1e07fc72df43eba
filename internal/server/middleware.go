// internal/server/middleware.go
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "jobportal-gateway/internal/common/errors"
	"jobportal-gateway/internal/common/metrics"
	"jobportal-gateway/internal/session"
)

const snapshotKey = "sessionSnapshot"

// withSession resolves the session cookie into a Snapshot and stores it on
// the request context. A missing or invalid session yields the logged-out
// snapshot; it is requireSession's job to reject it.
func (s *Server) withSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(s.cfg.Session.CookieName)
		snap := s.sessions.Bootstrap(c.Request.Context(), id)
		c.Set(snapshotKey, snap)
		c.Next()
	}
}

// requireSession rejects requests whose snapshot is logged out. This mirrors
// the pages' "!loading && !user → redirect to login" guard; the browser sees
// a 401 and navigates to the login page itself.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := s.snapshot(c)
		if !snap.LoggedIn() {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success":  false,
				"error":    apperrors.ErrCodeSessionMissing,
				"message":  "Not logged in",
				"redirect": "/login",
			})
			return
		}
		c.Next()
	}
}

func (s *Server) snapshot(c *gin.Context) *session.Snapshot {
	if v, ok := c.Get(snapshotKey); ok {
		if snap, ok := v.(*session.Snapshot); ok {
			return snap
		}
	}
	return &session.Snapshot{}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		s.log.Debug("request handled", map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
	}
}

// respondError converts any error into the single transient error payload
// shape the pages render as a toast. There is no retryable/permanent split on
// this path: message shown, state left as it was.
func (s *Server) respondError(c *gin.Context, page string, err error) {
	se, ok := err.(*apperrors.StandardError)
	if !ok {
		se = apperrors.NewUpstreamUnavailableError(err)
	}

	metrics.PageRequestsFailed.WithLabelValues(page, string(se.Code)).Inc()
	s.log.Warn("page action failed", map[string]interface{}{
		"page":  page,
		"code":  string(se.Code),
		"error": se.Message,
	})

	status := http.StatusBadRequest
	switch se.Code {
	case apperrors.ErrCodeUpstreamUnavailable, apperrors.ErrCodeSessionStoreFailed:
		status = http.StatusBadGateway
	case apperrors.ErrCodeAuthFailed, apperrors.ErrCodeSessionExpired, apperrors.ErrCodeSessionMissing:
		status = http.StatusUnauthorized
	}

	c.JSON(status, gin.H{
		"success": false,
		"error":   se.Code,
		"message": se.Message,
	})
}
