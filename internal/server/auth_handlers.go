// internal/server/auth_handlers.go
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apperrors "jobportal-gateway/internal/common/errors"
	"jobportal-gateway/internal/common/metrics"
	"jobportal-gateway/internal/models"
	"jobportal-gateway/internal/resetflow"
	"jobportal-gateway/internal/upstream"
)

var validate = validator.New()

const resetFlowCookie = "portal_reset"

type loginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=user recruiter"`
}

type signupForm struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=user recruiter"`
}

type forgotPasswordForm struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=user recruiter"`
}

type resetPasswordForm struct {
	OTP             string `json:"otp" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

func (s *Server) login(c *gin.Context) {
	metrics.PageRequestsTotal.WithLabelValues("login").Inc()

	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		s.respondError(c, "login", apperrors.NewValidationFailedError(err.Error()))
		return
	}
	if err := validate.Struct(form); err != nil {
		s.respondError(c, "login", apperrors.NewValidationFailedError(err.Error()))
		return
	}

	role := models.Role(form.Role)
	token, err := s.upstream.Login(c.Request.Context(), upstream.LoginRequest{
		Email:    form.Email,
		Password: form.Password,
		Role:     role,
	})
	if err != nil {
		s.respondError(c, "login", err)
		return
	}

	id, snap, err := s.sessions.Login(c.Request.Context(), token, role)
	if err != nil {
		s.respondError(c, "login", err)
		return
	}

	s.setSessionCookie(c, id, s.cfg.Session.TTL)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"role":    snap.Role,
		"user":    snap.User,
	})
}

func (s *Server) signup(c *gin.Context) {
	metrics.PageRequestsTotal.WithLabelValues("signup").Inc()

	var form signupForm
	if err := c.ShouldBindJSON(&form); err != nil {
		s.respondError(c, "signup", apperrors.NewValidationFailedError(err.Error()))
		return
	}
	if err := validate.Struct(form); err != nil {
		s.respondError(c, "signup", apperrors.NewValidationFailedError(err.Error()))
		return
	}

	err := s.upstream.Signup(c.Request.Context(), upstream.SignupRequest{
		Name:     form.Name,
		Email:    form.Email,
		Password: form.Password,
		Role:     models.Role(form.Role),
	})
	if err != nil {
		s.respondError(c, "signup", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account created"})
}

// logout clears the session synchronously. It always succeeds from the
// browser's perspective; no upstream call is involved.
func (s *Server) logout(c *gin.Context) {
	metrics.PageRequestsTotal.WithLabelValues("logout").Inc()

	if id, err := c.Cookie(s.cfg.Session.CookieName); err == nil && id != "" {
		s.sessions.Logout(c.Request.Context(), id)
	}
	s.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// sessionState is the bootstrap endpoint the browser hits on app load to
// rehydrate its login state.
func (s *Server) sessionState(c *gin.Context) {
	id, _ := c.Cookie(s.cfg.Session.CookieName)
	snap := s.sessions.Bootstrap(c.Request.Context(), id)

	if !snap.LoggedIn() {
		// Silent degradation: the stale cookie is dropped, no error surfaced.
		if id != "" {
			s.setSessionCookie(c, "", -1)
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "loading": false, "user": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"loading": false,
		"role":    snap.Role,
		"user":    snap.User,
	})
}

func (s *Server) forgotPassword(c *gin.Context) {
	metrics.PageRequestsTotal.WithLabelValues("forgot-password").Inc()

	var form forgotPasswordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		s.respondError(c, "forgot-password", apperrors.NewValidationFailedError(err.Error()))
		return
	}
	if err := validate.Struct(form); err != nil {
		s.respondError(c, "forgot-password", apperrors.NewValidationFailedError(err.Error()))
		return
	}

	flowID, flow := s.resetFlow(c, true)
	if err := flow.RequestOTP(c.Request.Context(), s.upstream, form.Email, models.Role(form.Role)); err != nil {
		s.respondError(c, "forgot-password", err)
		return
	}

	c.SetCookie(resetFlowCookie, flowID, 900, "/", "", s.cfg.Session.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "step": flow.Step()})
}

func (s *Server) forgotPasswordBack(c *gin.Context) {
	_, flow := s.resetFlow(c, false)
	if flow == nil {
		s.respondError(c, "forgot-password", apperrors.NewValidationFailedError("no reset in progress"))
		return
	}
	flow.Back()
	c.JSON(http.StatusOK, gin.H{"success": true, "step": flow.Step(), "email": flow.Email(), "role": flow.Role()})
}

func (s *Server) forgotPasswordCancel(c *gin.Context) {
	if id, err := c.Cookie(resetFlowCookie); err == nil {
		s.dropResetFlow(id)
		c.SetCookie(resetFlowCookie, "", -1, "/", "", s.cfg.Session.CookieSecure, true)
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "step": resetflow.StepRequestOTP})
}

func (s *Server) resetPassword(c *gin.Context) {
	metrics.PageRequestsTotal.WithLabelValues("reset-password").Inc()

	var form resetPasswordForm
	if err := c.ShouldBindJSON(&form); err != nil {
		s.respondError(c, "reset-password", apperrors.NewValidationFailedError(err.Error()))
		return
	}

	flowID, flow := s.resetFlow(c, false)
	if flow == nil {
		s.respondError(c, "reset-password", apperrors.NewValidationFailedError("no reset in progress"))
		return
	}

	err := flow.Reset(c.Request.Context(), s.upstream, form.OTP, form.NewPassword, form.ConfirmPassword)
	if err != nil {
		s.respondError(c, "reset-password", err)
		return
	}

	// Terminal: the dialog closes and the flow state is discarded.
	s.dropResetFlow(flowID)
	c.SetCookie(resetFlowCookie, "", -1, "/", "", s.cfg.Session.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "step": resetflow.StepDone})
}

// resetFlow finds (or, when create is set, makes) the reset flow bound to the
// browser's reset cookie.
func (s *Server) resetFlow(c *gin.Context, create bool) (string, *resetflow.Flow) {
	id, err := c.Cookie(resetFlowCookie)

	s.flowMu.Lock()
	defer s.flowMu.Unlock()

	if err == nil && id != "" {
		if flow, ok := s.flows[id]; ok {
			return id, flow
		}
	}
	if !create {
		return "", nil
	}

	id = uuid.NewString()
	flow := resetflow.New()
	s.flows[id] = flow
	return id, flow
}

func (s *Server) dropResetFlow(id string) {
	s.flowMu.Lock()
	defer s.flowMu.Unlock()
	delete(s.flows, id)
}

func (s *Server) setSessionCookie(c *gin.Context, id string, maxAge int) {
	c.SetCookie(s.cfg.Session.CookieName, id, maxAge, "/", "", s.cfg.Session.CookieSecure, true)
}
