// Package server wires the browser-facing HTTP surface of the gateway. Each
// handler is a thin controller: resolve the session, call the upstream portal
// API, map the result (or the error) to a JSON payload for the page to render.
package server

import (
	"net/http"
	"sync"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jobportal-gateway/internal/common/config"
	"jobportal-gateway/internal/common/logger"
	"jobportal-gateway/internal/resetflow"
	"jobportal-gateway/internal/session"
	"jobportal-gateway/internal/upstream"
)

type Server struct {
	cfg      *config.Config
	log      logger.Logger
	sessions *session.Store
	upstream *upstream.Client
	router   *gin.Engine

	flowMu sync.Mutex
	flows  map[string]*resetflow.Flow
}

func New(cfg *config.Config, log logger.Logger, sessions *session.Store, client *upstream.Client) *Server {
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		cfg:      cfg,
		log:      log.WithFields(map[string]interface{}{"component": "server"}),
		sessions: sessions,
		upstream: client,
		flows:    make(map[string]*resetflow.Flow),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.requestLogger())

	corsCfg := cors.DefaultConfig()
	if len(cfg.Server.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	router.Use(cors.New(corsCfg))

	router.GET("/health", s.health)
	router.GET(cfg.Server.MetricsPath, gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", s.login)
			auth.POST("/signup", s.signup)
			auth.POST("/logout", s.logout)
			auth.GET("/session", s.sessionState)
			auth.POST("/forgot-password", s.forgotPassword)
			auth.POST("/forgot-password/back", s.forgotPasswordBack)
			auth.POST("/forgot-password/cancel", s.forgotPasswordCancel)
			auth.POST("/reset-password", s.resetPassword)
		}

		authed := api.Group("")
		authed.Use(s.withSession(), s.requireSession())
		{
			authed.GET("/jobs", s.listJobs)
			authed.GET("/jobs/:id", s.getJob)
			authed.POST("/jobs", s.createJob)
			authed.DELETE("/jobs/:id", s.deleteJob)

			authed.POST("/jobs/:id/apply", s.applyToJob)
			authed.GET("/jobs/:id/applicants", s.jobApplicants)
			authed.GET("/applicants/:userId/applications", s.userApplications)

			authed.GET("/resumes", s.listResumes)
			authed.DELETE("/resumes/:id", s.deleteResume)

			authed.GET("/profile", s.getProfile)
			authed.PUT("/profile", s.updateProfile)
		}
	}

	s.router = router
	return s
}

// Router exposes the configured engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func (s *Server) Run() error {
	return s.router.Run(s.cfg.Server.Addr())
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": s.cfg.App.Name})
}
