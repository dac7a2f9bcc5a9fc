package server

import (
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/contact"
	"portfolio-backend/internal/health"
	"portfolio-backend/internal/resume"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/shared/server/respond"
)

// RouterDeps carries everything the router needs; handlers are built by the
// caller so tests can swap the stack underneath them.
type RouterDeps struct {
	Config         config.Config
	ResumeHandler  *resume.Handler
	ContactHandler *contact.Handler
	Health         *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigins),
	)

	// Static surface: the landing document and the read-only assets dir
	// (images and the resume itself).
	r.Use(static.Serve("/assets", static.LocalFile(deps.Config.AssetsDir, false)))
	if deps.Config.IndexFile != "" {
		indexFile := deps.Config.IndexFile
		r.GET("/", func(c *gin.Context) {
			c.File(indexFile)
		})
	}

	if deps.Health != nil {
		healthSvc := deps.Health
		r.GET("/health", func(c *gin.Context) {
			respond.OK(c, healthSvc.Status(c.Request.Context()))
		})
	}

	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(r)
	}
	if deps.ContactHandler != nil {
		deps.ContactHandler.RegisterRoutes(r)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
