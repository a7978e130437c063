package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"legilight-backend/internal/documents"
	"legilight-backend/internal/samples"
	"legilight-backend/internal/shared/config"
	"legilight-backend/internal/shared/metrics"
	"legilight-backend/internal/shared/server/middleware"
	"legilight-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers and status probes the router wires up.
type RouterDeps struct {
	Config           config.Config
	DocumentsHandler *documents.Handler
	SamplesHandler   *samples.Handler
	AIReady          func() bool
	DBConnected      bool
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api")
	api.GET("/", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{
			"message": "LegiLight API - Transform legal complexity into clarity",
		})
	})
	api.GET("/health", func(c *gin.Context) {
		aiStatus := deps.AIReady != nil && deps.AIReady()
		respond.JSON(c, http.StatusOK, gin.H{
			"status": "healthy",
			"services": gin.H{
				"ai_analysis": aiStatus,
				"database":    deps.DBConnected,
				"timestamp":   time.Now().UTC().Format(time.RFC3339Nano),
			},
		})
	})

	if deps.DocumentsHandler != nil {
		deps.DocumentsHandler.RegisterRoutes(api)
	}
	if deps.SamplesHandler != nil {
		deps.SamplesHandler.RegisterRoutes(api)
	}

	if deps.Config.Env == "dev" {
		api.GET("/metrics", metrics.Handler())
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
