package handlers

import (
	"github.com/gin-gonic/gin"

	"flowboard/internal/config"
	"flowboard/internal/middleware"
	"flowboard/internal/monitoring"
)

// Deps bundles everything the router needs, assembled once in main.
type Deps struct {
	Tasks     *TaskHandler
	Team      *TeamHandler
	Dashboard *DashboardHandler
	Session   *SessionHandler
	Metrics   *monitoring.Metrics
	Health    *monitoring.HealthChecker
}

// NewRouter wires middleware and routes for the dashboard API.
func NewRouter(cfg *config.Config, deps Deps) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RecoveryWithLog())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	router.Use(deps.Metrics.Middleware())

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.BurstSize,
			cfg.RateLimit.CleanupInterval,
		)
		router.Use(limiter.Middleware())
	}

	router.GET("/healthz", deps.Health.Handler())
	router.GET("/readyz", deps.Health.ReadinessHandler())
	router.GET("/livez", monitoring.LivenessHandler())
	router.GET("/metrics", deps.Metrics.Handler())

	api := router.Group("/api")
	if cfg.Auth.Enabled {
		api.Use(middleware.BearerAuth(cfg.Auth.JWTSecret))
	}

	api.GET("/board", deps.Tasks.GetBoard)
	api.GET("/tasks", deps.Tasks.ListTasks)
	api.POST("/tasks", deps.Tasks.CreateTask)
	api.PUT("/tasks/:id", deps.Tasks.UpdateTask)
	api.PATCH("/tasks/:id/status", deps.Tasks.MoveTask)
	api.DELETE("/tasks/:id", deps.Tasks.DeleteTask)

	api.GET("/team", deps.Team.ListMembers)
	api.POST("/team", deps.Team.CreateMember)
	api.PUT("/team/:id", deps.Team.UpdateMember)
	api.DELETE("/team/:id", deps.Team.DeleteMember)

	api.GET("/projects", deps.Dashboard.ListProjects)
	api.GET("/projects/:id", deps.Dashboard.GetProject)
	api.GET("/dashboard/kpis", deps.Dashboard.GetKPIs)
	api.GET("/dashboard/activities", deps.Dashboard.ListActivities)

	api.PUT("/session/token", deps.Session.SetToken)
	api.DELETE("/session/token", deps.Session.ClearToken)

	return router
}
