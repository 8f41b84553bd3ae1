// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/walletive/backend/internal/infra/metrics"
	"github.com/walletive/backend/internal/integration/entrypoint/controller"
	"github.com/walletive/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	surveyController      *controller.SurveyController
	dashboardController   *controller.DashboardController
	transactionController *controller.TransactionController
	goalController        *controller.GoalController
	setupController       *controller.SetupController
	submitRateLimiter     *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	surveyController *controller.SurveyController,
	dashboardController *controller.DashboardController,
	transactionController *controller.TransactionController,
	goalController *controller.GoalController,
	setupController *controller.SetupController,
	submitRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		surveyController:      surveyController,
		dashboardController:   dashboardController,
		transactionController: transactionController,
		goalController:        goalController,
		setupController:       setupController,
		submitRateLimiter:     submitRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()
	r.engine.Use(metrics.Middleware())

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check and metrics endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/metrics", metrics.Handler())
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	limit := gin.HandlerFunc(func(c *gin.Context) { c.Next() })
	if r.submitRateLimiter != nil {
		limit = r.submitRateLimiter.Middleware()
	}

	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		if r.surveyController != nil {
			surveyGroup := v1.Group("/survey")
			{
				surveyGroup.POST("/sessions", r.surveyController.StartSession)
				surveyGroup.GET("/sessions/:id", r.surveyController.GetSession)
				surveyGroup.POST("/sessions/:id/answers", limit, r.surveyController.Answer)
				surveyGroup.POST("/sessions/:id/back", r.surveyController.Back)
				surveyGroup.DELETE("/sessions/:id", r.surveyController.DiscardSession)
				surveyGroup.POST("/submissions", limit, r.surveyController.Submit)
			}
		}

		if r.setupController != nil {
			v1.GET("/setup", r.setupController.GetStatus)
		}

		if r.dashboardController != nil {
			v1.GET("/dashboard/summary", r.dashboardController.GetSummary)
		}

		if r.transactionController != nil {
			v1.GET("/transactions", r.transactionController.List)
		}

		if r.goalController != nil {
			goals := v1.Group("/goals")
			{
				goals.GET("", r.goalController.List)
				goals.DELETE("/:id", r.goalController.Delete)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
