// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker  func() bool
	sessionStoreKind string
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status       string `json:"status"`
	Database     string `json:"database"`
	SessionStore string `json:"session_store"`
	Timestamp    string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
// sessionStoreKind names the active session backend ("redis" or "memory").
func NewHealthController(dbHealthChecker func() bool, sessionStoreKind string) *HealthController {
	return &HealthController{
		dbHealthChecker:  dbHealthChecker,
		sessionStoreKind: sessionStoreKind,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	dbStatus := "disconnected"
	status := "degraded"
	if h.dbHealthChecker != nil && h.dbHealthChecker() {
		dbStatus = "connected"
		status = "ok"
	}

	response := HealthResponse{
		Status:       status,
		Database:     dbStatus,
		SessionStore: h.sessionStoreKind,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
