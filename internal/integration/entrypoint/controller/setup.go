// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/walletive/backend/internal/application/usecase/setup"
	"github.com/walletive/backend/internal/integration/entrypoint/dto"
)

// SetupController handles the onboarding status endpoint.
type SetupController struct {
	statusUseCase *setup.GetStatusUseCase
}

// NewSetupController creates a new setup controller instance.
func NewSetupController(statusUseCase *setup.GetStatusUseCase) *SetupController {
	return &SetupController{
		statusUseCase: statusUseCase,
	}
}

// GetStatus handles GET /setup requests.
func (c *SetupController) GetStatus(ctx *gin.Context) {
	output, err := c.statusUseCase.Execute(ctx.Request.Context(), setup.GetStatusInput{})
	if err != nil {
		handleError(ctx, err, "Failed to retrieve setup status")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSetupStatusResponse(output))
}
