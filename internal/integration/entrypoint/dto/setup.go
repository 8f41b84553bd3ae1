// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/walletive/backend/internal/application/usecase/setup"
)

// SetupStatusResponse represents the onboarding status.
type SetupStatusResponse struct {
	Completed      bool       `json:"completed"`
	DisplayName    string     `json:"display_name"`
	AlertThreshold *string    `json:"alert_threshold,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// ToSetupStatusResponse converts the status output to a SetupStatusResponse DTO.
func ToSetupStatusResponse(output *setup.GetStatusOutput) SetupStatusResponse {
	response := SetupStatusResponse{
		Completed:   output.Completed,
		DisplayName: output.DisplayName,
		CompletedAt: output.CompletedAt,
	}
	if output.AlertThreshold != nil {
		threshold := output.AlertThreshold.String()
		response.AlertThreshold = &threshold
	}
	return response
}
