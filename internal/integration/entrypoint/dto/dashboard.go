// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/walletive/backend/internal/application/usecase/dashboard"
)

// SummaryResponse represents the dashboard summary.
type SummaryResponse struct {
	DisplayName      string   `json:"display_name"`
	Income           string   `json:"income"`
	Expenses         string   `json:"expenses"`
	Balance          string   `json:"balance"`
	ActiveGoalsTotal string   `json:"active_goals_total"`
	SpendingRatio    *string  `json:"spending_ratio,omitempty"`
	AlertThreshold   *string  `json:"alert_threshold,omitempty"`
	Alerts           []string `json:"alerts"`
	Recommendation   string   `json:"recommendation"`
}

// ToSummaryResponse converts the summary output to a SummaryResponse DTO.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	response := SummaryResponse{
		DisplayName:      output.DisplayName,
		Income:           output.Summary.Income.StringFixed(2),
		Expenses:         output.Summary.Expenses.StringFixed(2),
		Balance:          output.Summary.Balance.StringFixed(2),
		ActiveGoalsTotal: output.Summary.ActiveGoalsTotal.StringFixed(2),
		Alerts:           output.Alerts,
		Recommendation:   output.Recommendation,
	}
	if output.SpendingRatio != nil {
		ratio := output.SpendingRatio.StringFixed(2)
		response.SpendingRatio = &ratio
	}
	if output.AlertThreshold != nil {
		threshold := output.AlertThreshold.String()
		response.AlertThreshold = &threshold
	}
	return response
}
