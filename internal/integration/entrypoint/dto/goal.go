// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/walletive/backend/internal/application/usecase/goal"
)

// GoalResponse represents a single savings goal in API responses.
type GoalResponse struct {
	ID            string  `json:"id"`
	Description   string  `json:"description"`
	TargetAmount  string  `json:"target_amount"`
	Active        bool    `json:"active"`
	Achieved      bool    `json:"achieved"`
	StartDate     string  `json:"start_date"`
	Deadline      string  `json:"deadline"`
	Frequency     *string `json:"frequency,omitempty"`
	DaysRemaining int     `json:"days_remaining"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalListResponse converts goal outputs to a GoalListResponse DTO.
func ToGoalListResponse(goals []*goal.GoalOutput) GoalListResponse {
	response := GoalListResponse{
		Goals: make([]GoalResponse, len(goals)),
	}
	for i, g := range goals {
		item := GoalResponse{
			ID:            g.ID.String(),
			Description:   g.Description,
			TargetAmount:  g.TargetAmount.StringFixed(2),
			Active:        g.Active,
			Achieved:      g.Achieved,
			StartDate:     g.StartDate.Format("2006-01-02"),
			Deadline:      g.Deadline.Format("2006-01-02"),
			DaysRemaining: g.DaysRemaining,
		}
		if g.Frequency != nil {
			frequency := string(*g.Frequency)
			item.Frequency = &frequency
		}
		response.Goals[i] = item
	}
	return response
}
