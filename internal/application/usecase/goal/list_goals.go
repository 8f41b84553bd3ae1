// Package goal contains savings goal use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletive/backend/internal/application/adapter"
	"github.com/walletive/backend/internal/domain/entity"
)

// ListGoalsInput represents the input for listing goals.
type ListGoalsInput struct{}

// GoalOutput represents a single goal in the output.
type GoalOutput struct {
	ID            uuid.UUID
	Description   string
	TargetAmount  decimal.Decimal
	Active        bool
	Achieved      bool
	StartDate     time.Time
	Deadline      time.Time
	Frequency     *entity.GoalFrequency
	DaysRemaining int
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []*GoalOutput
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
	now      func() time.Time
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, _ ListGoalsInput) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	now := uc.now()
	output := &ListGoalsOutput{
		Goals: make([]*GoalOutput, 0, len(goals)),
	}

	for _, g := range goals {
		output.Goals = append(output.Goals, &GoalOutput{
			ID:            g.ID,
			Description:   g.Description,
			TargetAmount:  g.TargetAmount,
			Active:        g.Active,
			Achieved:      g.Achieved,
			StartDate:     g.StartDate,
			Deadline:      g.Deadline,
			Frequency:     g.Frequency,
			DaysRemaining: daysRemaining(now, g.Deadline),
		})
	}

	return output, nil
}

// daysRemaining returns whole days until the deadline, never negative.
func daysRemaining(now, deadline time.Time) int {
	if !deadline.After(now) {
		return 0
	}
	return int(deadline.Sub(now).Hours() / 24)
}
