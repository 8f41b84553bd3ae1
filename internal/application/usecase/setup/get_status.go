// Package setup contains onboarding status use cases.
package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletive/backend/internal/application/adapter"
)

// GetStatusInput represents the input for reading the setup status.
type GetStatusInput struct{}

// GetStatusOutput tells whether the survey has been completed.
type GetStatusOutput struct {
	Completed      bool
	DisplayName    string
	AlertThreshold *decimal.Decimal
	CompletedAt    *time.Time
}

// GetStatusUseCase reads the persisted setup flag.
type GetStatusUseCase struct {
	setupRepo adapter.SetupRepository
}

// NewGetStatusUseCase creates a new GetStatusUseCase instance.
func NewGetStatusUseCase(setupRepo adapter.SetupRepository) *GetStatusUseCase {
	return &GetStatusUseCase{
		setupRepo: setupRepo,
	}
}

// Execute returns the status. A store without setup rows is a first run.
func (uc *GetStatusUseCase) Execute(ctx context.Context, _ GetStatusInput) (*GetStatusOutput, error) {
	setup, err := uc.setupRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get setup: %w", err)
	}

	return &GetStatusOutput{
		Completed:      setup.Completed,
		DisplayName:    setup.Greeting(),
		AlertThreshold: setup.AlertThreshold,
		CompletedAt:    setup.CompletedAt,
	}, nil
}
