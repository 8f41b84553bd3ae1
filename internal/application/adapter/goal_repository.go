// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/walletive/backend/internal/domain/entity"
)

// GoalRepository defines the interface for savings goal persistence operations.
type GoalRepository interface {
	// FindByID retrieves a goal and its frequency by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavingsGoal, error)

	// FindAll retrieves all goals ordered by start date.
	FindAll(ctx context.Context) ([]*entity.SavingsGoal, error)

	// Delete removes a goal. Its frequency row cascades and contributions lose their reference.
	Delete(ctx context.Context, id uuid.UUID) error
}
