package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletive/backend/internal/domain/entity"
	domainerror "github.com/walletive/backend/internal/domain/error"
)

type memoryGoalRepo struct {
	goals map[uuid.UUID]*entity.SavingsGoal
}

func (m *memoryGoalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.SavingsGoal, error) {
	g, ok := m.goals[id]
	if !ok {
		return nil, domainerror.ErrGoalNotFound
	}
	return g, nil
}

func (m *memoryGoalRepo) FindAll(context.Context) ([]*entity.SavingsGoal, error) {
	out := make([]*entity.SavingsGoal, 0, len(m.goals))
	for _, g := range m.goals {
		out = append(out, g)
	}
	return out, nil
}

func (m *memoryGoalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.goals, id)
	return nil
}

func TestDeleteGoalUseCase_Execute(t *testing.T) {
	goal := entity.NewSavingsGoal("Meta", decimal.NewFromInt(100), 3, time.Now().UTC())
	repo := &memoryGoalRepo{goals: map[uuid.UUID]*entity.SavingsGoal{goal.ID: goal}}
	uc := NewDeleteGoalUseCase(repo)

	out, err := uc.Execute(context.Background(), DeleteGoalInput{GoalID: goal.ID})
	if err != nil || !out.Success {
		t.Fatalf("expected success, got %v", err)
	}

	_, err = uc.Execute(context.Background(), DeleteGoalInput{GoalID: goal.ID})
	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) || goalErr.Code != domainerror.ErrCodeGoalNotFound {
		t.Errorf("expected goal not found, got %v", err)
	}
}

func TestListGoalsUseCase_DaysRemaining(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	goal := entity.NewSavingsGoal("Meta", decimal.NewFromInt(100), 12, now)
	repo := &memoryGoalRepo{goals: map[uuid.UUID]*entity.SavingsGoal{goal.ID: goal}}
	uc := NewListGoalsUseCase(repo)
	uc.now = func() time.Time { return now }

	out, err := uc.Execute(context.Background(), ListGoalsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(out.Goals))
	}
	if out.Goals[0].DaysRemaining != 360 {
		t.Errorf("expected 360 days remaining, got %d", out.Goals[0].DaysRemaining)
	}
}
