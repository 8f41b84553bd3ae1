package survey

import (
	"context"
	"fmt"

	"github.com/walletive/backend/internal/application/adapter"
	"github.com/walletive/backend/internal/domain/entity"
	q "github.com/walletive/backend/internal/domain/questionnaire"
)

// StartSessionInput represents the input for starting a survey session.
type StartSessionInput struct{}

// StartSessionUseCase opens a new survey session at the first question.
type StartSessionUseCase struct {
	store     adapter.SurveySessionStore
	setupRepo adapter.SetupRepository
	questions []q.Question
}

// NewStartSessionUseCase creates a new StartSessionUseCase instance.
func NewStartSessionUseCase(
	store adapter.SurveySessionStore,
	setupRepo adapter.SetupRepository,
	questions []q.Question,
) *StartSessionUseCase {
	return &StartSessionUseCase{
		store:     store,
		setupRepo: setupRepo,
		questions: questions,
	}
}

// Execute creates and stores the session. Setup must not be completed yet.
func (uc *StartSessionUseCase) Execute(ctx context.Context, _ StartSessionInput) (*SessionOutput, error) {
	setup, err := uc.setupRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get setup: %w", err)
	}
	if setup.Completed {
		return nil, setupCompletedError()
	}

	flow := q.NewFlow(uc.questions, nil)
	session := entity.NewSurveySession(flow.State())

	if err := uc.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save survey session: %w", err)
	}

	return newSessionOutput(session, flow), nil
}
