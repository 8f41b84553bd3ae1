package survey

import (
	"context"

	"github.com/google/uuid"

	"github.com/walletive/backend/internal/application/adapter"
	q "github.com/walletive/backend/internal/domain/questionnaire"
)

// GetSessionInput represents the input for reading a survey session.
type GetSessionInput struct {
	SessionID uuid.UUID
}

// GetSessionUseCase returns the current state of a session.
type GetSessionUseCase struct {
	store     adapter.SurveySessionStore
	questions []q.Question
}

// NewGetSessionUseCase creates a new GetSessionUseCase instance.
func NewGetSessionUseCase(store adapter.SurveySessionStore, questions []q.Question) *GetSessionUseCase {
	return &GetSessionUseCase{
		store:     store,
		questions: questions,
	}
}

// Execute performs the lookup.
func (uc *GetSessionUseCase) Execute(ctx context.Context, input GetSessionInput) (*SessionOutput, error) {
	session, flow, err := loadSession(ctx, uc.store, uc.questions, input.SessionID, nil)
	if err != nil {
		return nil, err
	}
	return newSessionOutput(session, flow), nil
}
