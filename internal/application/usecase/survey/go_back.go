package survey

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/walletive/backend/internal/application/adapter"
	q "github.com/walletive/backend/internal/domain/questionnaire"
)

// GoBackInput represents the input for returning to the previous question.
type GoBackInput struct {
	SessionID uuid.UUID
}

// GoBackUseCase moves a session back to the previously prompted question.
type GoBackUseCase struct {
	store     adapter.SurveySessionStore
	questions []q.Question
}

// NewGoBackUseCase creates a new GoBackUseCase instance.
func NewGoBackUseCase(store adapter.SurveySessionStore, questions []q.Question) *GoBackUseCase {
	return &GoBackUseCase{
		store:     store,
		questions: questions,
	}
}

// Execute performs the retreat. At the first question or after completion it
// returns the session unchanged.
func (uc *GoBackUseCase) Execute(ctx context.Context, input GoBackInput) (*SessionOutput, error) {
	session, flow, err := loadSession(ctx, uc.store, uc.questions, input.SessionID, nil)
	if err != nil {
		return nil, err
	}

	if !flow.Back() {
		return newSessionOutput(session, flow), nil
	}

	session.State = flow.State()
	session.UpdatedAt = time.Now().UTC()
	if err := uc.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save survey session: %w", err)
	}

	return newSessionOutput(session, flow), nil
}
