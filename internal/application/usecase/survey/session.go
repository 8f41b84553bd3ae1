package survey

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/walletive/backend/internal/application/adapter"
	"github.com/walletive/backend/internal/domain/entity"
	domainerror "github.com/walletive/backend/internal/domain/error"
	q "github.com/walletive/backend/internal/domain/questionnaire"
)

// QuestionOutput describes the question a session is waiting on.
type QuestionOutput struct {
	ID          q.QuestionID
	Prompt      string
	Placeholder string
	Type        q.QuestionType
	Choices     []string
	Position    int
	Total       int
}

// SessionOutput represents a survey session as seen by callers.
type SessionOutput struct {
	ID        uuid.UUID
	Current   *QuestionOutput // nil once completed
	Answers   q.Answers
	Completed bool
	CreatedAt time.Time
	UpdatedAt time.Time
	Submitted *SubmitSurveyOutput // set on the answer that completed the survey
}

func newSessionOutput(session *entity.SurveySession, flow *q.Flow) *SessionOutput {
	output := &SessionOutput{
		ID:        session.ID,
		Answers:   flow.Answers(),
		Completed: flow.Done(),
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}

	if current, ok := flow.Current(); ok {
		output.Current = &QuestionOutput{
			ID:          current.ID,
			Prompt:      current.Prompt,
			Placeholder: current.Placeholder,
			Type:        current.Type,
			Choices:     current.Choices(),
			Position:    flow.Cursor() + 1,
			Total:       flow.Len(),
		}
	}

	return output
}

// loadSession fetches a session and rebuilds its flow.
func loadSession(
	ctx context.Context,
	store adapter.SurveySessionStore,
	questions []q.Question,
	id uuid.UUID,
	onComplete q.CompletionFunc,
) (*entity.SurveySession, *q.Flow, error) {
	session, err := store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrSessionNotFound) {
			return nil, nil, sessionNotFoundError()
		}
		return nil, nil, fmt.Errorf("failed to get survey session: %w", err)
	}

	flow, err := q.Restore(questions, session.State, onComplete)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to restore survey session %s: %w", id, err)
	}

	return session, flow, nil
}

func sessionNotFoundError() error {
	return domainerror.NewSurveyError(
		domainerror.ErrCodeSessionNotFound,
		"survey session not found",
		domainerror.ErrSessionNotFound,
	)
}
