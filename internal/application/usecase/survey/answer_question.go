package survey

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/walletive/backend/internal/application/adapter"
	q "github.com/walletive/backend/internal/domain/questionnaire"
)

// AnswerQuestionInput represents one answer sent for the current question.
type AnswerQuestionInput struct {
	SessionID uuid.UUID
	Value     string
}

// AnswerQuestionUseCase validates an answer and advances the session.
// The answer that completes the survey also persists it.
type AnswerQuestionUseCase struct {
	store     adapter.SurveySessionStore
	submitUC  *SubmitSurveyUseCase
	questions []q.Question
}

// NewAnswerQuestionUseCase creates a new AnswerQuestionUseCase instance.
func NewAnswerQuestionUseCase(
	store adapter.SurveySessionStore,
	submitUC *SubmitSurveyUseCase,
	questions []q.Question,
) *AnswerQuestionUseCase {
	return &AnswerQuestionUseCase{
		store:     store,
		submitUC:  submitUC,
		questions: questions,
	}
}

// Execute records the answer. Validation errors and persistence failures leave
// the stored session untouched so the answer can be sent again.
func (uc *AnswerQuestionUseCase) Execute(ctx context.Context, input AnswerQuestionInput) (*SessionOutput, error) {
	var finished *q.Result
	session, flow, err := loadSession(ctx, uc.store, uc.questions, input.SessionID, func(r q.Result) {
		finished = &r
	})
	if err != nil {
		return nil, err
	}

	if err := flow.Submit(input.Value); err != nil {
		return nil, err
	}

	var submitted *SubmitSurveyOutput
	if finished != nil {
		submission, err := SubmissionFromAnswers(finished.Answers)
		if err != nil {
			return nil, err
		}
		submitted, err = uc.submitUC.Execute(ctx, SubmitSurveyInput{Submission: submission})
		if err != nil {
			return nil, err
		}
	}

	session.State = flow.State()
	session.UpdatedAt = time.Now().UTC()
	if err := uc.store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save survey session: %w", err)
	}

	output := newSessionOutput(session, flow)
	output.Submitted = submitted
	return output, nil
}
