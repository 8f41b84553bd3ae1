package survey

import (
	"context"
	"fmt"

	q "github.com/walletive/backend/internal/domain/questionnaire"
)

// SubmitAnswersInput carries a whole questionnaire as raw answers keyed by question ID.
// Questions skipped by their predicate ignore any value sent for them. A prompted question
// without a key is a missing answer; optional questions may be left out.
type SubmitAnswersInput struct {
	Answers map[q.QuestionID]string
}

// SubmitAnswersUseCase runs raw answers through the survey flow and persists the result.
type SubmitAnswersUseCase struct {
	submitUC  *SubmitSurveyUseCase
	questions []q.Question
}

// NewSubmitAnswersUseCase creates a new SubmitAnswersUseCase instance.
func NewSubmitAnswersUseCase(submitUC *SubmitSurveyUseCase, questions []q.Question) *SubmitAnswersUseCase {
	return &SubmitAnswersUseCase{
		submitUC:  submitUC,
		questions: questions,
	}
}

// Execute validates every prompted answer with the same rules as the interactive flow.
// The first invalid answer aborts the command and nothing is written.
func (uc *SubmitAnswersUseCase) Execute(ctx context.Context, input SubmitAnswersInput) (*SubmitSurveyOutput, error) {
	var finished *q.Result
	flow := q.NewFlow(uc.questions, func(r q.Result) {
		finished = &r
	})

	for {
		current, ok := flow.Current()
		if !ok {
			break
		}
		raw, present := input.Answers[current.ID]
		if !present && current.Type != q.QuestionTypeOptionalFloat {
			return nil, fmt.Errorf("%s: %w", current.ID, missingAnswer(current.ID))
		}
		if err := flow.Submit(raw); err != nil {
			return nil, fmt.Errorf("%s: %w", current.ID, err)
		}
	}

	submission, err := SubmissionFromAnswers(finished.Answers)
	if err != nil {
		return nil, err
	}

	return uc.submitUC.Execute(ctx, SubmitSurveyInput{Submission: submission})
}
