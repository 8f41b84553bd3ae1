package questionnaire

import (
	"errors"
	"fmt"

	domainerror "github.com/walletive/backend/internal/domain/error"
)

// ErrInvalidState is returned when a saved state does not fit the question list.
var ErrInvalidState = errors.New("survey state does not match questions")

// Result is handed to the completion callback.
type Result struct {
	DisplayName string
	Answers     Answers
}

// CompletionFunc receives the finished survey. It is invoked exactly once per flow.
type CompletionFunc func(Result)

// State is the serializable position of a flow.
type State struct {
	Cursor    int     `json:"cursor"`
	Answers   Answers `json:"answers"`
	Completed bool    `json:"completed"`
}

// Flow walks a question list, skipping questions whose predicate is false.
// The cursor always equals len(answers): every visited question owns one slot.
type Flow struct {
	questions  []Question
	cursor     int
	answers    Answers
	completed  bool
	onComplete CompletionFunc
}

// NewFlow starts a flow at the first question that has to be prompted.
func NewFlow(questions []Question, onComplete CompletionFunc) *Flow {
	f := &Flow{
		questions:  questions,
		answers:    make(Answers, 0, len(questions)),
		onComplete: onComplete,
	}
	f.advance()
	return f
}

// Restore rebuilds a flow from a saved state. A completed state does not
// invoke onComplete again.
func Restore(questions []Question, state State, onComplete CompletionFunc) (*Flow, error) {
	if state.Cursor != len(state.Answers) || state.Cursor > len(questions) {
		return nil, fmt.Errorf("%w: cursor %d with %d answers", ErrInvalidState, state.Cursor, len(state.Answers))
	}
	for i, ans := range state.Answers {
		if ans.QuestionID != questions[i].ID {
			return nil, fmt.Errorf("%w: slot %d holds %q, want %q", ErrInvalidState, i, ans.QuestionID, questions[i].ID)
		}
	}
	if state.Completed && state.Cursor != len(questions) {
		return nil, fmt.Errorf("%w: completed before the last question", ErrInvalidState)
	}

	f := &Flow{
		questions:  questions,
		cursor:     state.Cursor,
		answers:    state.Answers.Clone(),
		completed:  state.Completed,
		onComplete: onComplete,
	}
	if !f.completed {
		f.advance()
	}
	return f, nil
}

// Current returns the question awaiting input. ok is false once the flow is done.
func (f *Flow) Current() (q Question, ok bool) {
	if f.completed || f.cursor >= len(f.questions) {
		return Question{}, false
	}
	return f.questions[f.cursor], true
}

// Submit validates raw input for the current question. On success the answer is
// recorded and the flow advances; on failure the cursor does not move.
func (f *Flow) Submit(raw string) error {
	q, ok := f.Current()
	if !ok {
		return domainerror.NewSurveyError(
			domainerror.ErrCodeSurveyCompleted,
			"survey already completed",
			domainerror.ErrSurveyCompleted,
		)
	}

	answer, err := Parse(q, raw)
	if err != nil {
		return err
	}

	f.answers = append(f.answers, answer)
	f.cursor++
	f.advance()
	return nil
}

// Back returns to the previous prompted question and discards its answer along
// with any skipped slots after it. It reports false when there is nothing to undo.
func (f *Flow) Back() bool {
	if f.completed {
		return false
	}

	last := -1
	for i := len(f.answers) - 1; i >= 0; i-- {
		if !f.answers[i].Skipped {
			last = i
			break
		}
	}
	if last < 0 {
		return false
	}

	f.answers = f.answers[:last]
	f.cursor = last
	return true
}

// Done reports whether the flow passed its last question.
func (f *Flow) Done() bool {
	return f.completed
}

// Cursor returns the index of the current question.
func (f *Flow) Cursor() int {
	return f.cursor
}

// Len returns the number of questions.
func (f *Flow) Len() int {
	return len(f.questions)
}

// Answers returns a copy of the answers recorded so far.
func (f *Flow) Answers() Answers {
	return f.answers.Clone()
}

// State returns a snapshot suitable for Restore.
func (f *Flow) State() State {
	return State{
		Cursor:    f.cursor,
		Answers:   f.answers.Clone(),
		Completed: f.completed,
	}
}

// advance records skipped slots until a question must be prompted or the list ends.
func (f *Flow) advance() {
	for f.cursor < len(f.questions) {
		q := f.questions[f.cursor]
		if q.Asked(f.answers) {
			return
		}
		f.answers = append(f.answers, skippedAnswer(q))
		f.cursor++
	}

	if !f.completed {
		f.completed = true
		if f.onComplete != nil {
			f.onComplete(Result{
				DisplayName: f.answers.Text(QuestionDisplayName),
				Answers:     f.answers.Clone(),
			})
		}
	}
}
