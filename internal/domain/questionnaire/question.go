// Package questionnaire implements the onboarding survey flow: an ordered list of
// typed questions, some skipped by predicates over earlier answers, producing a
// positional answer sequence.
package questionnaire

// QuestionID names a question. Predicates and mappers look answers up by ID.
type QuestionID string

// QuestionType declares how raw input for a question is parsed.
type QuestionType string

const (
	QuestionTypeText          QuestionType = "text"
	QuestionTypeFloat         QuestionType = "float"
	QuestionTypeOptionalFloat QuestionType = "optional_float"
	QuestionTypeInt           QuestionType = "int"
	QuestionTypeBoolean       QuestionType = "boolean"
)

// Predicate decides whether a question is asked given the answers so far.
type Predicate func(answers Answers) bool

// Question is one step of the survey.
type Question struct {
	ID          QuestionID
	Prompt      string
	Placeholder string
	Type        QuestionType
	When        Predicate // nil means always asked

	// Positive rejects zero for float answers.
	Positive bool
	// Max bounds int answers; zero leaves them unbounded.
	Max int
}

// Asked reports whether the question should be prompted.
func (q Question) Asked(answers Answers) bool {
	return q.When == nil || q.When(answers)
}

// Choices returns the two labels offered for a boolean question.
func (q Question) Choices() []string {
	if q.Type != QuestionTypeBoolean {
		return nil
	}
	return []string{ChoiceYes, ChoiceNo}
}

// AnsweredYes builds a predicate that is true when the question id was answered "yes".
func AnsweredYes(id QuestionID) Predicate {
	return func(answers Answers) bool {
		return answers.Choice(id)
	}
}
