package questionnaire

import (
	"github.com/shopspring/decimal"
)

// Answer is one slot of the answer sequence. At most one value field is set;
// none set means null. Skipped marks a null produced by a false predicate.
type Answer struct {
	QuestionID QuestionID       `json:"question_id"`
	Type       QuestionType     `json:"type"`
	Skipped    bool             `json:"skipped,omitempty"`
	Text       *string          `json:"text,omitempty"`
	Number     *decimal.Decimal `json:"number,omitempty"`
	Integer    *int             `json:"integer,omitempty"`
	Choice     *bool            `json:"choice,omitempty"`
}

// IsNull reports whether the slot holds no value.
func (a Answer) IsNull() bool {
	return a.Text == nil && a.Number == nil && a.Integer == nil && a.Choice == nil
}

// Value returns the held value as an interface, or nil for a null slot.
func (a Answer) Value() any {
	switch {
	case a.Text != nil:
		return *a.Text
	case a.Number != nil:
		return *a.Number
	case a.Integer != nil:
		return *a.Integer
	case a.Choice != nil:
		return *a.Choice
	}
	return nil
}

func skippedAnswer(q Question) Answer {
	return Answer{QuestionID: q.ID, Type: q.Type, Skipped: true}
}

// Answers is the ordered answer sequence, one slot per visited question.
type Answers []Answer

// Lookup returns the answer recorded for id.
func (a Answers) Lookup(id QuestionID) (Answer, bool) {
	for _, ans := range a {
		if ans.QuestionID == id {
			return ans, true
		}
	}
	return Answer{}, false
}

// Text returns the text answer for id, or "" when absent or null.
func (a Answers) Text(id QuestionID) string {
	if ans, ok := a.Lookup(id); ok && ans.Text != nil {
		return *ans.Text
	}
	return ""
}

// Number returns the numeric answer for id and whether it is present.
func (a Answers) Number(id QuestionID) (decimal.Decimal, bool) {
	if ans, ok := a.Lookup(id); ok && ans.Number != nil {
		return *ans.Number, true
	}
	return decimal.Zero, false
}

// Integer returns the integer answer for id and whether it is present.
func (a Answers) Integer(id QuestionID) (int, bool) {
	if ans, ok := a.Lookup(id); ok && ans.Integer != nil {
		return *ans.Integer, true
	}
	return 0, false
}

// Choice returns true only when id was answered "yes".
func (a Answers) Choice(id QuestionID) bool {
	if ans, ok := a.Lookup(id); ok && ans.Choice != nil {
		return *ans.Choice
	}
	return false
}

// Clone returns a copy that does not share the backing array.
func (a Answers) Clone() Answers {
	if a == nil {
		return nil
	}
	out := make(Answers, len(a))
	copy(out, a)
	return out
}
