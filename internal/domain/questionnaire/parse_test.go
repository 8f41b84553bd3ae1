package questionnaire

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/walletive/backend/internal/domain/error"
)

func TestParse(t *testing.T) {
	text := Question{ID: "name", Type: QuestionTypeText}
	amount := Question{ID: "amount", Type: QuestionTypeFloat}
	optional := Question{ID: "threshold", Type: QuestionTypeOptionalFloat}
	months := Question{ID: "months", Type: QuestionTypeInt}
	boundedMonths := Question{ID: "goal_months", Type: QuestionTypeInt, Max: MaxGoalMonths}
	target := Question{ID: "goal_amount", Type: QuestionTypeFloat, Positive: true}
	choice := Question{ID: "flag", Type: QuestionTypeBoolean}

	tests := []struct {
		name         string
		question     Question
		raw          string
		expectedCode domainerror.SurveyErrorCode
		check        func(t *testing.T, a Answer)
	}{
		{
			name:     "text is trimmed",
			question: text,
			raw:      "  Ana  ",
			check: func(t *testing.T, a Answer) {
				if a.Text == nil || *a.Text != "Ana" {
					t.Errorf("expected text Ana, got %v", a.Value())
				}
			},
		},
		{
			name:         "blank text fails",
			question:     text,
			raw:          "   ",
			expectedCode: domainerror.ErrCodeBlankText,
		},
		{
			name:     "float with thousands separators",
			question: amount,
			raw:      "3,000,000",
			check: func(t *testing.T, a Answer) {
				if a.Number == nil || !a.Number.Equal(decimal.NewFromInt(3000000)) {
					t.Errorf("expected 3000000, got %v", a.Value())
				}
			},
		},
		{
			name:     "float zero",
			question: amount,
			raw:      "0",
			check: func(t *testing.T, a Answer) {
				if a.Number == nil || !a.Number.IsZero() {
					t.Errorf("expected 0, got %v", a.Value())
				}
			},
		},
		{
			name:         "negative float fails",
			question:     amount,
			raw:          "-5",
			expectedCode: domainerror.ErrCodeInvalidNumber,
		},
		{
			name:         "non numeric float fails",
			question:     amount,
			raw:          "abc",
			expectedCode: domainerror.ErrCodeInvalidNumber,
		},
		{
			name:         "blank float fails",
			question:     amount,
			raw:          "",
			expectedCode: domainerror.ErrCodeInvalidNumber,
		},
		{
			name:         "exponent notation fails",
			question:     amount,
			raw:          "1e400",
			expectedCode: domainerror.ErrCodeInvalidNumber,
		},
		{
			name:         "more than thirteen integer digits fails",
			question:     amount,
			raw:          "12345678901234567.89",
			expectedCode: domainerror.ErrCodeInvalidNumber,
		},
		{
			name:         "more than two decimals fails",
			question:     amount,
			raw:          "10.125",
			expectedCode: domainerror.ErrCodeInvalidNumber,
		},
		{
			name:     "largest amount with cents",
			question: amount,
			raw:      "9,999,999,999,999.99",
			check: func(t *testing.T, a Answer) {
				if a.Number == nil || a.Number.String() != "9999999999999.99" {
					t.Errorf("expected 9999999999999.99, got %v", a.Value())
				}
			},
		},
		{
			name:     "trailing zero decimals are accepted",
			question: amount,
			raw:      "0012.500",
			check: func(t *testing.T, a Answer) {
				if a.Number == nil || !a.Number.Equal(decimal.RequireFromString("12.5")) {
					t.Errorf("expected 12.5, got %v", a.Value())
				}
			},
		},
		{
			name:         "zero goal amount fails",
			question:     target,
			raw:          "0",
			expectedCode: domainerror.ErrCodeInvalidNumber,
		},
		{
			name:     "positive goal amount",
			question: target,
			raw:      "0.01",
			check: func(t *testing.T, a Answer) {
				if a.Number == nil || a.Number.String() != "0.01" {
					t.Errorf("expected 0.01, got %v", a.Value())
				}
			},
		},
		{
			name:         "oversized optional float fails",
			question:     optional,
			raw:          "1e400",
			expectedCode: domainerror.ErrCodeInvalidNumber,
		},
		{
			name:     "blank optional float is null",
			question: optional,
			raw:      " ",
			check: func(t *testing.T, a Answer) {
				if !a.IsNull() || a.Skipped {
					t.Errorf("expected prompted null, got %+v", a)
				}
			},
		},
		{
			name:     "optional float with value",
			question: optional,
			raw:      "80.5",
			check: func(t *testing.T, a Answer) {
				if a.Number == nil || a.Number.String() != "80.5" {
					t.Errorf("expected 80.5, got %v", a.Value())
				}
			},
		},
		{
			name:     "positive integer",
			question: months,
			raw:      "12",
			check: func(t *testing.T, a Answer) {
				if a.Integer == nil || *a.Integer != 12 {
					t.Errorf("expected 12, got %v", a.Value())
				}
			},
		},
		{
			name:         "zero integer fails",
			question:     months,
			raw:          "0",
			expectedCode: domainerror.ErrCodeInvalidInteger,
		},
		{
			name:         "fractional integer fails",
			question:     months,
			raw:          "1.5",
			expectedCode: domainerror.ErrCodeInvalidInteger,
		},
		{
			name:     "months at the limit",
			question: boundedMonths,
			raw:      "1200",
			check: func(t *testing.T, a Answer) {
				if a.Integer == nil || *a.Integer != MaxGoalMonths {
					t.Errorf("expected %d, got %v", MaxGoalMonths, a.Value())
				}
			},
		},
		{
			name:         "months above the limit fail",
			question:     boundedMonths,
			raw:          "200000",
			expectedCode: domainerror.ErrCodeInvalidInteger,
		},
		{
			name:         "months overflowing int fail",
			question:     boundedMonths,
			raw:          "400000000000000000000",
			expectedCode: domainerror.ErrCodeInvalidInteger,
		},
		{
			name:     "yes choice",
			question: choice,
			raw:      ChoiceYes,
			check: func(t *testing.T, a Answer) {
				if a.Choice == nil || !*a.Choice {
					t.Errorf("expected true, got %v", a.Value())
				}
			},
		},
		{
			name:     "no choice is case insensitive",
			question: choice,
			raw:      "NO",
			check: func(t *testing.T, a Answer) {
				if a.Choice == nil || *a.Choice {
					t.Errorf("expected false, got %v", a.Value())
				}
			},
		},
		{
			name:         "unknown choice fails",
			question:     choice,
			raw:          "maybe",
			expectedCode: domainerror.ErrCodeInvalidChoice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, err := Parse(tt.question, tt.raw)
			if tt.expectedCode != "" {
				var surveyErr *domainerror.SurveyError
				if !errors.As(err, &surveyErr) {
					t.Fatalf("expected SurveyError, got %v", err)
				}
				if surveyErr.Code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, surveyErr.Code)
				}
				if !surveyErr.IsValidation() {
					t.Errorf("expected validation error for code %s", surveyErr.Code)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if answer.QuestionID != tt.question.ID {
				t.Errorf("expected question id %s, got %s", tt.question.ID, answer.QuestionID)
			}
			tt.check(t, answer)
		})
	}
}

func TestParseAmount_StoredValueEqualsParsed(t *testing.T) {
	inputs := []string{"0", "1", "2500000", "1,234.56", "0.01", "999999999999.99", "1234567890123.45"}
	for _, in := range inputs {
		got, err := ParseAmount(in)
		if err != nil {
			t.Fatalf("ParseAmount(%q) failed: %v", in, err)
		}
		want, _ := decimal.NewFromString(stripCommas(in))
		if !got.Equal(want) {
			t.Errorf("ParseAmount(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestValidAmount(t *testing.T) {
	tests := []struct {
		name     string
		value    decimal.Decimal
		expected bool
	}{
		{"zero", decimal.Zero, true},
		{"cents", decimal.RequireFromString("1234567890123.45"), true},
		{"negative", decimal.NewFromInt(-1), false},
		{"at the bound", MaxAmount, false},
		{"huge exponent", decimal.New(1, 400), false},
		{"three decimals", decimal.RequireFromString("1.005"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidAmount(tt.value); got != tt.expected {
				t.Errorf("ValidAmount(%s) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func stripCommas(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r != ',' {
			out = append(out, r)
		}
	}
	return string(out)
}
