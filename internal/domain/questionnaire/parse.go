package questionnaire

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/walletive/backend/internal/domain/error"
)

// Labels offered for boolean questions.
const (
	ChoiceYes = "Sí"
	ChoiceNo  = "No"
)

// Amounts are stored as decimal(15,2).
const (
	AmountIntegerDigits = 13
	AmountScale         = 2
)

// MaxAmount is the exclusive upper bound for amounts.
var MaxAmount = decimal.New(1, AmountIntegerDigits)

var amountPattern = regexp.MustCompile(`^([0-9]+)(?:\.([0-9]+))?$`)

var (
	yesInputs = map[string]bool{"sí": true, "si": true, "yes": true, "true": true}
	noInputs  = map[string]bool{"no": true, "false": true}
)

// Parse validates raw input against the question type and returns the answer to record.
// Validation failures are *domainerror.SurveyError values with a validation code.
func Parse(q Question, raw string) (Answer, error) {
	answer := Answer{QuestionID: q.ID, Type: q.Type}
	input := strings.TrimSpace(raw)

	switch q.Type {
	case QuestionTypeText:
		if input == "" {
			return Answer{}, domainerror.NewSurveyError(
				domainerror.ErrCodeBlankText,
				"please enter a value",
				domainerror.ErrBlankText,
			)
		}
		answer.Text = &input

	case QuestionTypeFloat, QuestionTypeOptionalFloat:
		if input == "" && q.Type == QuestionTypeOptionalFloat {
			return answer, nil
		}
		value, err := ParseAmount(input)
		if err != nil {
			return Answer{}, err
		}
		if q.Positive && !value.IsPositive() {
			return Answer{}, domainerror.NewSurveyError(
				domainerror.ErrCodeInvalidNumber,
				"please enter an amount greater than zero",
				domainerror.ErrInvalidNumber,
			)
		}
		answer.Number = &value

	case QuestionTypeInt:
		value, err := strconv.Atoi(input)
		if err != nil || value <= 0 {
			return Answer{}, domainerror.NewSurveyError(
				domainerror.ErrCodeInvalidInteger,
				"please enter a positive whole number",
				domainerror.ErrInvalidInteger,
			)
		}
		if q.Max > 0 && value > q.Max {
			return Answer{}, domainerror.NewSurveyError(
				domainerror.ErrCodeInvalidInteger,
				fmt.Sprintf("please enter a whole number between 1 and %d", q.Max),
				domainerror.ErrInvalidInteger,
			)
		}
		answer.Integer = &value

	case QuestionTypeBoolean:
		choice, err := ParseChoice(input)
		if err != nil {
			return Answer{}, err
		}
		answer.Choice = &choice

	default:
		// Unknown types are recorded verbatim.
		answer.Text = &input
	}

	return answer, nil
}

// ParseAmount parses a non-negative decimal amount. Thousands separators (",") are ignored.
// Only plain digits are accepted, with at most AmountIntegerDigits before the point and
// AmountScale significant digits after it.
func ParseAmount(raw string) (decimal.Decimal, error) {
	input := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	match := amountPattern.FindStringSubmatch(input)
	if match == nil {
		return decimal.Zero, invalidAmount("please enter a valid non-negative number")
	}
	if len(strings.TrimLeft(match[1], "0")) > AmountIntegerDigits {
		return decimal.Zero, invalidAmount("please enter an amount below 10,000,000,000,000")
	}
	if len(strings.TrimRight(match[2], "0")) > AmountScale {
		return decimal.Zero, invalidAmount("please enter an amount with at most two decimals")
	}

	value, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, invalidAmount("please enter a valid non-negative number")
	}
	return value, nil
}

// ValidAmount reports whether d is non-negative and fits a decimal(15,2) column.
func ValidAmount(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThan(MaxAmount) && d.Equal(d.Truncate(AmountScale))
}

func invalidAmount(message string) error {
	return domainerror.NewSurveyError(domainerror.ErrCodeInvalidNumber, message, domainerror.ErrInvalidNumber)
}

// ParseChoice maps a yes/no label to a bool.
func ParseChoice(raw string) (bool, error) {
	input := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case yesInputs[input]:
		return true, nil
	case noInputs[input]:
		return false, nil
	}
	return false, domainerror.NewSurveyError(
		domainerror.ErrCodeInvalidChoice,
		"please choose "+ChoiceYes+" or "+ChoiceNo,
		domainerror.ErrInvalidChoice,
	)
}
