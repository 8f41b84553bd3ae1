package survey

import (
	"github.com/shopspring/decimal"

	"github.com/walletive/backend/internal/domain/entity"
	domainerror "github.com/walletive/backend/internal/domain/error"
	q "github.com/walletive/backend/internal/domain/questionnaire"
)

// SubmissionFromAnswers maps a completed answer sequence to a submission.
// Answers are looked up by question ID, so their positions do not matter.
func SubmissionFromAnswers(answers q.Answers) (entity.SurveySubmission, error) {
	sub := entity.SurveySubmission{
		DisplayName:    answers.Text(q.QuestionDisplayName),
		HasDebt:        answers.Choice(q.QuestionHasDebt),
		HasSavingsGoal: answers.Choice(q.QuestionHasSavingsGoal),
	}
	if sub.DisplayName == "" {
		return entity.SurveySubmission{}, missingAnswer(q.QuestionDisplayName)
	}

	var err error
	if sub.MonthlyIncome, err = requiredNumber(answers, q.QuestionMonthlyIncome); err != nil {
		return entity.SurveySubmission{}, err
	}
	if sub.FixedExpenses, err = requiredNumber(answers, q.QuestionFixedExpenses); err != nil {
		return entity.SurveySubmission{}, err
	}
	if sub.VariableExpenses, err = requiredNumber(answers, q.QuestionVariableExpenses); err != nil {
		return entity.SurveySubmission{}, err
	}

	if sub.HasDebt {
		if sub.TotalDebt, err = requiredNumber(answers, q.QuestionTotalDebt); err != nil {
			return entity.SurveySubmission{}, err
		}
		if sub.MonthlyDebtPayment, err = requiredNumber(answers, q.QuestionMonthlyDebtPayment); err != nil {
			return entity.SurveySubmission{}, err
		}
	}

	if sub.HasSavingsGoal {
		if sub.GoalAmount, err = requiredNumber(answers, q.QuestionGoalAmount); err != nil {
			return entity.SurveySubmission{}, err
		}
		months, ok := answers.Integer(q.QuestionGoalMonths)
		if !ok {
			return entity.SurveySubmission{}, missingAnswer(q.QuestionGoalMonths)
		}
		sub.GoalMonths = months
	}

	if threshold, ok := answers.Number(q.QuestionAlertThreshold); ok {
		sub.AlertThreshold = &threshold
	}

	return sub, nil
}

func requiredNumber(answers q.Answers, id q.QuestionID) (decimal.Decimal, error) {
	value, ok := answers.Number(id)
	if !ok {
		return decimal.Zero, missingAnswer(id)
	}
	return value, nil
}

func missingAnswer(id q.QuestionID) error {
	return domainerror.NewSurveyError(
		domainerror.ErrCodeMissingAnswer,
		"missing answer for "+string(id),
		domainerror.ErrMissingAnswer,
	)
}
