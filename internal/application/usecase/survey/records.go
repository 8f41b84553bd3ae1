// Package survey contains onboarding survey use cases.
package survey

import (
	"time"

	"github.com/walletive/backend/internal/domain/entity"
)

// Row descriptions written for a submission.
const (
	DescriptionIncome             = "Ingreso mensual inicial"
	DescriptionFixedExpenses      = "Gastos fijos mensuales"
	DescriptionVariableExpenses   = "Gastos variables mensuales"
	DescriptionTotalDebt          = "Deudas totales"
	DescriptionMonthlyDebtPayment = "Pago mensual de deudas"
	DescriptionGoal               = "Meta de ahorro principal"
	DescriptionGoalContribution   = "Meta de ahorro"
)

// BuildRecords derives the rows for a submission. now stamps every row and
// starts the goal; the deadline is computed here once.
func BuildRecords(sub entity.SurveySubmission, now time.Time) *entity.SubmissionRecords {
	records := &entity.SubmissionRecords{
		Transactions: []*entity.Transaction{
			entity.NewTransaction(entity.TransactionKindIncome, DescriptionIncome,
				sub.MonthlyIncome, nil, nil, now),
			entity.NewTransaction(entity.TransactionKindExpense, DescriptionFixedExpenses,
				sub.FixedExpenses, entity.CategoryPtr(entity.TransactionCategoryFixed), nil, now),
			entity.NewTransaction(entity.TransactionKindExpense, DescriptionVariableExpenses,
				sub.VariableExpenses, entity.CategoryPtr(entity.TransactionCategoryVariable), nil, now),
		},
	}

	if sub.HasDebt {
		records.Transactions = append(records.Transactions,
			entity.NewTransaction(entity.TransactionKindExpense, DescriptionTotalDebt,
				sub.TotalDebt, entity.CategoryPtr(entity.TransactionCategoryUnexpected), nil, now),
			entity.NewTransaction(entity.TransactionKindExpense, DescriptionMonthlyDebtPayment,
				sub.MonthlyDebtPayment, entity.CategoryPtr(entity.TransactionCategoryUnexpected), nil, now),
		)
	}

	if sub.HasSavingsGoal {
		goal := entity.NewSavingsGoal(DescriptionGoal, sub.GoalAmount, sub.GoalMonths, now)
		frequency := entity.GoalFrequencyMonthly
		goal.Frequency = &frequency

		goalID := goal.ID
		records.Goal = goal
		records.Frequency = &entity.GoalFrequencyRecord{GoalID: goalID, Frequency: frequency}
		records.Transactions = append(records.Transactions,
			entity.NewTransaction(entity.TransactionKindGoalContribution, DescriptionGoalContribution,
				sub.GoalAmount, entity.CategoryPtr(entity.TransactionCategorySavings), &goalID, now),
		)
	}

	completedAt := now
	records.Setup = &entity.Setup{
		Completed:      true,
		DisplayName:    sub.DisplayName,
		AlertThreshold: sub.AlertThreshold,
		CompletedAt:    &completedAt,
	}

	return records
}
