// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"
)

// SurveySubmission is the typed result of a completed onboarding survey.
// Debt and goal figures are only meaningful when their flags are set.
type SurveySubmission struct {
	DisplayName        string
	MonthlyIncome      decimal.Decimal
	FixedExpenses      decimal.Decimal
	VariableExpenses   decimal.Decimal
	HasDebt            bool
	TotalDebt          decimal.Decimal
	MonthlyDebtPayment decimal.Decimal
	HasSavingsGoal     bool
	GoalAmount         decimal.Decimal
	GoalMonths         int
	AlertThreshold     *decimal.Decimal
}

// SubmissionRecords are the rows derived from one SurveySubmission.
// They are written together or not at all.
type SubmissionRecords struct {
	Transactions []*Transaction
	Goal         *SavingsGoal
	Frequency    *GoalFrequencyRecord
	Setup        *Setup
}
