// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// FinancialSummary aggregates the stored rows for the dashboard.
type FinancialSummary struct {
	Income           decimal.Decimal
	Expenses         decimal.Decimal
	ActiveGoalsTotal decimal.Decimal
	Balance          decimal.Decimal
}

// NewFinancialSummary builds a summary and derives the balance.
func NewFinancialSummary(income, expenses, activeGoals decimal.Decimal) *FinancialSummary {
	return &FinancialSummary{
		Income:           income,
		Expenses:         expenses,
		ActiveGoalsTotal: activeGoals,
		Balance:          income.Sub(expenses),
	}
}
