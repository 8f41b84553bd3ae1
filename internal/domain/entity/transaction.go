// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/walletive/backend/internal/domain/error"
)

// TransactionKind represents the kind of a money movement.
type TransactionKind string

const (
	TransactionKindIncome           TransactionKind = "income"
	TransactionKindExpense          TransactionKind = "expense"
	TransactionKindGoalContribution TransactionKind = "goal_contribution"
)

// IsValid reports whether the kind is one of the known kinds.
func (k TransactionKind) IsValid() bool {
	switch k {
	case TransactionKindIncome, TransactionKindExpense, TransactionKindGoalContribution:
		return true
	}
	return false
}

// TransactionCategory classifies expenses and goal contributions.
type TransactionCategory string

const (
	TransactionCategoryFixed      TransactionCategory = "fixed"
	TransactionCategoryVariable   TransactionCategory = "variable"
	TransactionCategorySporadic   TransactionCategory = "sporadic"
	TransactionCategoryUnexpected TransactionCategory = "unexpected"
	TransactionCategorySavings    TransactionCategory = "savings"
)

// IsValid reports whether the category is one of the known categories.
func (c TransactionCategory) IsValid() bool {
	switch c {
	case TransactionCategoryFixed,
		TransactionCategoryVariable,
		TransactionCategorySporadic,
		TransactionCategoryUnexpected,
		TransactionCategorySavings:
		return true
	}
	return false
}

// Transaction represents a money movement recorded in the Walletive store.
type Transaction struct {
	ID          uuid.UUID
	Kind        TransactionKind
	Description string
	Amount      decimal.Decimal // Always non-negative; Kind carries the direction
	Category    *TransactionCategory
	GoalID      *uuid.UUID // Only for goal contributions
	OccurredAt  time.Time
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	kind TransactionKind,
	description string,
	amount decimal.Decimal,
	category *TransactionCategory,
	goalID *uuid.UUID,
	occurredAt time.Time,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		Kind:        kind,
		Description: description,
		Amount:      amount,
		Category:    category,
		GoalID:      goalID,
		OccurredAt:  occurredAt,
		CreatedAt:   time.Now().UTC(),
	}
}

// Validate checks the row invariants: non-negative amount, no category on income,
// and a goal reference only on goal contributions.
func (t *Transaction) Validate() error {
	if !t.Kind.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"unknown transaction kind "+string(t.Kind),
			domainerror.ErrInvalidTransactionKind,
		)
	}

	if t.Amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if t.Category != nil {
		if t.Kind == TransactionKindIncome || !t.Category.IsValid() {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionCategory,
				"category not allowed for "+string(t.Kind),
				domainerror.ErrInvalidTransactionCategory,
			)
		}
	}

	if t.GoalID != nil && t.Kind != TransactionKindGoalContribution {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeUnexpectedGoalReference,
			"goal reference set on "+string(t.Kind),
			domainerror.ErrUnexpectedGoalReference,
		)
	}

	return nil
}

// CategoryPtr returns a pointer to the given category.
func CategoryPtr(c TransactionCategory) *TransactionCategory {
	return &c
}
