// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletive/backend/internal/application/adapter"
	"github.com/walletive/backend/internal/domain/entity"
	domainerror "github.com/walletive/backend/internal/domain/error"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Kind *entity.TransactionKind
}

// TransactionOutput represents a single transaction in the output.
type TransactionOutput struct {
	ID          uuid.UUID
	Kind        entity.TransactionKind
	Description string
	Amount      decimal.Decimal
	Category    *entity.TransactionCategory
	GoalID      *uuid.UUID
	OccurredAt  time.Time
}

// TotalsOutput represents aggregated totals in the output.
type TotalsOutput struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*TransactionOutput
	Totals       TotalsOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.Kind != nil && !input.Kind.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"unknown transaction kind "+string(*input.Kind),
			domainerror.ErrInvalidTransactionKind,
		)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx, adapter.TransactionFilter{Kind: input.Kind})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	output := &ListTransactionsOutput{
		Transactions: make([]*TransactionOutput, 0, len(transactions)),
	}

	for _, txn := range transactions {
		output.Transactions = append(output.Transactions, &TransactionOutput{
			ID:          txn.ID,
			Kind:        txn.Kind,
			Description: txn.Description,
			Amount:      txn.Amount,
			Category:    txn.Category,
			GoalID:      txn.GoalID,
			OccurredAt:  txn.OccurredAt,
		})

		switch txn.Kind {
		case entity.TransactionKindIncome:
			output.Totals.IncomeTotal = output.Totals.IncomeTotal.Add(txn.Amount)
		case entity.TransactionKindExpense:
			output.Totals.ExpenseTotal = output.Totals.ExpenseTotal.Add(txn.Amount)
		}
	}
	output.Totals.NetTotal = output.Totals.IncomeTotal.Sub(output.Totals.ExpenseTotal)

	return output, nil
}
