// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/walletive/backend/internal/application/usecase/transaction"
)

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    *string   `json:"category,omitempty"`
	GoalID      *string   `json:"goal_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// TotalsResponse represents aggregated totals.
type TotalsResponse struct {
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	NetTotal     string `json:"net_total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Totals       TotalsResponse        `json:"totals"`
}

// ToTransactionListResponse converts the list output to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	response := TransactionListResponse{
		Transactions: make([]TransactionResponse, len(output.Transactions)),
		Totals: TotalsResponse{
			IncomeTotal:  output.Totals.IncomeTotal.StringFixed(2),
			ExpenseTotal: output.Totals.ExpenseTotal.StringFixed(2),
			NetTotal:     output.Totals.NetTotal.StringFixed(2),
		},
	}

	for i, txn := range output.Transactions {
		item := TransactionResponse{
			ID:          txn.ID.String(),
			Kind:        string(txn.Kind),
			Description: txn.Description,
			Amount:      txn.Amount.StringFixed(2),
			OccurredAt:  txn.OccurredAt,
		}
		if txn.Category != nil {
			category := string(*txn.Category)
			item.Category = &category
		}
		if txn.GoalID != nil {
			goalID := txn.GoalID.String()
			item.GoalID = &goalID
		}
		response.Transactions[i] = item
	}

	return response
}
