// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/walletive/backend/internal/domain/entity"
)

// TransactionFilter defines filtering options for listing transactions.
type TransactionFilter struct {
	Kind *entity.TransactionKind
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// FindAll retrieves transactions matching the filter, oldest first.
	FindAll(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)
}
