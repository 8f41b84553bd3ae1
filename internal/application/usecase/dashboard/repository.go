// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardRepository defines the interface for dashboard data operations.
type DashboardRepository interface {
	// GetTotals returns the summed amounts the summary is derived from.
	// Missing rows yield zero totals.
	GetTotals(ctx context.Context) (*Totals, error)
}

// Totals are the raw sums read from the store.
type Totals struct {
	Income      decimal.Decimal
	Expenses    decimal.Decimal
	ActiveGoals decimal.Decimal
}
