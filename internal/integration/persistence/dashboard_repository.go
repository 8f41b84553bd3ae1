// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/walletive/backend/internal/application/usecase/dashboard"
	"github.com/walletive/backend/internal/domain/entity"
	"github.com/walletive/backend/internal/integration/persistence/model"
)

// dashboardRepository implements the dashboard.DashboardRepository interface.
type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository instance.
func NewDashboardRepository(db *gorm.DB) dashboard.DashboardRepository {
	return &dashboardRepository{
		db: db,
	}
}

// GetTotals sums income and expense amounts and the targets of active goals.
func (r *dashboardRepository) GetTotals(ctx context.Context) (*dashboard.Totals, error) {
	var txnResult struct {
		Income   decimal.Decimal `gorm:"column:income"`
		Expenses decimal.Decimal `gorm:"column:expenses"`
	}

	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select(`
			COALESCE(SUM(CASE WHEN kind = ? THEN amount ELSE 0 END), 0) as income,
			COALESCE(SUM(CASE WHEN kind = ? THEN amount ELSE 0 END), 0) as expenses
		`, string(entity.TransactionKindIncome), string(entity.TransactionKindExpense)).
		Scan(&txnResult).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions: %w", err)
	}

	var goalResult struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	err = r.db.WithContext(ctx).
		Model(&model.SavingsGoalModel{}).
		Select("COALESCE(SUM(target_amount), 0) as total").
		Where("active = ?", true).
		Scan(&goalResult).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum active goals: %w", err)
	}

	// SQLite sums decimals as REAL; two places is the stored precision.
	return &dashboard.Totals{
		Income:      txnResult.Income.Round(2),
		Expenses:    txnResult.Expenses.Round(2),
		ActiveGoals: goalResult.Total.Round(2),
	}, nil
}
