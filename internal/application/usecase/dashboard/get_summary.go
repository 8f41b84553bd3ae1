package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/walletive/backend/internal/application/adapter"
	"github.com/walletive/backend/internal/domain/entity"
)

// Dashboard messages.
const (
	AlertNegativeBalance        = "Tu balance es negativo. Revisa tus gastos."
	AlertAllGood                = "Sistema configurado correctamente"
	RecommendationPositive      = "Considera aumentar tus metas de ahorro con el balance positivo."
	RecommendationReviewExpense = "Revisa tus gastos variables para mejorar tu balance."
)

var hundred = decimal.NewFromInt(100)

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct{}

// GetSummaryOutput represents the dashboard summary.
type GetSummaryOutput struct {
	DisplayName    string
	Summary        *entity.FinancialSummary
	SpendingRatio  *decimal.Decimal // Expenses as a percentage of income, nil without income
	AlertThreshold *decimal.Decimal
	Alerts         []string
	Recommendation string
}

// GetSummaryUseCase aggregates stored rows into the dashboard summary.
type GetSummaryUseCase struct {
	dashboardRepo DashboardRepository
	setupRepo     adapter.SetupRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(dashboardRepo DashboardRepository, setupRepo adapter.SetupRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		dashboardRepo: dashboardRepo,
		setupRepo:     setupRepo,
	}
}

// Execute reads the totals and derives balance, alerts and recommendation.
// It performs no writes.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, _ GetSummaryInput) (*GetSummaryOutput, error) {
	totals, err := uc.dashboardRepo.GetTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get totals: %w", err)
	}

	setup, err := uc.setupRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get setup: %w", err)
	}

	summary := entity.NewFinancialSummary(totals.Income, totals.Expenses, totals.ActiveGoals)

	output := &GetSummaryOutput{
		DisplayName:    setup.Greeting(),
		Summary:        summary,
		AlertThreshold: setup.AlertThreshold,
	}

	if summary.Income.IsPositive() {
		ratio := summary.Expenses.Mul(hundred).Div(summary.Income).Round(2)
		output.SpendingRatio = &ratio
	}

	output.Alerts = buildAlerts(summary, output.SpendingRatio, setup.AlertThreshold)
	output.Recommendation = recommendation(summary.Balance)

	return output, nil
}

func buildAlerts(summary *entity.FinancialSummary, ratio, threshold *decimal.Decimal) []string {
	alerts := make([]string, 0, 2)

	if summary.Balance.IsNegative() {
		alerts = append(alerts, AlertNegativeBalance)
	}

	if ratio != nil && threshold != nil && ratio.GreaterThanOrEqual(*threshold) {
		alerts = append(alerts, fmt.Sprintf("Has gastado el %s%% de tu ingreso mensual", ratio.StringFixed(0)))
	}

	if len(alerts) == 0 {
		alerts = append(alerts, AlertAllGood)
	}
	return alerts
}

func recommendation(balance decimal.Decimal) string {
	if balance.IsPositive() {
		return RecommendationPositive
	}
	return RecommendationReviewExpense
}
