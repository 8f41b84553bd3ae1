package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/walletive/backend/internal/application/adapter"
	"github.com/walletive/backend/internal/application/usecase/survey"
	"github.com/walletive/backend/internal/domain/entity"
	domainerror "github.com/walletive/backend/internal/domain/error"
	"github.com/walletive/backend/internal/domain/questionnaire"
	"github.com/walletive/backend/internal/integration/persistence/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func count(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func minimalSubmission() entity.SurveySubmission {
	return entity.SurveySubmission{
		DisplayName:      "Ana",
		MonthlyIncome:    decimal.NewFromInt(3000000),
		FixedExpenses:    decimal.NewFromInt(800000),
		VariableExpenses: decimal.NewFromInt(400000),
	}
}

func goalSubmission() entity.SurveySubmission {
	sub := minimalSubmission()
	sub.HasSavingsGoal = true
	sub.GoalAmount = decimal.NewFromInt(2000000)
	sub.GoalMonths = 12
	return sub
}

func TestSurveyRepository_RoundTripWithoutGoal(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	records := survey.BuildRecords(minimalSubmission(), time.Now().UTC())
	if err := NewSurveyRepository(db).SaveSubmission(ctx, records); err != nil {
		t.Fatalf("save: %v", err)
	}

	txnRepo := NewTransactionRepository(db)
	income := entity.TransactionKindIncome
	incomes, err := txnRepo.FindAll(ctx, adapter.TransactionFilter{Kind: &income})
	if err != nil {
		t.Fatalf("find income: %v", err)
	}
	if len(incomes) != 1 || incomes[0].Category != nil {
		t.Errorf("expected 1 uncategorized income row, got %d", len(incomes))
	}

	expense := entity.TransactionKindExpense
	expenses, err := txnRepo.FindAll(ctx, adapter.TransactionFilter{Kind: &expense})
	if err != nil {
		t.Fatalf("find expenses: %v", err)
	}
	if len(expenses) != 2 {
		t.Errorf("expected 2 expense rows, got %d", len(expenses))
	}
	if n := count(t, db, &model.SavingsGoalModel{}); n != 0 {
		t.Errorf("expected no goals, got %d", n)
	}

	totals, err := NewDashboardRepository(db).GetTotals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if !totals.Income.Equal(decimal.NewFromInt(3000000)) ||
		!totals.Expenses.Equal(decimal.NewFromInt(1200000)) ||
		!totals.ActiveGoals.IsZero() {
		t.Errorf("unexpected totals: %+v", totals)
	}
	if balance := totals.Income.Sub(totals.Expenses); !balance.Equal(decimal.NewFromInt(1800000)) {
		t.Errorf("expected balance 1800000, got %s", balance)
	}
}

func TestSurveyRepository_LargestAmountsRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	start := time.Now().UTC()

	income, err := questionnaire.ParseAmount("1,234,567,890,123.45")
	if err != nil {
		t.Fatalf("parse income: %v", err)
	}
	target, err := questionnaire.ParseAmount("9999999999999.99")
	if err != nil {
		t.Fatalf("parse target: %v", err)
	}

	sub := goalSubmission()
	sub.MonthlyIncome = income
	sub.GoalAmount = target
	sub.GoalMonths = questionnaire.MaxGoalMonths
	records := survey.BuildRecords(sub, start)
	if err := NewSurveyRepository(db).SaveSubmission(ctx, records); err != nil {
		t.Fatalf("save: %v", err)
	}

	kind := entity.TransactionKindIncome
	incomes, err := NewTransactionRepository(db).FindAll(ctx, adapter.TransactionFilter{Kind: &kind})
	if err != nil {
		t.Fatalf("find income: %v", err)
	}
	if len(incomes) != 1 || !incomes[0].Amount.Equal(income) {
		t.Fatalf("expected stored income %s, got %+v", income, incomes)
	}

	goals, err := NewGoalRepository(db).FindAll(ctx)
	if err != nil {
		t.Fatalf("find goals: %v", err)
	}
	if len(goals) != 1 || !goals[0].TargetAmount.Equal(target) {
		t.Fatalf("expected stored target %s, got %+v", target, goals)
	}
	expectedDeadline := start.AddDate(0, 0, entity.DaysPerGoalMonth*questionnaire.MaxGoalMonths)
	if diff := goals[0].Deadline.Sub(expectedDeadline); diff > time.Second || diff < -time.Second {
		t.Errorf("expected deadline %s, got %s", expectedDeadline, goals[0].Deadline)
	}

	totals, err := NewDashboardRepository(db).GetTotals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if !totals.Income.Equal(income) || !totals.ActiveGoals.Equal(target) {
		t.Errorf("unexpected totals: %+v", totals)
	}
}

func TestSurveyRepository_GoalDeletionCascades(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	start := time.Now().UTC()

	records := survey.BuildRecords(goalSubmission(), start)
	if err := NewSurveyRepository(db).SaveSubmission(ctx, records); err != nil {
		t.Fatalf("save: %v", err)
	}

	goalRepo := NewGoalRepository(db)
	goal, err := goalRepo.FindByID(ctx, records.Goal.ID)
	if err != nil {
		t.Fatalf("find goal: %v", err)
	}
	if goal.Frequency == nil || *goal.Frequency != entity.GoalFrequencyMonthly {
		t.Errorf("expected monthly frequency, got %v", goal.Frequency)
	}
	if !goal.Active || goal.Achieved {
		t.Errorf("expected active, not achieved goal")
	}
	days := goal.Deadline.Sub(goal.StartDate).Hours() / 24
	if days < 359.9 || days > 360.1 {
		t.Errorf("expected deadline 360 days after start, got %.2f", days)
	}
	if n := count(t, db, &model.GoalFrequencyModel{}); n != 1 {
		t.Fatalf("expected 1 frequency row, got %d", n)
	}

	totals, err := NewDashboardRepository(db).GetTotals(ctx)
	if err != nil {
		t.Fatalf("totals: %v", err)
	}
	if !totals.ActiveGoals.Equal(decimal.NewFromInt(2000000)) {
		t.Errorf("expected active goals 2000000, got %s", totals.ActiveGoals)
	}

	if err := goalRepo.Delete(ctx, goal.ID); err != nil {
		t.Fatalf("delete goal: %v", err)
	}
	if n := count(t, db, &model.GoalFrequencyModel{}); n != 0 {
		t.Errorf("expected frequency row to cascade, got %d", n)
	}

	contribution := entity.TransactionKindGoalContribution
	rows, err := NewTransactionRepository(db).FindAll(ctx, adapter.TransactionFilter{Kind: &contribution})
	if err != nil {
		t.Fatalf("find contributions: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected contribution to survive, got %d rows", len(rows))
	}
	if rows[0].GoalID != nil {
		t.Errorf("expected goal reference to be cleared, got %s", rows[0].GoalID)
	}

	if err := goalRepo.Delete(ctx, goal.ID); !errors.Is(err, domainerror.ErrGoalNotFound) {
		t.Errorf("expected ErrGoalNotFound on second delete, got %v", err)
	}
}

func TestSurveyRepository_FailureRollsBackEverything(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	injected := errors.New("injected failure")
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_frequency", func(tx *gorm.DB) {
		if tx.Statement.Table == "goal_frequencies" {
			_ = tx.AddError(injected)
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	records := survey.BuildRecords(goalSubmission(), time.Now().UTC())
	if err := NewSurveyRepository(db).SaveSubmission(ctx, records); !errors.Is(err, injected) {
		t.Fatalf("expected injected failure, got %v", err)
	}

	for name, m := range map[string]any{
		"transactions":     &model.TransactionModel{},
		"savings_goals":    &model.SavingsGoalModel{},
		"goal_frequencies": &model.GoalFrequencyModel{},
		"settings":         &model.SettingModel{},
	} {
		if n := count(t, db, m); n != 0 {
			t.Errorf("expected no rows in %s, got %d", name, n)
		}
	}

	setup, err := NewSetupRepository(db).Get(ctx)
	if err != nil {
		t.Fatalf("get setup: %v", err)
	}
	if setup.Completed {
		t.Error("expected setup to remain incomplete")
	}
}

func TestSurveyRepository_RejectsSecondSubmission(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewSurveyRepository(db)

	if err := repo.SaveSubmission(ctx, survey.BuildRecords(minimalSubmission(), time.Now().UTC())); err != nil {
		t.Fatalf("first save: %v", err)
	}
	err := repo.SaveSubmission(ctx, survey.BuildRecords(minimalSubmission(), time.Now().UTC()))
	if !errors.Is(err, domainerror.ErrSetupAlreadyCompleted) {
		t.Fatalf("expected ErrSetupAlreadyCompleted, got %v", err)
	}
	if n := count(t, db, &model.TransactionModel{}); n != 3 {
		t.Errorf("expected 3 transactions, got %d", n)
	}
}

func TestSetupRepository_Get(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	setupRepo := NewSetupRepository(db)

	first, err := setupRepo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if first.Completed || first.Greeting() != entity.DefaultDisplayName {
		t.Errorf("expected first run, got %+v", first)
	}

	sub := minimalSubmission()
	threshold := decimal.RequireFromString("85.5")
	sub.AlertThreshold = &threshold
	if err := NewSurveyRepository(db).SaveSubmission(ctx, survey.BuildRecords(sub, time.Now().UTC())); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := setupRepo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Completed || got.DisplayName != "Ana" {
		t.Errorf("unexpected setup: %+v", got)
	}
	if got.AlertThreshold == nil || !got.AlertThreshold.Equal(threshold) {
		t.Errorf("expected threshold 85.5, got %v", got.AlertThreshold)
	}
	if got.CompletedAt == nil {
		t.Error("expected completion time")
	}
}

func TestDashboardRepository_TotalsAreIdempotent(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	sub := goalSubmission()
	sub.HasDebt = true
	sub.TotalDebt = decimal.RequireFromString("1234.56")
	sub.MonthlyDebtPayment = decimal.NewFromInt(100)
	if err := NewSurveyRepository(db).SaveSubmission(ctx, survey.BuildRecords(sub, time.Now().UTC())); err != nil {
		t.Fatalf("save: %v", err)
	}

	repo := NewDashboardRepository(db)
	first, err := repo.GetTotals(ctx)
	if err != nil {
		t.Fatalf("first read: %v", err)
	}
	second, err := repo.GetTotals(ctx)
	if err != nil {
		t.Fatalf("second read: %v", err)
	}

	want := decimal.RequireFromString("1201334.56")
	if !first.Expenses.Equal(want) {
		t.Errorf("expected expenses %s, got %s", want, first.Expenses)
	}
	if !first.Income.Equal(second.Income) || !first.Expenses.Equal(second.Expenses) ||
		!first.ActiveGoals.Equal(second.ActiveGoals) {
		t.Errorf("totals changed between reads: %+v vs %+v", first, second)
	}
	if n := count(t, db, &model.TransactionModel{}); n != 6 {
		t.Errorf("expected 6 transactions, got %d", n)
	}
}
