package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"
)

// registerStoreSteps registers steps that inspect the database directly.
func registerStoreSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the table "([^"]*)" should have (\d+) rows?$`, theTableShouldHaveRows)
	ctx.Step(`^the table "([^"]*)" should have (\d+) rows? where "([^"]*)" is "([^"]*)"$`, theTableShouldHaveRowsWhere)
	ctx.Step(`^no transaction should reference a goal$`, noTransactionShouldReferenceAGoal)
}

func theTableShouldHaveRows(ctx context.Context, table string, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	count, err := tc.db.Count(table, "")
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("table %s expected %d rows, got %d", table, expected, count)
	}
	return nil
}

func theTableShouldHaveRowsWhere(ctx context.Context, table string, expected int, column, value string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	count, err := tc.db.Count(table, column+" = ?", value)
	if err != nil {
		return err
	}
	if count != int64(expected) {
		return fmt.Errorf("table %s expected %d rows with %s=%s, got %d", table, expected, column, value, count)
	}
	return nil
}

func noTransactionShouldReferenceAGoal(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	count, err := tc.db.Count("transactions", "goal_id IS NOT NULL")
	if err != nil {
		return err
	}
	if count != 0 {
		return fmt.Errorf("expected no goal references, got %d", count)
	}
	return nil
}
