// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DaysPerGoalMonth is the fixed month length used to compute goal deadlines.
const DaysPerGoalMonth = 30

// GoalFrequency represents how often contributions toward a goal are expected.
type GoalFrequency string

const (
	GoalFrequencyMonthly GoalFrequency = "monthly"
)

// SavingsGoal represents a savings target with a deadline.
type SavingsGoal struct {
	ID           uuid.UUID
	Description  string
	TargetAmount decimal.Decimal
	Active       bool
	Achieved     bool
	StartDate    time.Time
	Deadline     time.Time
	Frequency    *GoalFrequency // Loaded from the frequency satellite, nil when absent
}

// NewSavingsGoal creates an active, not yet achieved goal starting at start.
// The deadline is start plus months periods of DaysPerGoalMonth days and is never recomputed.
func NewSavingsGoal(description string, target decimal.Decimal, months int, start time.Time) *SavingsGoal {
	return &SavingsGoal{
		ID:           uuid.New(),
		Description:  description,
		TargetAmount: target,
		Active:       true,
		Achieved:     false,
		StartDate:    start,
		Deadline:     GoalDeadline(start, months),
	}
}

// GoalDeadline returns start + months × DaysPerGoalMonth days.
func GoalDeadline(start time.Time, months int) time.Time {
	return start.AddDate(0, 0, DaysPerGoalMonth*months)
}

// GoalFrequencyRecord is the one-to-one satellite of a SavingsGoal.
type GoalFrequencyRecord struct {
	GoalID    uuid.UUID
	Frequency GoalFrequency
}
