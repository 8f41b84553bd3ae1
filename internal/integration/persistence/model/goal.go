// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletive/backend/internal/domain/entity"
)

// SavingsGoalModel represents the savings_goals table in the database.
// Goals are hard-deleted so the frequency cascade and contribution set-null fire.
type SavingsGoalModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description  string          `gorm:"type:varchar(255);not null"`
	TargetAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Active       bool            `gorm:"not null"`
	Achieved     bool            `gorm:"not null"`
	StartDate    time.Time       `gorm:"not null"`
	Deadline     time.Time       `gorm:"not null"`
	CreatedAt    time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Frequency *GoalFrequencyModel `gorm:"foreignKey:GoalID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the SavingsGoalModel.
func (SavingsGoalModel) TableName() string {
	return "savings_goals"
}

// ToEntity converts a SavingsGoalModel to a domain SavingsGoal entity.
func (m *SavingsGoalModel) ToEntity() *entity.SavingsGoal {
	goal := &entity.SavingsGoal{
		ID:           m.ID,
		Description:  m.Description,
		TargetAmount: m.TargetAmount,
		Active:       m.Active,
		Achieved:     m.Achieved,
		StartDate:    m.StartDate,
		Deadline:     m.Deadline,
	}
	if m.Frequency != nil {
		frequency := entity.GoalFrequency(m.Frequency.Frequency)
		goal.Frequency = &frequency
	}
	return goal
}

// SavingsGoalFromEntity creates a SavingsGoalModel from a domain SavingsGoal entity.
// The frequency satellite is written separately.
func SavingsGoalFromEntity(goal *entity.SavingsGoal) *SavingsGoalModel {
	return &SavingsGoalModel{
		ID:           goal.ID,
		Description:  goal.Description,
		TargetAmount: goal.TargetAmount,
		Active:       goal.Active,
		Achieved:     goal.Achieved,
		StartDate:    goal.StartDate,
		Deadline:     goal.Deadline,
	}
}

// GoalFrequencyModel represents the goal_frequencies table, one row per goal.
type GoalFrequencyModel struct {
	GoalID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Frequency string    `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for the GoalFrequencyModel.
func (GoalFrequencyModel) TableName() string {
	return "goal_frequencies"
}

// GoalFrequencyFromEntity creates a GoalFrequencyModel from its domain record.
func GoalFrequencyFromEntity(record *entity.GoalFrequencyRecord) *GoalFrequencyModel {
	return &GoalFrequencyModel{
		GoalID:    record.GoalID,
		Frequency: string(record.Frequency),
	}
}
