// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletive/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind        string          `gorm:"type:varchar(20);not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category    *string         `gorm:"type:varchar(20)"`
	GoalID      *uuid.UUID      `gorm:"type:uuid;index"`
	OccurredAt  time.Time       `gorm:"not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`

	// Contributions outlive their goal with a cleared reference.
	Goal *SavingsGoalModel `gorm:"foreignKey:GoalID;references:ID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	var category *entity.TransactionCategory
	if m.Category != nil {
		category = entity.CategoryPtr(entity.TransactionCategory(*m.Category))
	}

	return &entity.Transaction{
		ID:          m.ID,
		Kind:        entity.TransactionKind(m.Kind),
		Description: m.Description,
		Amount:      m.Amount,
		Category:    category,
		GoalID:      m.GoalID,
		OccurredAt:  m.OccurredAt,
		CreatedAt:   m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	var category *string
	if t.Category != nil {
		c := string(*t.Category)
		category = &c
	}

	return &TransactionModel{
		ID:          t.ID,
		Kind:        string(t.Kind),
		Description: t.Description,
		Amount:      t.Amount,
		Category:    category,
		GoalID:      t.GoalID,
		OccurredAt:  t.OccurredAt,
		CreatedAt:   t.CreatedAt,
	}
}
