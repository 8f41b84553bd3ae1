// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/walletive/backend/internal/application/adapter"
	"github.com/walletive/backend/internal/domain/entity"
	domainerror "github.com/walletive/backend/internal/domain/error"
	"github.com/walletive/backend/internal/integration/persistence/model"
)

// surveyRepository implements the adapter.SurveyRepository interface.
type surveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository creates a new survey repository instance.
func NewSurveyRepository(db *gorm.DB) adapter.SurveyRepository {
	return &surveyRepository{
		db: db,
	}
}

// SaveSubmission writes goal, frequency, transactions and setup rows in one
// transaction. Any failure rolls back every row.
func (r *surveyRepository) SaveSubmission(ctx context.Context, records *entity.SubmissionRecords) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var completed int64
		err := tx.Model(&model.SettingModel{}).
			Where("key = ? AND value = ?", model.SettingSetupCompleted, "true").
			Count(&completed).Error
		if err != nil {
			return fmt.Errorf("failed to check setup: %w", err)
		}
		if completed > 0 {
			return domainerror.ErrSetupAlreadyCompleted
		}

		// Goal first: the frequency row and the contribution reference it.
		if records.Goal != nil {
			if err := tx.Omit(clause.Associations).Create(model.SavingsGoalFromEntity(records.Goal)).Error; err != nil {
				return fmt.Errorf("failed to create goal: %w", err)
			}
		}

		if records.Frequency != nil {
			if err := tx.Create(model.GoalFrequencyFromEntity(records.Frequency)).Error; err != nil {
				return fmt.Errorf("failed to create goal frequency: %w", err)
			}
		}

		if len(records.Transactions) > 0 {
			txnModels := make([]*model.TransactionModel, len(records.Transactions))
			for i, t := range records.Transactions {
				txnModels[i] = model.TransactionFromEntity(t)
			}
			if err := tx.Omit(clause.Associations).Create(&txnModels).Error; err != nil {
				return fmt.Errorf("failed to create transactions: %w", err)
			}
		}

		if records.Setup != nil {
			settings := settingsFromSetup(records.Setup, time.Now().UTC())
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&settings).Error
			if err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
		}

		return nil
	})
}
