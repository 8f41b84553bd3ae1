// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/walletive/backend/internal/application/adapter"
	"github.com/walletive/backend/internal/domain/entity"
	"github.com/walletive/backend/internal/integration/persistence/model"
)

// setupRepository implements the adapter.SetupRepository interface over the settings table.
type setupRepository struct {
	db *gorm.DB
}

// NewSetupRepository creates a new setup repository instance.
func NewSetupRepository(db *gorm.DB) adapter.SetupRepository {
	return &setupRepository{
		db: db,
	}
}

// Get reads the setup keys. Missing keys keep their zero value.
func (r *setupRepository) Get(ctx context.Context) (*entity.Setup, error) {
	var settings []model.SettingModel
	if err := r.db.WithContext(ctx).Find(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	return setupFromSettings(settings), nil
}

func setupFromSettings(settings []model.SettingModel) *entity.Setup {
	setup := &entity.Setup{}

	for _, s := range settings {
		switch s.Key {
		case model.SettingSetupCompleted:
			setup.Completed, _ = strconv.ParseBool(s.Value)
		case model.SettingDisplayName:
			setup.DisplayName = s.Value
		case model.SettingAlertThreshold:
			threshold, err := decimal.NewFromString(s.Value)
			if err != nil {
				slog.Warn("Ignoring malformed alert threshold", "value", s.Value)
				continue
			}
			setup.AlertThreshold = &threshold
		case model.SettingCompletedAt:
			completedAt, err := time.Parse(time.RFC3339Nano, s.Value)
			if err != nil {
				slog.Warn("Ignoring malformed completion time", "value", s.Value)
				continue
			}
			setup.CompletedAt = &completedAt
		}
	}

	return setup
}

// settingsFromSetup flattens a setup record into key/value rows.
func settingsFromSetup(setup *entity.Setup, now time.Time) []model.SettingModel {
	settings := []model.SettingModel{
		{Key: model.SettingSetupCompleted, Value: strconv.FormatBool(setup.Completed), UpdatedAt: now},
		{Key: model.SettingDisplayName, Value: setup.DisplayName, UpdatedAt: now},
	}
	if setup.AlertThreshold != nil {
		settings = append(settings, model.SettingModel{
			Key: model.SettingAlertThreshold, Value: setup.AlertThreshold.String(), UpdatedAt: now,
		})
	}
	if setup.CompletedAt != nil {
		settings = append(settings, model.SettingModel{
			Key: model.SettingCompletedAt, Value: setup.CompletedAt.UTC().Format(time.RFC3339Nano), UpdatedAt: now,
		})
	}
	return settings
}
