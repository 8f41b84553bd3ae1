// Package model defines database models for persistence layer.
package model

import "time"

// Setting keys written when the survey completes.
const (
	SettingSetupCompleted = "setup_completed"
	SettingDisplayName    = "display_name"
	SettingAlertThreshold = "alert_threshold"
	SettingCompletedAt    = "completed_at"
)

// SettingModel represents the settings table, a key/value store for setup state.
type SettingModel struct {
	Key       string    `gorm:"type:varchar(50);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the SettingModel.
func (SettingModel) TableName() string {
	return "settings"
}
