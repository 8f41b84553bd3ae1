// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Setup is the persisted record that tells whether onboarding has finished.
// A zero Setup means first run.
type Setup struct {
	Completed      bool
	DisplayName    string
	AlertThreshold *decimal.Decimal // Spending percentage of income that triggers an alert
	CompletedAt    *time.Time
}

// DefaultDisplayName is used when no name has been recorded yet.
const DefaultDisplayName = "Usuario"

// Greeting returns the stored name, or DefaultDisplayName when missing.
func (s *Setup) Greeting() string {
	if s == nil || s.DisplayName == "" {
		return DefaultDisplayName
	}
	return s.DisplayName
}
