// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/walletive/backend/internal/domain/questionnaire"
)

// SurveySession holds an in-progress questionnaire between requests.
type SurveySession struct {
	ID        uuid.UUID           `json:"id"`
	State     questionnaire.State `json:"state"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// NewSurveySession creates a session with the given starting state.
func NewSurveySession(state questionnaire.State) *SurveySession {
	now := time.Now().UTC()
	return &SurveySession{
		ID:        uuid.New(),
		State:     state,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
