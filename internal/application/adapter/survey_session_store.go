// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/walletive/backend/internal/domain/entity"
)

// SurveySessionStore keeps in-progress survey sessions.
type SurveySessionStore interface {
	// Save creates or replaces a session.
	Save(ctx context.Context, session *entity.SurveySession) error

	// Get returns a session or ErrSessionNotFound.
	Get(ctx context.Context, id uuid.UUID) (*entity.SurveySession, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
