// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/walletive/backend/internal/domain/entity"
)

// SurveyRepository writes the rows derived from a completed survey.
type SurveyRepository interface {
	// SaveSubmission writes every record in a single database transaction.
	// It fails with ErrSetupAlreadyCompleted when setup was completed before.
	SaveSubmission(ctx context.Context, records *entity.SubmissionRecords) error
}
