package survey

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/walletive/backend/internal/application/adapter"
	domainerror "github.com/walletive/backend/internal/domain/error"
)

// DiscardSessionInput represents the input for discarding a session.
type DiscardSessionInput struct {
	SessionID uuid.UUID
}

// DiscardSessionOutput represents the output of discarding a session.
type DiscardSessionOutput struct {
	Success bool
}

// DiscardSessionUseCase drops an in-progress session without persisting anything.
type DiscardSessionUseCase struct {
	store adapter.SurveySessionStore
}

// NewDiscardSessionUseCase creates a new DiscardSessionUseCase instance.
func NewDiscardSessionUseCase(store adapter.SurveySessionStore) *DiscardSessionUseCase {
	return &DiscardSessionUseCase{
		store: store,
	}
}

// Execute performs the deletion.
func (uc *DiscardSessionUseCase) Execute(ctx context.Context, input DiscardSessionInput) (*DiscardSessionOutput, error) {
	if _, err := uc.store.Get(ctx, input.SessionID); err != nil {
		if errors.Is(err, domainerror.ErrSessionNotFound) {
			return nil, sessionNotFoundError()
		}
		return nil, fmt.Errorf("failed to get survey session: %w", err)
	}

	if err := uc.store.Delete(ctx, input.SessionID); err != nil {
		return nil, fmt.Errorf("failed to delete survey session: %w", err)
	}

	return &DiscardSessionOutput{
		Success: true,
	}, nil
}
