// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/walletive/backend/internal/domain/entity"
)

// SetupRepository reads the persisted onboarding state.
type SetupRepository interface {
	// Get returns the stored setup. Missing rows yield a zero Setup, not an error.
	Get(ctx context.Context) (*entity.Setup, error)
}
