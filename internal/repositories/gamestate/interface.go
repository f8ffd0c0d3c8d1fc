package gamestate

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/hollyberry/giftswap/internal/repositories/gamestate Repository

import (
	"context"

	"github.com/hollyberry/giftswap/internal/models"
)

// Repository defines the interface for persisting the single shared game state
type Repository interface {
	// GetState retrieves the current game state
	GetState(ctx context.Context, input *GetStateInput) (*models.GameState, error)

	// SaveState persists the game state, replacing the previous one
	SaveState(ctx context.Context, input *SaveStateInput) error

	// DeleteState removes the stored game state
	DeleteState(ctx context.Context, input *DeleteStateInput) error

	// WithLock runs fn while holding the exclusive state lock. Acquisition
	// waits a bounded time and fails with ErrLockTimeout; the lock is released
	// whether or not fn errors.
	WithLock(ctx context.Context, fn func(ctx context.Context) error) error
}
