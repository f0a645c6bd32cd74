package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/diceduel/internal/repositories/stats Repository

import (
	"context"

	"github.com/KirkDiggler/diceduel/internal/models"
)

// Repository defines the interface for cumulative stats persistence
type Repository interface {
	// GetStats retrieves the persisted stats record
	GetStats(ctx context.Context, input *GetStatsInput) (*models.Stats, error)

	// SaveStats replaces the persisted stats record
	SaveStats(ctx context.Context, input *SaveStatsInput) error
}
