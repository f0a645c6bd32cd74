package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_store.go github.com/KirkDiggler/diceduel/internal/services/stats Store

import (
	"context"

	"github.com/KirkDiggler/diceduel/internal/models"
)

// Store is the best-effort persistence the game session talks to.
// Nothing on this interface reports a persistence failure to the caller.
type Store interface {
	// Load returns the persisted stats, or zero stats if none can be read
	Load(ctx context.Context) *models.Stats

	// Save queues a snapshot for writing and returns immediately
	Save(ctx context.Context, stats *models.Stats)

	// Close waits for the queued write to finish or ctx to expire
	Close(ctx context.Context) error
}
