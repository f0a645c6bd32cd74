package stats

import "github.com/KirkDiggler/diceduel/internal/models"

// DefaultKey is the key the stats record lives under when none is configured
const DefaultKey = "diceGameStats"

type GetStatsInput struct {
}

type SaveStatsInput struct {
	Stats *models.Stats
}
