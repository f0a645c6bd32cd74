package stats

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/diceduel/internal/models"
)

var (
	// ErrStatsNotFound is returned when nothing has been stored yet
	ErrStatsNotFound = errors.New("stats not found")

	// ErrMalformedStats is returned when the stored record cannot be decoded
	// or holds inconsistent counts
	ErrMalformedStats = errors.New("stats record is malformed")

	errNilInput = errors.New("input and stats cannot be nil")
)

func encodeStats(input *SaveStatsInput) ([]byte, error) {
	if input == nil || input.Stats == nil {
		return nil, errNilInput
	}

	data, err := json.Marshal(input.Stats)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stats: %w", err)
	}
	return data, nil
}

func decodeStats(data []byte) (*models.Stats, error) {
	var stats models.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedStats, err)
	}
	if !stats.Valid() {
		return nil, fmt.Errorf("%w: wins=%d gamesPlayed=%d", ErrMalformedStats, stats.Wins, stats.GamesPlayed)
	}
	return &stats, nil
}
