package messaging

import (
	"github.com/KirkDiggler/diceduel/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneCelebration is used for exact predictions
	ToneCelebration MessageTone = "celebration"

	// ToneEncouraging is used for near misses
	ToneEncouraging MessageTone = "encouraging"

	// ToneNeutral is used for everything else
	ToneNeutral MessageTone = "neutral"
)

// Config holds configuration for the messaging service
type Config struct {
	// Optional seed for testing; zero seeds from the clock
	Seed int64

	// Classic always returns the first, canonical message for an outcome
	Classic bool
}

// GetOutcomeMessageInput contains the input for GetOutcomeMessage
type GetOutcomeMessageInput struct {
	Outcome models.Outcome
}

// GetOutcomeMessageOutput contains the output for GetOutcomeMessage
type GetOutcomeMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetInvalidPredictionMessageInput contains the valid range the prediction missed
type GetInvalidPredictionMessageInput struct {
	MinSum int
	MaxSum int
}

// GetInvalidPredictionMessageOutput contains the output for GetInvalidPredictionMessage
type GetInvalidPredictionMessageOutput struct {
	Title   string
	Message string
}

// GetHintMessageInput contains the input for GetHintMessage
type GetHintMessageInput struct {
	DiceCount int
	Stats     *models.Stats
}

// GetHintMessageOutput contains the output for GetHintMessage
type GetHintMessageOutput struct {
	// Show is false until enough games have been played
	Show    bool
	Message string
}
