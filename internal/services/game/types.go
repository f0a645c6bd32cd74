package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/diceduel/internal/common/clock"
	"github.com/KirkDiggler/diceduel/internal/common/uuid"
	"github.com/KirkDiggler/diceduel/internal/dice"
	"github.com/KirkDiggler/diceduel/internal/models"
	"github.com/KirkDiggler/diceduel/internal/services/messaging"
	statsStore "github.com/KirkDiggler/diceduel/internal/services/stats"
)

// DefaultRollDelay is how long the dice tumble when no delay is configured
const DefaultRollDelay = time.Second

// ResultListener is called, outside the session lock, every time a roll resolves
type ResultListener func(output *ResolveOutput)

// Config holds configuration for the game service
type Config struct {
	// Delay between RollDice and the automatic Resolve
	RollDelay time.Duration

	// Number of dice selected when the session starts
	DefaultDiceCount int

	// Optional hook for hosts that need to re-render once the result is in
	ResultListener ResultListener

	// Service dependencies
	DiceRoller       dice.Roller
	Clock            clock.Clock
	UUIDGenerator    uuid.UUID
	StatsStore       statsStore.Store
	MessagingService messaging.Service

	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// ConfigureInput contains parameters for choosing the number of dice
type ConfigureInput struct {
	// DiceCount must be 1, 2 or 3
	DiceCount int
}

// ConfigureOutput contains the range the prediction must now fall within
type ConfigureOutput struct {
	DiceCount int
	MinSum    int
	MaxSum    int
}

// SetPredictionInput contains the prediction as entered by the player
type SetPredictionInput struct {
	Prediction string
}

// SetPredictionOutput echoes the stored prediction
type SetPredictionOutput struct {
	Prediction string
}

// RollDiceInput contains parameters for rolling dice
type RollDiceInput struct {
}

// RollDiceOutput describes the roll that is now in flight
type RollDiceOutput struct {
	DiceCount  int
	Prediction int

	// Delay is how long until the result is revealed
	Delay time.Duration

	State models.GameState
}

// ResolveInput contains parameters for resolving the pending roll
type ResolveInput struct {
}

// ResolveOutput contains the result of a resolved round
type ResolveOutput struct {
	Result *models.RollResult

	// Message is the feedback for the outcome
	Message string

	// Stats are the cumulative stats after this round
	Stats   models.Stats
	WinRate int
}

// ResetInput contains parameters for starting the next round
type ResetInput struct {
}

// ResetOutput describes the fresh round
type ResetOutput struct {
	DiceCount int
	MinSum    int
	MaxSum    int
}

// GetStateInput contains parameters for reading the session state
type GetStateInput struct {
}

// GetStateOutput is a snapshot of the session for rendering
type GetStateOutput struct {
	State      models.GameState
	DiceCount  int
	Prediction string
	MinSum     int
	MaxSum     int

	// LastRoll is set only in the result state
	LastRoll *models.RollResult
	Message  string

	Stats   models.Stats
	WinRate int

	// Hint is empty until enough games have been played
	Hint string
}
