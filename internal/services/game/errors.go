package game

import "fmt"

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidPrediction   GameError = "invalid prediction"
	ErrInvalidDiceCount    GameError = "dice count must be between 1 and 3"
	ErrInvalidGameState    GameError = "invalid game state"
	ErrRollInProgress      GameError = "a roll is already in progress"
	ErrSessionClosed       GameError = "session is closed"
	ErrNilInput            GameError = "input cannot be nil"
	ErrNilConfig           GameError = "config cannot be nil"
	ErrNilDiceRoller       GameError = "dice roller cannot be nil"
	ErrNilClock            GameError = "clock cannot be nil"
	ErrNilUUIDGenerator    GameError = "UUID generator cannot be nil"
	ErrNilStatsStore       GameError = "stats store cannot be nil"
	ErrNilMessagingService GameError = "messaging service cannot be nil"
)

// PredictionError describes a prediction that was refused at roll time.
// It matches ErrInvalidPrediction with errors.Is.
type PredictionError struct {
	// Prediction is the raw value that was rejected
	Prediction string

	// MinSum and MaxSum are the inclusive bounds it had to fall within
	MinSum int
	MaxSum int

	// Message is the notice to show the player
	Message string
}

// Error implements the error interface
func (e *PredictionError) Error() string {
	if e.Prediction == "" {
		return fmt.Sprintf("%s: missing, expected %d-%d", ErrInvalidPrediction, e.MinSum, e.MaxSum)
	}
	return fmt.Sprintf("%s: %q not in %d-%d", ErrInvalidPrediction, e.Prediction, e.MinSum, e.MaxSum)
}

// Unwrap lets errors.Is match ErrInvalidPrediction
func (e *PredictionError) Unwrap() error {
	return ErrInvalidPrediction
}
