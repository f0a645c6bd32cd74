package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/diceduel/internal/services/game Service

import "context"

// Service defines the operations of a single dice-prediction session
type Service interface {
	// Configure selects how many dice the next roll uses
	Configure(ctx context.Context, input *ConfigureInput) (*ConfigureOutput, error)

	// SetPrediction records the raw prediction; it is validated when rolling
	SetPrediction(ctx context.Context, input *SetPredictionInput) (*SetPredictionOutput, error)

	// RollDice validates the prediction and schedules the roll to resolve after the delay
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)

	// Resolve rolls the dice, scores the prediction and updates the stats
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)

	// Reset clears the finished round so the next one can be set up
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)

	// GetState returns everything needed to render the session
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// Close cancels any pending roll and flushes the stats
	Close(ctx context.Context) error
}
