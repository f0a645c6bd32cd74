package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/diceduel/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetOutcomeMessage returns the feedback shown after a roll is resolved
	GetOutcomeMessage(ctx context.Context, input *GetOutcomeMessageInput) (*GetOutcomeMessageOutput, error)

	// GetInvalidPredictionMessage returns the notice shown when a roll is refused
	GetInvalidPredictionMessage(ctx context.Context, input *GetInvalidPredictionMessageInput) (*GetInvalidPredictionMessageOutput, error)

	// GetHintMessage returns the probability tip, if the player has earned one
	GetHintMessage(ctx context.Context, input *GetHintMessageInput) (*GetHintMessageOutput, error)
}
