package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/diceduel/internal/models"
)

// outcomeMessages lists the candidate copy per outcome; the first entry is the canonical one
var outcomeMessages = map[models.Outcome][]string{
	models.OutcomeExact: {
		"🎉 Perfect! You guessed it!",
		"🎉 Nailed it! The dice bow to you.",
		"🎉 Right on the money!",
	},
	models.OutcomeOffByOne: {
		"🔥 So close! Try again!",
		"🔥 One pip away. Agonizing!",
		"🔥 Missed by a hair!",
	},
	models.OutcomeClose: {
		"👍 Close! You're getting better!",
		"👍 Not far off, keep at it!",
		"👍 Warm, very warm!",
	},
	models.OutcomeFar: {
		"🎲 Try again! Keep practicing!",
		"🎲 The dice had other plans.",
		"🎲 Way off this time. Shake it off!",
	},
}

var outcomeTitles = map[models.Outcome]string{
	models.OutcomeExact:    "You win!",
	models.OutcomeOffByOne: "Off by one",
	models.OutcomeClose:    "Close",
	models.OutcomeFar:      "Not this time",
}

// service implements the Service interface
type service struct {
	classic bool

	// rand.Rand is not safe for concurrent use
	mu   sync.Mutex
	rand *rand.Rand
}

// New creates a new messaging service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		classic: cfg.Classic,
		rand:    rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(messages []string) string {
	if s.classic {
		return messages[0]
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return messages[s.rand.Intn(len(messages))]
}

// GetOutcomeMessage returns the feedback shown after a roll is resolved
func (s *service) GetOutcomeMessage(ctx context.Context, input *GetOutcomeMessageInput) (*GetOutcomeMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages, ok := outcomeMessages[input.Outcome]
	if !ok {
		return nil, fmt.Errorf("unknown outcome %q", input.Outcome)
	}

	tone := ToneNeutral
	switch input.Outcome {
	case models.OutcomeExact:
		tone = ToneCelebration
	case models.OutcomeOffByOne, models.OutcomeClose:
		tone = ToneEncouraging
	}

	return &GetOutcomeMessageOutput{
		Title:   outcomeTitles[input.Outcome],
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetInvalidPredictionMessage returns the notice shown when a roll is refused
func (s *service) GetInvalidPredictionMessage(ctx context.Context, input *GetInvalidPredictionMessageInput) (*GetInvalidPredictionMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetInvalidPredictionMessageOutput{
		Title:   "Invalid prediction",
		Message: fmt.Sprintf("Please enter a prediction between %d and %d", input.MinSum, input.MaxSum),
	}, nil
}

// GetHintMessage returns the probability tip once the player has enough games behind them
func (s *service) GetHintMessage(ctx context.Context, input *GetHintMessageInput) (*GetHintMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if !input.Stats.ShowHint() {
		return &GetHintMessageOutput{Show: false}, nil
	}

	message := fmt.Sprintf("💡 Tip: With %d dice, sums near the middle are more likely than extreme values!", input.DiceCount)

	// A single die is uniform, so there is no "most likely" sum worth naming
	if input.DiceCount > 1 {
		sums, p := models.MostLikelySums(input.DiceCount)
		if len(sums) > 0 {
			labels := make([]string, len(sums))
			for i, sum := range sums {
				labels[i] = fmt.Sprintf("%d", sum)
			}
			chance := fmt.Sprintf("%.1f%%", p*100)
			if len(sums) > 1 {
				chance += " each"
			}
			message += fmt.Sprintf(" The most likely total is %s (%s).", strings.Join(labels, " or "), chance)
		}
	}

	return &GetHintMessageOutput{
		Show:    true,
		Message: message,
	}, nil
}
