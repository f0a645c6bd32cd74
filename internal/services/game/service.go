package game

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/diceduel/internal/common/clock"
	"github.com/KirkDiggler/diceduel/internal/common/uuid"
	"github.com/KirkDiggler/diceduel/internal/dice"
	"github.com/KirkDiggler/diceduel/internal/models"
	"github.com/KirkDiggler/diceduel/internal/services/messaging"
	statsStore "github.com/KirkDiggler/diceduel/internal/services/stats"
)

// service implements the Service interface
type service struct {
	rollDelay      time.Duration
	resultListener ResultListener

	diceRoller       dice.Roller
	clock            clock.Clock
	uuidGenerator    uuid.UUID
	statsStore       statsStore.Store
	messagingService messaging.Service
	logger           *zap.Logger

	mu       sync.Mutex
	state    models.GameState
	round    models.RoundConfig
	lastRoll *models.RollResult
	message  string
	stats    models.Stats
	closed   bool

	// prediction is the validated value the pending roll is scored against
	prediction int
	// rollSeq identifies the pending roll so a stale timer cannot resolve a later one
	rollSeq     uint64
	pendingRoll clock.Timer
}

// New creates a new game session and loads the persisted stats
func New(ctx context.Context, cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	if cfg.StatsStore == nil {
		return nil, ErrNilStatsStore
	}

	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	rollDelay := cfg.RollDelay
	if rollDelay <= 0 {
		rollDelay = DefaultRollDelay
	}

	diceCount := cfg.DefaultDiceCount
	if diceCount == 0 {
		diceCount = models.MinDiceCount
	}
	if !models.ValidDiceCount(diceCount) {
		return nil, ErrInvalidDiceCount
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &service{
		rollDelay:        rollDelay,
		resultListener:   cfg.ResultListener,
		diceRoller:       cfg.DiceRoller,
		clock:            cfg.Clock,
		uuidGenerator:    cfg.UUIDGenerator,
		statsStore:       cfg.StatsStore,
		messagingService: cfg.MessagingService,
		logger:           logger,
		state:            models.GameStateSetup,
		round:            models.RoundConfig{DiceCount: diceCount},
	}

	if stats := cfg.StatsStore.Load(ctx); stats != nil && stats.Valid() {
		s.stats = *stats
	}

	return s, nil
}

// Configure selects how many dice the next roll uses. The current prediction is kept.
func (s *service) Configure(ctx context.Context, input *ConfigureInput) (*ConfigureOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSetup(); err != nil {
		return nil, err
	}

	if !models.ValidDiceCount(input.DiceCount) {
		return nil, ErrInvalidDiceCount
	}

	s.round.DiceCount = input.DiceCount

	return &ConfigureOutput{
		DiceCount: s.round.DiceCount,
		MinSum:    s.round.MinSum(),
		MaxSum:    s.round.MaxSum(),
	}, nil
}

// SetPrediction stores the prediction exactly as entered
func (s *service) SetPrediction(ctx context.Context, input *SetPredictionInput) (*SetPredictionOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkSetup(); err != nil {
		return nil, err
	}

	s.round.Prediction = input.Prediction

	return &SetPredictionOutput{
		Prediction: s.round.Prediction,
	}, nil
}

// RollDice validates the prediction and schedules the resolution
func (s *service) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSessionClosed
	}

	switch {
	case s.state.IsRolling():
		return nil, ErrRollInProgress
	case !s.state.IsSetup():
		return nil, ErrInvalidGameState
	}

	minSum, maxSum := s.round.MinSum(), s.round.MaxSum()
	prediction, ok := parsePrediction(s.round.Prediction)
	if !ok || prediction < minSum || prediction > maxSum {
		return nil, s.predictionError(ctx, minSum, maxSum)
	}

	s.prediction = prediction
	s.state = models.GameStateRolling
	s.rollSeq++

	seq := s.rollSeq
	s.pendingRoll = s.clock.AfterFunc(s.rollDelay, func() {
		s.resolveScheduled(seq)
	})

	s.logger.Debug("dice rolling",
		zap.Int("dice_count", s.round.DiceCount),
		zap.Int("prediction", prediction),
		zap.Duration("delay", s.rollDelay),
	)

	return &RollDiceOutput{
		DiceCount:  s.round.DiceCount,
		Prediction: prediction,
		Delay:      s.rollDelay,
		State:      s.state,
	}, nil
}

// Resolve finishes the pending roll immediately
func (s *service) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	if s.pendingRoll != nil {
		s.pendingRoll.Stop()
		s.pendingRoll = nil
	}
	output, err := s.resolveLocked(ctx)
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}

	s.notify(output)
	return output, nil
}

// resolveScheduled is the timer callback for the roll identified by seq
func (s *service) resolveScheduled(seq uint64) {
	s.mu.Lock()
	if seq != s.rollSeq || s.closed {
		s.mu.Unlock()
		s.logger.Debug("ignoring stale roll timer", zap.Uint64("seq", seq))
		return
	}
	s.pendingRoll = nil
	output, err := s.resolveLocked(context.Background())
	s.mu.Unlock()

	if err != nil {
		s.logger.Debug("scheduled resolve skipped", zap.Error(err))
		return
	}

	s.notify(output)
}

func (s *service) resolveLocked(ctx context.Context) (*ResolveOutput, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}

	if !s.state.IsRolling() {
		return nil, ErrInvalidGameState
	}

	values := dice.RollMany(s.diceRoller, s.round.DiceCount, models.DiceSides)
	sum := models.SumOf(values)
	outcome := models.Score(s.prediction, sum)

	result := &models.RollResult{
		ID:         s.uuidGenerator.NewUUID(),
		Values:     values,
		Sum:        sum,
		Prediction: s.prediction,
		Outcome:    outcome,
		RolledAt:   s.clock.Now(),
	}

	s.stats.Record(outcome)

	message := string(outcome)
	msgOutput, err := s.messagingService.GetOutcomeMessage(ctx, &messaging.GetOutcomeMessageInput{
		Outcome: outcome,
	})
	if err != nil {
		s.logger.Warn("failed to get outcome message", zap.String("outcome", string(outcome)), zap.Error(err))
	} else {
		message = msgOutput.Message
	}

	s.lastRoll = result
	s.message = message
	s.state = models.GameStateResult

	if s.stats.GamesPlayed > 0 {
		stats := s.stats
		s.statsStore.Save(ctx, &stats)
	}

	s.logger.Info("round resolved",
		zap.String("roll_id", result.ID),
		zap.Ints("dice", result.Values),
		zap.Int("sum", result.Sum),
		zap.Int("prediction", result.Prediction),
		zap.String("outcome", string(result.Outcome)),
		zap.Int("games_played", s.stats.GamesPlayed),
		zap.Int("wins", s.stats.Wins),
	)

	return &ResolveOutput{
		Result:  copyResult(result),
		Message: message,
		Stats:   s.stats,
		WinRate: s.stats.WinRate(),
	}, nil
}

func (s *service) notify(output *ResolveOutput) {
	if s.resultListener != nil {
		s.resultListener(output)
	}
}

// Reset clears the prediction and result; the dice count carries over
func (s *service) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrSessionClosed
	}

	if !s.state.IsResult() {
		return nil, ErrInvalidGameState
	}

	s.state = models.GameStateSetup
	s.round.Prediction = ""
	s.prediction = 0
	s.lastRoll = nil
	s.message = ""

	return &ResetOutput{
		DiceCount: s.round.DiceCount,
		MinSum:    s.round.MinSum(),
		MaxSum:    s.round.MaxSum(),
	}, nil
}

// GetState returns a snapshot of the session
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	s.mu.Lock()
	output := &GetStateOutput{
		State:      s.state,
		DiceCount:  s.round.DiceCount,
		Prediction: s.round.Prediction,
		MinSum:     s.round.MinSum(),
		MaxSum:     s.round.MaxSum(),
		LastRoll:   copyResult(s.lastRoll),
		Message:    s.message,
		Stats:      s.stats,
		WinRate:    s.stats.WinRate(),
	}
	s.mu.Unlock()

	hint, err := s.messagingService.GetHintMessage(ctx, &messaging.GetHintMessageInput{
		DiceCount: output.DiceCount,
		Stats:     &output.Stats,
	})
	if err != nil {
		s.logger.Warn("failed to get hint message", zap.Error(err))
	} else if hint.Show {
		output.Hint = hint.Message
	}

	return output, nil
}

// Close cancels a pending roll and waits for the stats to be flushed
func (s *service) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	if s.pendingRoll != nil {
		s.pendingRoll.Stop()
		s.pendingRoll = nil
	}
	s.mu.Unlock()

	return s.statsStore.Close(ctx)
}

func (s *service) checkSetup() error {
	if s.closed {
		return ErrSessionClosed
	}
	if !s.state.IsSetup() {
		return ErrInvalidGameState
	}
	return nil
}

func (s *service) predictionError(ctx context.Context, minSum, maxSum int) error {
	predErr := &PredictionError{
		Prediction: s.round.Prediction,
		MinSum:     minSum,
		MaxSum:     maxSum,
	}

	msgOutput, err := s.messagingService.GetInvalidPredictionMessage(ctx, &messaging.GetInvalidPredictionMessageInput{
		MinSum: minSum,
		MaxSum: maxSum,
	})
	if err != nil {
		s.logger.Warn("failed to get invalid prediction message", zap.Error(err))
		predErr.Message = predErr.Error()
	} else {
		predErr.Message = msgOutput.Message
	}

	return predErr
}

// parsePrediction accepts a whole number, ignoring surrounding whitespace
func parsePrediction(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}

func copyResult(r *models.RollResult) *models.RollResult {
	if r == nil {
		return nil
	}
	c := *r
	c.Values = append([]int(nil), r.Values...)
	return &c
}
