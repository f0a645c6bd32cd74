package stats

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/diceduel/internal/models"
	statsRepo "github.com/KirkDiggler/diceduel/internal/repositories/stats"
)

const defaultWriteTimeout = 5 * time.Second

// Config holds configuration for the stats store
type Config struct {
	// Repository is the backend the stats are read from and written to
	Repository statsRepo.Repository

	// Logger receives persistence failures; defaults to a no-op logger
	Logger *zap.Logger

	// WriteTimeout bounds each background write
	WriteTimeout time.Duration
}

type saveRequest struct {
	ctx   context.Context
	stats models.Stats
}

// store implements Store with a single background writer. Only the most
// recent unsaved snapshot is kept, so writes land in the order they were made.
type store struct {
	repo         statsRepo.Repository
	logger       *zap.Logger
	writeTimeout time.Duration

	mu      sync.Mutex
	closed  bool
	pending chan saveRequest
	done    chan struct{}
}

// New creates the stats store and starts its writer
func New(cfg *Config) (*store, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repository == nil {
		return nil, errors.New("stats repository cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}

	s := &store{
		repo:         cfg.Repository,
		logger:       logger,
		writeTimeout: writeTimeout,
		pending:      make(chan saveRequest, 1),
		done:         make(chan struct{}),
	}

	go s.writeLoop()

	return s, nil
}

// Load reads the stats, degrading to zero stats on any failure
func (s *store) Load(ctx context.Context) *models.Stats {
	stats, err := s.repo.GetStats(ctx, &statsRepo.GetStatsInput{})
	if err != nil {
		if errors.Is(err, statsRepo.ErrStatsNotFound) {
			s.logger.Debug("no stored stats, starting fresh")
		} else {
			s.logger.Warn("failed to load stats, starting fresh", zap.Error(err))
		}
		return &models.Stats{}
	}

	s.logger.Debug("loaded stats",
		zap.Int("games_played", stats.GamesPlayed),
		zap.Int("wins", stats.Wins),
	)
	return stats
}

// Save hands a copy of stats to the writer. An older snapshot still waiting
// to be written is replaced.
func (s *store) Save(ctx context.Context, stats *models.Stats) {
	if stats == nil {
		return
	}

	req := saveRequest{
		// the write outlives the caller's request
		ctx:   context.WithoutCancel(ctx),
		stats: *stats,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		s.logger.Warn("stats store closed, dropping save",
			zap.Int("games_played", stats.GamesPlayed),
			zap.Int("wins", stats.Wins),
		)
		return
	}

	// The writer is the only other reader, so after draining the send cannot block
	select {
	case <-s.pending:
	default:
	}
	s.pending <- req
}

// Close stops accepting saves and waits for the last one to be written
func (s *store) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.pending)
	}
	s.mu.Unlock()

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *store) writeLoop() {
	defer close(s.done)

	for req := range s.pending {
		s.write(req)
	}
}

func (s *store) write(req saveRequest) {
	ctx, cancel := context.WithTimeout(req.ctx, s.writeTimeout)
	defer cancel()

	stats := req.stats
	err := s.repo.SaveStats(ctx, &statsRepo.SaveStatsInput{Stats: &stats})
	if err != nil {
		s.logger.Warn("failed to save stats",
			zap.Int("games_played", stats.GamesPlayed),
			zap.Int("wins", stats.Wins),
			zap.Error(err),
		)
		return
	}

	s.logger.Debug("saved stats",
		zap.Int("games_played", stats.GamesPlayed),
		zap.Int("wins", stats.Wins),
	)
}
