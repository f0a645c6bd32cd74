package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/KirkDiggler/diceduel/internal/models"
	statsRepo "github.com/KirkDiggler/diceduel/internal/repositories/stats"
	repoMocks "github.com/KirkDiggler/diceduel/internal/repositories/stats/mocks"
)

type StoreTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockRepo *repoMocks.MockRepository
	logs     *observer.ObservedLogs
	store    *store
	ctx      context.Context
}

func (s *StoreTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.ctx = context.Background()

	core, logs := observer.New(zap.DebugLevel)
	s.logs = logs

	st, err := New(&Config{
		Repository: s.mockRepo,
		Logger:     zap.New(core),
	})
	s.Require().NoError(err)
	s.store = st
}

func (s *StoreTestSuite) TearDownTest() {
	s.Require().NoError(s.store.Close(s.ctx))
	s.mockCtrl.Finish()
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) TestNewValidation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)
}

func (s *StoreTestSuite) TestLoadReturnsStoredStats() {
	s.mockRepo.EXPECT().
		GetStats(gomock.Any(), &statsRepo.GetStatsInput{}).
		Return(&models.Stats{GamesPlayed: 10, Wins: 4}, nil)

	s.Equal(&models.Stats{GamesPlayed: 10, Wins: 4}, s.store.Load(s.ctx))
}

func (s *StoreTestSuite) TestLoadMissingDefaultsToZero() {
	s.mockRepo.EXPECT().
		GetStats(gomock.Any(), gomock.Any()).
		Return(nil, statsRepo.ErrStatsNotFound)

	s.Equal(&models.Stats{}, s.store.Load(s.ctx))
	s.Zero(s.logs.FilterLevelExact(zap.WarnLevel).Len())
}

func (s *StoreTestSuite) TestLoadMalformedDefaultsToZero() {
	s.mockRepo.EXPECT().
		GetStats(gomock.Any(), gomock.Any()).
		Return(nil, statsRepo.ErrMalformedStats)

	s.Equal(&models.Stats{}, s.store.Load(s.ctx))
	s.Equal(1, s.logs.FilterMessage("failed to load stats, starting fresh").Len())
}

func (s *StoreTestSuite) TestLoadUnavailableDefaultsToZero() {
	s.mockRepo.EXPECT().
		GetStats(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	s.Equal(&models.Stats{}, s.store.Load(s.ctx))
}

func (s *StoreTestSuite) TestSaveWritesSnapshot() {
	stats := &models.Stats{GamesPlayed: 1, Wins: 1}

	s.mockRepo.EXPECT().
		SaveStats(gomock.Any(), &statsRepo.SaveStatsInput{Stats: &models.Stats{GamesPlayed: 1, Wins: 1}}).
		Return(nil)

	s.store.Save(s.ctx, stats)

	// later mutation must not leak into the queued write
	stats.GamesPlayed = 99

	s.Require().NoError(s.store.Close(s.ctx))
}

func (s *StoreTestSuite) TestSaveFailureIsSwallowed() {
	s.mockRepo.EXPECT().
		SaveStats(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	s.store.Save(s.ctx, &models.Stats{GamesPlayed: 2})
	s.Require().NoError(s.store.Close(s.ctx))

	s.Equal(1, s.logs.FilterMessage("failed to save stats").Len())
}

func (s *StoreTestSuite) TestSaveDoesNotBlockAndLatestWins() {
	started := make(chan struct{})
	release := make(chan struct{})

	gomock.InOrder(
		s.mockRepo.EXPECT().
			SaveStats(gomock.Any(), &statsRepo.SaveStatsInput{Stats: &models.Stats{GamesPlayed: 1}}).
			DoAndReturn(func(ctx context.Context, input *statsRepo.SaveStatsInput) error {
				close(started)
				<-release
				return nil
			}),
		s.mockRepo.EXPECT().
			SaveStats(gomock.Any(), &statsRepo.SaveStatsInput{Stats: &models.Stats{GamesPlayed: 3, Wins: 1}}).
			Return(nil),
	)

	s.store.Save(s.ctx, &models.Stats{GamesPlayed: 1})
	<-started

	// the writer is stuck; these must return immediately
	s.store.Save(s.ctx, &models.Stats{GamesPlayed: 2})
	s.store.Save(s.ctx, &models.Stats{GamesPlayed: 3, Wins: 1})

	close(release)
	s.Require().NoError(s.store.Close(s.ctx))
}

func (s *StoreTestSuite) TestSaveWithCancelledContextStillWrites() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.mockRepo.EXPECT().
		SaveStats(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *statsRepo.SaveStatsInput) error {
			return ctx.Err()
		})

	s.store.Save(ctx, &models.Stats{GamesPlayed: 1})
	s.Require().NoError(s.store.Close(s.ctx))
	s.Zero(s.logs.FilterMessage("failed to save stats").Len())
}

func (s *StoreTestSuite) TestSaveAfterCloseIsDropped() {
	s.Require().NoError(s.store.Close(s.ctx))

	s.store.Save(s.ctx, &models.Stats{GamesPlayed: 1})
	s.Equal(1, s.logs.FilterMessage("stats store closed, dropping save").Len())
}

func (s *StoreTestSuite) TestCloseHonoursContext() {
	release := make(chan struct{})
	defer close(release)

	s.mockRepo.EXPECT().
		SaveStats(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input *statsRepo.SaveStatsInput) error {
			<-release
			return nil
		})

	s.store.Save(s.ctx, &models.Stats{GamesPlayed: 1})

	ctx, cancel := context.WithTimeout(s.ctx, 20*time.Millisecond)
	defer cancel()
	s.ErrorIs(s.store.Close(ctx), context.DeadlineExceeded)
}

func (s *StoreTestSuite) TestSaveNilIsIgnored() {
	s.store.Save(s.ctx, nil)
}

// Round trip through a real backend: save(load()) then load() yields the same stats.
func TestStore_RoundTripWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	repo, err := statsRepo.NewRedis(&statsRepo.Config{RedisClient: client})
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	st, err := New(&Config{Repository: repo})
	if err != nil {
		t.Fatal(err)
	}

	empty := st.Load(ctx)
	if *empty != (models.Stats{}) {
		t.Fatalf("expected zero stats from empty storage, got %+v", empty)
	}

	st.Save(ctx, &models.Stats{GamesPlayed: 6, Wins: 2})
	if err := st.Close(ctx); err != nil {
		t.Fatal(err)
	}

	second, err := New(&Config{Repository: repo})
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close(ctx)

	loaded := second.Load(ctx)
	second.Save(ctx, loaded)
	if err := second.Close(ctx); err != nil {
		t.Fatal(err)
	}

	if got := st.Load(ctx); *got != *loaded {
		t.Fatalf("round trip mismatch: %+v != %+v", got, loaded)
	}
}
