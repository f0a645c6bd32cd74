package stats

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/diceduel/internal/models"
	"github.com/stretchr/testify/suite"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	path string
	repo *sqliteRepository
	ctx  context.Context
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "diceduel.db")

	repo, err := NewSQLite(&SQLiteConfig{Path: s.path})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.repo.Close()
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) TestGetStatsNotFound() {
	_, err := s.repo.GetStats(s.ctx, &GetStatsInput{})
	s.ErrorIs(err, ErrStatsNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestSaveAndGetStats() {
	s.Require().NoError(s.repo.SaveStats(s.ctx, &SaveStatsInput{
		Stats: &models.Stats{GamesPlayed: 7, Wins: 2},
	}))
	s.Require().NoError(s.repo.SaveStats(s.ctx, &SaveStatsInput{
		Stats: &models.Stats{GamesPlayed: 8, Wins: 3},
	}))

	stats, err := s.repo.GetStats(s.ctx, &GetStatsInput{})
	s.Require().NoError(err)
	s.Equal(&models.Stats{GamesPlayed: 8, Wins: 3}, stats)
}

func (s *SQLiteRepositoryTestSuite) TestPersistsAcrossReopen() {
	s.Require().NoError(s.repo.SaveStats(s.ctx, &SaveStatsInput{
		Stats: &models.Stats{GamesPlayed: 4, Wins: 1},
	}))
	s.Require().NoError(s.repo.Close())

	reopened, err := NewSQLite(&SQLiteConfig{Path: s.path})
	s.Require().NoError(err)
	s.repo = reopened

	stats, err := reopened.GetStats(s.ctx, &GetStatsInput{})
	s.Require().NoError(err)
	s.Equal(&models.Stats{GamesPlayed: 4, Wins: 1}, stats)
}

func (s *SQLiteRepositoryTestSuite) TestGetStatsMalformed() {
	_, err := s.repo.db.ExecContext(s.ctx, `INSERT INTO kv (key, value) VALUES (?, ?)`, DefaultKey, "[]")
	s.Require().NoError(err)

	_, err = s.repo.GetStats(s.ctx, &GetStatsInput{})
	s.ErrorIs(err, ErrMalformedStats)
}

func (s *SQLiteRepositoryTestSuite) TestNewSQLiteValidation() {
	_, err := NewSQLite(nil)
	s.Error(err)

	_, err = NewSQLite(&SQLiteConfig{})
	s.Error(err)
}
