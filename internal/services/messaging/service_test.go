package messaging

import (
	"context"
	"testing"

	"github.com/KirkDiggler/diceduel/internal/models"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service *service
	classic *service
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	svc, err := New(&Config{Seed: 99})
	s.Require().NoError(err)
	s.service = svc

	classic, err := New(&Config{Classic: true})
	s.Require().NoError(err)
	s.classic = classic
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestNewRequiresConfig() {
	_, err := New(nil)
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestClassicOutcomeMessages() {
	expected := map[models.Outcome]string{
		models.OutcomeExact:    "🎉 Perfect! You guessed it!",
		models.OutcomeOffByOne: "🔥 So close! Try again!",
		models.OutcomeClose:    "👍 Close! You're getting better!",
		models.OutcomeFar:      "🎲 Try again! Keep practicing!",
	}

	for outcome, message := range expected {
		output, err := s.classic.GetOutcomeMessage(s.ctx, &GetOutcomeMessageInput{Outcome: outcome})
		s.Require().NoError(err)
		s.Equal(message, output.Message)
		s.NotEmpty(output.Title)
	}
}

func (s *MessagingServiceTestSuite) TestOutcomeMessageComesFromCandidates() {
	for outcome, candidates := range outcomeMessages {
		for i := 0; i < 20; i++ {
			output, err := s.service.GetOutcomeMessage(s.ctx, &GetOutcomeMessageInput{Outcome: outcome})
			s.Require().NoError(err)
			s.Contains(candidates, output.Message)
		}
	}
}

func (s *MessagingServiceTestSuite) TestOutcomeTone() {
	tests := map[models.Outcome]MessageTone{
		models.OutcomeExact:    ToneCelebration,
		models.OutcomeOffByOne: ToneEncouraging,
		models.OutcomeClose:    ToneEncouraging,
		models.OutcomeFar:      ToneNeutral,
	}

	for outcome, tone := range tests {
		output, err := s.service.GetOutcomeMessage(s.ctx, &GetOutcomeMessageInput{Outcome: outcome})
		s.Require().NoError(err)
		s.Equal(tone, output.Tone, "outcome %s", outcome)
	}
}

func (s *MessagingServiceTestSuite) TestUnknownOutcome() {
	_, err := s.service.GetOutcomeMessage(s.ctx, &GetOutcomeMessageInput{Outcome: "jackpot"})
	s.Error(err)

	_, err = s.service.GetOutcomeMessage(s.ctx, nil)
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestInvalidPredictionMessage() {
	output, err := s.service.GetInvalidPredictionMessage(s.ctx, &GetInvalidPredictionMessageInput{
		MinSum: 2,
		MaxSum: 12,
	})
	s.Require().NoError(err)
	s.Equal("Please enter a prediction between 2 and 12", output.Message)
}

func (s *MessagingServiceTestSuite) TestHintHiddenBeforeThreshold() {
	for _, stats := range []*models.Stats{nil, {}, {GamesPlayed: 2, Wins: 1}} {
		output, err := s.service.GetHintMessage(s.ctx, &GetHintMessageInput{DiceCount: 2, Stats: stats})
		s.Require().NoError(err)
		s.False(output.Show)
		s.Empty(output.Message)
	}
}

func (s *MessagingServiceTestSuite) TestHintShownAtThreshold() {
	output, err := s.service.GetHintMessage(s.ctx, &GetHintMessageInput{
		DiceCount: 1,
		Stats:     &models.Stats{GamesPlayed: 3},
	})
	s.Require().NoError(err)
	s.True(output.Show)
	s.Equal("💡 Tip: With 1 dice, sums near the middle are more likely than extreme values!", output.Message)
}

func (s *MessagingServiceTestSuite) TestHintNamesMostLikelySums() {
	output, err := s.service.GetHintMessage(s.ctx, &GetHintMessageInput{
		DiceCount: 2,
		Stats:     &models.Stats{GamesPlayed: 5},
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "most likely total is 7 (16.7%)")

	output, err = s.service.GetHintMessage(s.ctx, &GetHintMessageInput{
		DiceCount: 3,
		Stats:     &models.Stats{GamesPlayed: 5},
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "10 or 11 (12.5% each)")
}
