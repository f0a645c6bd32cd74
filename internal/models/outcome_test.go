package models_test

import (
	"testing"

	"github.com/KirkDiggler/diceduel/internal/models"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestClassifyOutcome(t *testing.T) {
	tests := []struct {
		diff     int
		expected models.Outcome
	}{
		{diff: 0, expected: models.OutcomeExact},
		{diff: 1, expected: models.OutcomeOffByOne},
		{diff: -1, expected: models.OutcomeOffByOne},
		{diff: 2, expected: models.OutcomeClose},
		{diff: -2, expected: models.OutcomeClose},
		{diff: 3, expected: models.OutcomeFar},
		{diff: 17, expected: models.OutcomeFar},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, models.ClassifyOutcome(tt.diff), "diff %d", tt.diff)
	}
}

// The partition over |diff| is exhaustive and non-overlapping.
func TestClassifyOutcome_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		diff := rapid.IntRange(-1000, 1000).Draw(rt, "diff")
		abs := diff
		if abs < 0 {
			abs = -abs
		}

		got := models.ClassifyOutcome(diff)
		switch {
		case abs == 0:
			assert.Equal(rt, models.OutcomeExact, got)
		case abs == 1:
			assert.Equal(rt, models.OutcomeOffByOne, got)
		case abs == 2:
			assert.Equal(rt, models.OutcomeClose, got)
		default:
			assert.Equal(rt, models.OutcomeFar, got)
		}
		assert.Equal(rt, got, models.ClassifyOutcome(-diff), "classification must be symmetric")
		assert.Equal(rt, abs == 0, got.IsWin())
	})
}

func TestScore(t *testing.T) {
	assert.Equal(t, models.OutcomeExact, models.Score(7, 7))
	assert.Equal(t, models.OutcomeFar, models.Score(10, 6))
	assert.Equal(t, models.OutcomeOffByOne, models.Score(3, 4))
}
