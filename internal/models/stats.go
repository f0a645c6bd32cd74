package models

import "math"

// HintThreshold is the number of games after which the probability hint is shown
const HintThreshold = 3

// Stats are the cumulative results across every round ever played
type Stats struct {
	// GamesPlayed is the number of resolved rounds
	GamesPlayed int `json:"gamesPlayed"`

	// Wins is the number of rounds predicted exactly
	Wins int `json:"wins"`
}

// Record applies the result of one resolved round
func (s *Stats) Record(outcome Outcome) {
	s.GamesPlayed++
	if outcome.IsWin() {
		s.Wins++
	}
}

// WinRate returns the whole-number win percentage, rounding halves up
func (s *Stats) WinRate() int {
	if s == nil || s.GamesPlayed <= 0 {
		return 0
	}
	return int(math.Floor(100*float64(s.Wins)/float64(s.GamesPlayed) + 0.5))
}

// ShowHint reports whether enough games have been played to show the hint
func (s *Stats) ShowHint() bool {
	return s != nil && s.GamesPlayed >= HintThreshold
}

// Valid reports whether the counts are internally consistent
func (s *Stats) Valid() bool {
	return s.GamesPlayed >= 0 && s.Wins >= 0 && s.Wins <= s.GamesPlayed
}
