package models

import (
	"time"
)

const (
	// DiceSides is the number of faces on every die in the game
	DiceSides = 6

	// MinDiceCount is the fewest dice a round can use
	MinDiceCount = 1

	// MaxDiceCount is the most dice a round can use
	MaxDiceCount = 3
)

// RoundConfig holds the player's choices for the current round
type RoundConfig struct {
	// DiceCount is how many dice will be rolled
	DiceCount int

	// Prediction is the raw prediction as entered; empty means unset.
	// It is only parsed and range-checked when the roll is requested.
	Prediction string
}

// MinSum returns the smallest sum the configured dice can produce
func (c *RoundConfig) MinSum() int {
	return MinSum(c.DiceCount)
}

// MaxSum returns the largest sum the configured dice can produce
func (c *RoundConfig) MaxSum() int {
	return MaxSum(c.DiceCount)
}

// RollResult is the immutable outcome of a single resolved round
type RollResult struct {
	// ID is the unique identifier for the roll
	ID string

	// Values are the individual die faces in roll order
	Values []int

	// Sum is the total of Values
	Sum int

	// Prediction is the validated prediction the roll was scored against
	Prediction int

	// Outcome is the classification of |Prediction - Sum|
	Outcome Outcome

	// RolledAt is when the roll was resolved
	RolledAt time.Time
}

// IsWin returns true if the prediction matched the sum exactly
func (r *RollResult) IsWin() bool {
	return r != nil && r.Outcome.IsWin()
}

// MinSum returns the smallest possible sum for diceCount dice
func MinSum(diceCount int) int {
	return diceCount
}

// MaxSum returns the largest possible sum for diceCount dice
func MaxSum(diceCount int) int {
	return diceCount * DiceSides
}

// ValidDiceCount reports whether n is a selectable number of dice
func ValidDiceCount(n int) bool {
	return n >= MinDiceCount && n <= MaxDiceCount
}

// SumOf returns the total of the given die values
func SumOf(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

// MostLikelySums returns the sums with the highest probability for diceCount
// six-sided dice, in ascending order, along with that probability.
func MostLikelySums(diceCount int) ([]int, float64) {
	if diceCount < 1 {
		return nil, 0
	}

	// ways[s] counts the face combinations that add up to s
	ways := []int{1}
	for d := 0; d < diceCount; d++ {
		next := make([]int, len(ways)+DiceSides)
		for s, count := range ways {
			if count == 0 {
				continue
			}
			for face := 1; face <= DiceSides; face++ {
				next[s+face] += count
			}
		}
		ways = next
	}

	best := 0
	total := 0
	for _, count := range ways {
		total += count
		if count > best {
			best = count
		}
	}

	var sums []int
	for s, count := range ways {
		if count == best {
			sums = append(sums, s)
		}
	}

	return sums, float64(best) / float64(total)
}
