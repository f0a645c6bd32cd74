package dice

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/diceduel/internal/dice Roller

// Roller rolls a single die
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll(sides int) int
}

// RandomRoller provides dice rolling functionality backed by math/rand
type RandomRoller struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &RandomRoller{
		random: random,
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = 6 // Default to 6-sided die
	}

	// rand.Rand is not safe for concurrent use
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.random.Intn(sides) + 1
}

// RollMany rolls count independent dice and returns the faces in roll order
func RollMany(r Roller, count, sides int) []int {
	if count < 1 {
		return []int{}
	}

	values := make([]int, count)
	for i := range values {
		values[i] = r.Roll(sides)
	}
	return values
}
