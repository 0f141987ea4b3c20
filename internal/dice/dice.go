package dice

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultSides is used when a die is requested with fewer than one side
const DefaultSides = 6

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/duels/internal/dice Roller

// Roller provides dice rolling functionality
type Roller interface {
	// Roll returns a uniform random integer in [1, sides]
	Roll(sides int) int
}

// Config for dice roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// random is a Roller backed by math/rand. rand.Rand is not safe for
// concurrent use so every roll takes the lock.
type random struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new dice roller
func New(cfg *Config) Roller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &random{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *random) Roll(sides int) int {
	if sides < 1 {
		sides = DefaultSides
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(sides) + 1
}

// RollPool rolls one die per entry in sizes. results[i] belongs to sizes[i].
func RollPool(roller Roller, sizes []int) (results []int, total int) {
	results = make([]int, len(sizes))
	for i, sides := range sizes {
		results[i] = roller.Roll(sides)
		total += results[i]
	}
	return results, total
}

// Sum adds up a pool of results
func Sum(results []int) int {
	total := 0
	for _, v := range results {
		total += v
	}
	return total
}

// IsMaximal reports whether value is the highest face of the die
func IsMaximal(value, sides int) bool {
	if sides < 1 {
		sides = DefaultSides
	}
	return value == sides
}

// InRange reports whether value is a face the die could have produced
func InRange(value, sides int) bool {
	if sides < 1 {
		sides = DefaultSides
	}
	return value >= 1 && value <= sides
}
