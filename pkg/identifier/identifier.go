package identifier

import (
	"math/rand/v2"
	"strconv"
	"sync"
	"time"
)

// Generator produces opaque identifiers for tasks. Each value combines a
// time-derived component with a random component, both base-36 encoded.
// Uniqueness is probabilistic: there is no registry and no collision check.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	rand *rand.Rand
}

// New creates a Generator backed by the system clock and a randomly seeded
// source.
func New() *Generator {
	seed := uint64(time.Now().UnixNano())
	return &Generator{
		now:  time.Now,
		rand: rand.New(rand.NewPCG(seed, rand.Uint64())),
	}
}

// NewSeeded creates a Generator with a fixed seed and clock, for
// reproducible tests.
func NewSeeded(seed uint64, now func() time.Time) *Generator {
	return &Generator{
		now:  now,
		rand: rand.New(rand.NewPCG(seed, seed)),
	}
}

// Generate returns a new identifier, e.g. "sx2lh9q8k3a0-1f9ab2c3d4e5f".
func (g *Generator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ts := strconv.FormatInt(g.now().UnixNano(), 36)
	rnd := strconv.FormatUint(g.rand.Uint64(), 36)
	return ts + "-" + rnd
}
