package arrakeener

import (
	"math"
	"math/rand/v2"
	"sync"
)

// Rand is the source of randomness for initial counters and operation deltas.
// A source shared between entities must be safe for concurrent use; a bare
// *rand.Rand is not.
type Rand interface {
	Int64N(n int64) int64
}

// globalRand draws from the process-wide math/rand/v2 generator, which is
// safe for concurrent use
type globalRand struct{}

func (globalRand) Int64N(n int64) int64 {
	return rand.Int64N(n)
}

// lockedRand serializes draws so one seeded source can be shared by an
// entity, its clones and any goroutines driving them
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) Int64N(n int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Int64N(n)
}

// NewSeededRand returns a deterministic source for the given seed. The source
// is safe for concurrent use.
func NewSeededRand(seed uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// randRange returns a uniformly distributed integer in [lower, upper]
func randRange(r Rand, lower, upper int64) int64 {
	if upper <= lower {
		return lower
	}
	return lower + r.Int64N(upper-lower+1)
}

// safeAdd adds a non-negative b to a, reporting false on overflow
func safeAdd(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}

// safeMultiply multiplies two positive values, reporting false on overflow
func safeMultiply(a, b int64) (int64, bool) {
	if a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}
