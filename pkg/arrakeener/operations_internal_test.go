package arrakeener

import (
	"errors"
	"math"
	"testing"
)

type topRand struct{}

func (topRand) Int64N(n int64) int64 { return n - 1 }

// TestSafeArithmetic tests the overflow guards
func TestSafeArithmetic(t *testing.T) {
	if _, ok := safeAdd(math.MaxInt64, 1); ok {
		t.Error("expected MaxInt64+1 to overflow")
	}
	if sum, ok := safeAdd(math.MaxInt64-1, 1); !ok || sum != math.MaxInt64 {
		t.Errorf("expected MaxInt64, got %d (ok=%v)", sum, ok)
	}
	if sum, ok := safeAdd(5, 0); !ok || sum != 5 {
		t.Errorf("expected 5, got %d (ok=%v)", sum, ok)
	}
	if _, ok := safeMultiply(math.MaxInt64/2+1, 2); ok {
		t.Error("expected product to overflow")
	}
	if prod, ok := safeMultiply(math.MaxInt64/2, 2); !ok || prod != math.MaxInt64-1 {
		t.Errorf("expected MaxInt64-1, got %d (ok=%v)", prod, ok)
	}
}

// TestRandRange tests the inclusive range helper
func TestRandRange(t *testing.T) {
	if got := randRange(topRand{}, 1, 100); got != 100 {
		t.Errorf("expected upper bound 100, got %d", got)
	}
	if got := randRange(topRand{}, 7, 7); got != 7 {
		t.Errorf("expected degenerate range to return 7, got %d", got)
	}
	r := NewSeededRand(1)
	for i := 0; i < 1000; i++ {
		if got := randRange(r, 200000, 400000); got < 200000 || got > 400000 {
			t.Fatalf("value %d out of range", got)
		}
	}
}

// TestGainOverflow tests overflow detection on eating and selling
func TestGainOverflow(t *testing.T) {
	t.Run("eat multiply", func(t *testing.T) {
		a := New("Leto", "Atreides", "House Atreides", "Duke", WithRand(topRand{}))
		a.spice = math.MaxInt64
		before := a.Snapshot()

		if _, err := a.EatSpice(math.MaxInt64 / 10); !errors.Is(err, ErrOverflow) {
			t.Fatalf("expected overflow, got %v", err)
		}
		if a.Snapshot() != before {
			t.Error("state changed on overflow")
		}
	})

	t.Run("eat add", func(t *testing.T) {
		a := New("Leto", "Atreides", "House Atreides", "Duke", WithRand(topRand{}))
		a.spice = 10
		a.energy = math.MaxInt64 - 50
		before := a.Snapshot()

		if _, err := a.EatSpice(1); !errors.Is(err, ErrOverflow) {
			t.Fatalf("expected overflow, got %v", err)
		}
		if a.Snapshot() != before {
			t.Error("state changed on overflow")
		}
	})

	t.Run("sell add", func(t *testing.T) {
		a := New("Leto", "Atreides", "House Atreides", "Duke", WithRand(topRand{}))
		a.spice = 10
		a.solaris = math.MaxInt64 - 1000
		before := a.Snapshot()

		if _, err := a.SellSpice(1); !errors.Is(err, ErrOverflow) {
			t.Fatalf("expected overflow, got %v", err)
		}
		if a.Snapshot() != before {
			t.Error("state changed on overflow")
		}
	})

	t.Run("sell multiply", func(t *testing.T) {
		a := New("Leto", "Atreides", "House Atreides", "Duke", WithRand(topRand{}))
		a.spice = math.MaxInt64
		before := a.Snapshot()

		if _, err := a.SellSpice(math.MaxInt64 / 1000); !errors.Is(err, ErrOverflow) {
			t.Fatalf("expected overflow, got %v", err)
		}
		if a.Snapshot() != before {
			t.Error("state changed on overflow")
		}
	})
}
