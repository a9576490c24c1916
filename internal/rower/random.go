package rower

import (
	"math/rand"
	"time"
)

// RandomSource supplies the per-tick noise. Implementations need not be
// safe for concurrent use; the Simulator serializes calls.
type RandomSource interface {
	// Float64Range returns a uniform value in [lo, hi].
	Float64Range(lo, hi float64) float64
	// IntRange returns a uniform integer in [lo, hi], both inclusive.
	IntRange(lo, hi int) int
}

type mathRandSource struct {
	rand *rand.Rand
}

// NewRandomSource returns a math/rand backed source. The same seed always
// yields the same sequence of draws.
func NewRandomSource(seed int64) RandomSource {
	return &mathRandSource{rand: rand.New(rand.NewSource(seed))}
}

func newTimeSeededSource() RandomSource {
	return NewRandomSource(time.Now().UnixNano())
}

func (s *mathRandSource) Float64Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rand.Float64()*(hi-lo)
}

func (s *mathRandSource) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rand.Intn(hi-lo+1)
}
