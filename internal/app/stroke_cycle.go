package app

import (
	"math"

	"rowsim.klederson.com/internal/rower"
)

// StrokeCycle tracks the handle position for the stroke gauge. The phase
// runs at the published stroke rate and snaps back to the catch whenever
// the simulator credits a stroke.
type StrokeCycle struct {
	Phase   float64 // [0, 1)
	strokes int
}

// Advance moves the phase forward by delta seconds at spm strokes per minute.
func (c *StrokeCycle) Advance(delta, spm float64) {
	if spm <= 0 || delta <= 0 {
		return
	}
	c.Phase = math.Mod(c.Phase+delta*spm/60.0, 1.0)
}

// Observe re-syncs the phase to the simulator's stroke counter.
func (c *StrokeCycle) Observe(s rower.Snapshot) {
	if s.StrokeCount != c.strokes {
		c.strokes = s.StrokeCount
		c.Phase = 0
	}
}
