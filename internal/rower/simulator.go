package rower

import (
	"math"
	"sync"
)

type subscription struct {
	id int
	fn Subscriber
}

// Simulator fabricates FTMS-style rower telemetry. It is advanced by an
// external clock through Tick and publishes one Snapshot per running tick.
//
// Tick and Reset deliver snapshots in the order they were computed.
// Subscribers must not call Tick or Reset themselves.
type Simulator struct {
	// pubMu serializes compute and delivery in Tick and Reset. Taken before mu.
	pubMu sync.Mutex
	mu    sync.Mutex

	params Params
	rand   RandomSource

	running bool

	// accumulators
	totalTimeElapsed    float64
	timeSinceLastStroke float64
	strokeInterval      float64

	snap Snapshot

	subs   []subscription
	nextID int
}

// New creates a stopped simulator with zeroed state. A nil src selects a
// time-seeded math/rand source.
func New(params Params, src RandomSource) *Simulator {
	if src == nil {
		src = newTimeSeededSource()
	}
	return &Simulator{
		params: params,
		rand:   src,
	}
}

// Subscribe registers fn to receive snapshots. Subscribers are called in
// registration order. The returned func removes the subscription.
func (s *Simulator) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Start resumes ticking. No-op if already running.
func (s *Simulator) Start() {
	s.mu.Lock()
	s.running = true
	s.mu.Unlock()
}

// Stop freezes all state at its current values. No-op if already stopped.
func (s *Simulator) Stop() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning reports whether Tick currently advances the simulation.
func (s *Simulator) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Reset stops the simulator, zeroes the session and publishes a zero
// snapshot. Parameters are left untouched.
func (s *Simulator) Reset() {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	s.running = false
	s.totalTimeElapsed = 0
	s.timeSinceLastStroke = 0
	s.snap = Snapshot{}
	subs := s.subscribers()
	s.mu.Unlock()

	publish(subs, Snapshot{})
}

// IncreaseEffort raises stroke rate, power and heart rate and quickens the
// pace. Takes effect on the next tick.
func (s *Simulator) IncreaseEffort() {
	s.mu.Lock()
	s.params.increase()
	s.mu.Unlock()
}

// DecreaseEffort is the inverse of IncreaseEffort, bounded below by the
// Min* constants and above by MaxPace.
func (s *Simulator) DecreaseEffort() {
	s.mu.Lock()
	s.params.decrease()
	s.mu.Unlock()
}

// SetResistance sets power, pace and distance per stroke from a level in
// [0, 1], overwriting earlier effort adjustments to those values.
func (s *Simulator) SetResistance(level float64) {
	s.mu.Lock()
	s.params.applyResistance(level)
	s.mu.Unlock()
}

// Params returns the current simulation parameters.
func (s *Simulator) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

// Snapshot returns the most recently computed metrics.
func (s *Simulator) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Tick advances the simulation by delta seconds and publishes the result.
// It does nothing while stopped.
func (s *Simulator) Tick(delta float64) {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()

	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.advance(delta)
	snap := s.snap
	subs := s.subscribers()
	s.mu.Unlock()

	publish(subs, snap)
}

func (s *Simulator) advance(delta float64) {
	p := &s.params
	st := &s.snap

	s.totalTimeElapsed += delta
	s.timeSinceLastStroke += delta
	st.ElapsedTime = int(math.Floor(s.totalTimeElapsed))

	// The interval is redrawn every tick whether or not a stroke lands.
	s.strokeInterval = 60.0 / (p.BaseStrokeRate + s.rand.Float64Range(-p.StrokeRateVariation, p.StrokeRateVariation))

	// At most one stroke per tick, however large delta is.
	if s.timeSinceLastStroke >= s.strokeInterval {
		st.StrokeCount++
		s.timeSinceLastStroke = 0
		st.TotalDistance += int(p.DistancePerStroke)
	}

	if s.strokeInterval > 0 {
		st.StrokeRate = max(0, 60.0/s.strokeInterval)
	}

	if s.totalTimeElapsed > 0 {
		st.AverageStrokeRate = float64(st.StrokeCount) / s.totalTimeElapsed * 60.0
	}

	st.InstantaneousPower = max(0, p.BasePower+s.rand.IntRange(-p.PowerVariation, p.PowerVariation))

	// Running mean weighted by whole elapsed seconds, not by tick count.
	if st.ElapsedTime > 0 {
		st.AveragePower = (st.AveragePower*(st.ElapsedTime-1) + st.InstantaneousPower) / st.ElapsedTime
	}

	// Drawn independently of power and stroke rate.
	st.InstantaneousPace = max(MinPace, p.BasePace+s.rand.IntRange(-p.PaceVariation, p.PaceVariation))

	if st.TotalDistance > 0 && s.totalTimeElapsed > 0 {
		st.AveragePace = int(s.totalTimeElapsed / (float64(st.TotalDistance) / 500.0))
	}

	st.HeartRate = max(60, p.BaseHeartRate+s.rand.IntRange(-p.HeartRateVariation, p.HeartRateVariation))

	// Roughly 1 kcal per 4 W per minute. A dip in the average power must not
	// take back energy already reported.
	st.TotalEnergy = max(st.TotalEnergy, int(float64(st.AveragePower)*s.totalTimeElapsed/240.0))
	st.EnergyPerHour = int(float64(st.AveragePower) * 60.0 / 4.0)
	st.EnergyPerMinute = st.EnergyPerHour / 60

	st.RemainingTime = 0
}

// subscribers returns a copy of the subscriber list. Caller holds mu.
func (s *Simulator) subscribers() []Subscriber {
	out := make([]Subscriber, len(s.subs))
	for i, sub := range s.subs {
		out[i] = sub.fn
	}
	return out
}

func publish(subs []Subscriber, snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}
