// Package broadcast fans simulator snapshots out to network consumers.
package broadcast

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"rowsim.klederson.com/internal/rower"
)

// Envelope wraps a snapshot for the wire.
type Envelope struct {
	Session  string         `json:"session"`
	Seq      uint64         `json:"seq"`
	At       time.Time      `json:"at"`
	Snapshot rower.Snapshot `json:"snapshot"`
}

// Sink receives every envelope. Send is called on the simulator's tick
// goroutine and must not block.
type Sink interface {
	Send(Envelope)
}

// Fanout stamps snapshots with a session id and sequence number and hands
// them to each sink in order. A zero snapshot (a reset) opens a new session.
type Fanout struct {
	mu      sync.Mutex
	session string
	seq     uint64
	now     func() time.Time
	sinks   []Sink
}

// NewFanout creates a fanout over sinks.
func NewFanout(sinks ...Sink) *Fanout {
	return &Fanout{
		session: uuid.NewString(),
		now:     time.Now,
		sinks:   sinks,
	}
}

// Publish is a rower.Subscriber.
func (f *Fanout) Publish(s rower.Snapshot) {
	f.mu.Lock()
	if s.IsZero() && f.seq > 0 {
		f.session = uuid.NewString()
		f.seq = 0
	}
	f.seq++
	env := Envelope{
		Session:  f.session,
		Seq:      f.seq,
		At:       f.now().UTC(),
		Snapshot: s,
	}
	sinks := f.sinks
	f.mu.Unlock()

	for _, sink := range sinks {
		sink.Send(env)
	}
}

// Session returns the current session id.
func (f *Fanout) Session() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}
