package app

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"rowsim.klederson.com/internal/rower"
)

func newModel(t *testing.T) (AppModel, *rower.Simulator) {
	t.Helper()
	sim := rower.New(rower.DefaultParams().WithoutVariation(), rower.NewRandomSource(1))
	m := New(sim, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return m, sim
}

func press(t *testing.T, m AppModel, key string) AppModel {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(AppModel)
}

// frames feeds n TickMsgs spaced step apart.
func frames(m AppModel, n int, step time.Duration) AppModel {
	now := m.shared.lastFrame
	for i := 0; i < n; i++ {
		now = now.Add(step)
		next, _ := m.Update(TickMsg(now))
		m = next.(AppModel)
	}
	return m
}

func TestFramesOnlyTickWhileRunning(t *testing.T) {
	m, sim := newModel(t)

	m = frames(m, 10, 500*time.Millisecond)
	require.True(t, sim.Snapshot().IsZero())

	m = press(t, m, "s")
	require.True(t, sim.IsRunning())

	m = frames(m, 120, 500*time.Millisecond)
	snap := m.shared.latest
	require.Equal(t, 60, snap.ElapsedTime)
	require.Equal(t, 24, snap.StrokeCount)
	require.Equal(t, 120, m.shared.power.Len())
	require.InDelta(t, 2.0, m.shared.fps, 0.01)

	m = press(t, m, "s")
	require.False(t, sim.IsRunning())
	m = frames(m, 10, 500*time.Millisecond)
	require.Equal(t, snap, m.shared.latest)
}

func TestResetClearsDisplay(t *testing.T) {
	m, sim := newModel(t)
	m = press(t, m, "s")
	m = frames(m, 20, 500*time.Millisecond)
	require.NotZero(t, m.shared.latest.StrokeCount)

	m = press(t, m, "r")
	require.False(t, sim.IsRunning())
	require.True(t, m.shared.latest.IsZero())
	require.Zero(t, m.shared.power.Len())
	require.Zero(t, m.shared.cycle.Phase)
}

func TestEffortAndResistanceKeys(t *testing.T) {
	m, sim := newModel(t)

	m = press(t, m, "9")
	require.Equal(t, 9, m.resistance)
	require.Equal(t, 280, sim.Params().BasePower)

	m = press(t, m, "0")
	require.Equal(t, 80, sim.Params().BasePower)
	require.Equal(t, 8.0, sim.Params().DistancePerStroke)

	m = press(t, m, "up")
	require.Equal(t, -1, m.resistance)
	require.Equal(t, 100, sim.Params().BasePower)

	m = press(t, m, "-")
	m = press(t, m, "down")
	require.Equal(t, 60, sim.Params().BasePower)
}

func TestQuitUnsubscribes(t *testing.T) {
	m, sim := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())

	sim.Start()
	sim.Tick(1)
	require.True(t, m.shared.latest.IsZero())
}

func TestView(t *testing.T) {
	m, _ := newModel(t)
	require.Equal(t, "Initializing rower...", m.View())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = next.(AppModel)
	view := m.View()
	require.Contains(t, view, "MONITOR")
	require.Contains(t, view, "AVERAGES")
	require.Contains(t, view, "STOPPED")
	require.Contains(t, view, "0:00/500m")
}

func TestRing(t *testing.T) {
	r := NewRing(3)
	require.Nil(t, r.Values())
	r.Push(1)
	r.Push(2)
	require.Equal(t, []float64{1, 2}, r.Values())
	r.Push(3)
	r.Push(4)
	require.Equal(t, []float64{2, 3, 4}, r.Values())
	require.Equal(t, 3, r.Len())
	r.Reset()
	require.Zero(t, r.Len())
}

func TestStrokeCycle(t *testing.T) {
	var c StrokeCycle
	c.Advance(1.25, 24) // half of a 2.5s stroke
	require.InDelta(t, 0.5, c.Phase, 1e-9)

	c.Advance(2.5, 24) // wraps
	require.InDelta(t, 0.5, c.Phase, 1e-9)

	c.Observe(rower.Snapshot{StrokeCount: 1})
	require.Zero(t, c.Phase)

	c.Advance(1, 0)
	require.Zero(t, c.Phase)
}
