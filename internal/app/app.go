package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rowsim.klederson.com/internal/config"
	"rowsim.klederson.com/internal/rower"
	"rowsim.klederson.com/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	sim         *rower.Simulator
	log         *slog.Logger
	unsubscribe func()

	latest rower.Snapshot
	power  *Ring
	heart  *Ring
	cycle  StrokeCycle

	lastFrame time.Time
	fps       float64
}

// AppModel is the root Bubble Tea model: the rower's control surface and
// monitor display.
type AppModel struct {
	width  int
	height int

	resistance int // last resistance key, -1 once effort is adjusted

	shared *shared
}

// New creates an AppModel driving sim. The model subscribes to sim for the
// lifetime of the program.
func New(sim *rower.Simulator, log *slog.Logger) AppModel {
	sh := &shared{
		sim:       sim,
		log:       log.With(slog.String("component", "dashboard")),
		power:     NewRing(config.HistoryLen),
		heart:     NewRing(config.HistoryLen),
		lastFrame: time.Now(),
	}
	sh.unsubscribe = sim.Subscribe(sh.observe)

	return AppModel{
		resistance: -1,
		shared:     sh,
	}
}

// observe runs synchronously inside sim.Tick and sim.Reset.
func (s *shared) observe(snap rower.Snapshot) {
	s.latest = snap
	s.cycle.Observe(snap)
	if snap.IsZero() {
		s.power.Reset()
		s.heart.Reset()
		return
	}
	s.power.Push(float64(snap.InstantaneousPower))
	s.heart.Push(float64(snap.HeartRate))
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.frame(time.Time(msg))
		return m, tickCmd()
	}

	return m, nil
}

// frame advances the simulator by the wall time since the previous frame.
func (m AppModel) frame(now time.Time) {
	sh := m.shared
	delta := now.Sub(sh.lastFrame).Seconds()
	sh.lastFrame = now
	if delta <= 0 {
		return
	}

	// EMA smoothing, 10% new
	sh.fps = sh.fps*0.9 + (1/delta)*0.1

	if !sh.sim.IsRunning() {
		return
	}
	sh.sim.Tick(delta)
	sh.cycle.Advance(delta, sh.latest.StrokeRate)
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sim := m.shared.sim
	key := msg.String()

	switch key {
	case "q", "Q", "ctrl+c":
		m.shared.unsubscribe()
		return m, tea.Quit

	case " ", "s", "S":
		if sim.IsRunning() {
			sim.Stop()
		} else {
			sim.Start()
		}
		m.shared.log.Debug("toggle", "running", sim.IsRunning())

	case "r", "R":
		sim.Reset()
		m.shared.log.Info("session reset")

	case "+", "=", "up", "k":
		sim.IncreaseEffort()
		m.resistance = -1
		m.shared.log.Debug("effort up", "params", sim.Params())

	case "-", "down", "j":
		sim.DecreaseEffort()
		m.resistance = -1
		m.shared.log.Debug("effort down", "params", sim.Params())

	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.resistance = int(key[0] - '0')
		sim.SetResistance(float64(m.resistance) / config.ResistanceKeys)
		m.shared.log.Debug("resistance", "level", m.resistance, "params", sim.Params())
	}

	return m, nil
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing rower..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	metricsW := m.width * 3 / 5
	if metricsW < 40 {
		metricsW = 40
	}
	sideW := m.width - metricsW
	if sideW < 20 {
		sideW = 20
	}

	sh := m.shared
	running := sh.sim.IsRunning()

	menuBar := ui.RenderMenuBar(m.width, running)
	metrics := ui.RenderMetricsPanel(sh.latest, metricsW, bodyH)
	side := ui.RenderSidePanel(ui.SideInfo{
		StrokePhase: sh.cycle.Phase,
		Resistance:  m.resistance,
		Power:       sh.power.Values(),
		HeartRate:   sh.heart.Values(),
	}, sideW, bodyH)
	statusBar := ui.RenderStatusBar(m.width, running, sh.sim.Params(), sh.fps)

	return ui.ComposeLayout(menuBar, metrics, side, statusBar)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
