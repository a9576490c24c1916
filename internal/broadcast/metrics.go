package broadcast

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rowsim.klederson.com/internal/rower"
)

var gaugeFields = []struct {
	name, help string
	value      func(rower.Snapshot) float64
}{
	{"stroke_rate_spm", "Instantaneous stroke rate.", func(s rower.Snapshot) float64 { return s.StrokeRate }},
	{"average_stroke_rate_spm", "Session average stroke rate.", func(s rower.Snapshot) float64 { return s.AverageStrokeRate }},
	{"strokes", "Strokes this session.", func(s rower.Snapshot) float64 { return float64(s.StrokeCount) }},
	{"distance_meters", "Distance this session.", func(s rower.Snapshot) float64 { return float64(s.TotalDistance) }},
	{"pace_seconds", "Instantaneous pace per 500m.", func(s rower.Snapshot) float64 { return float64(s.InstantaneousPace) }},
	{"average_pace_seconds", "Session average pace per 500m.", func(s rower.Snapshot) float64 { return float64(s.AveragePace) }},
	{"power_watts", "Instantaneous power.", func(s rower.Snapshot) float64 { return float64(s.InstantaneousPower) }},
	{"average_power_watts", "Session average power.", func(s rower.Snapshot) float64 { return float64(s.AveragePower) }},
	{"energy_kcal", "Energy this session.", func(s rower.Snapshot) float64 { return float64(s.TotalEnergy) }},
	{"energy_per_hour_kcal", "Energy rate per hour.", func(s rower.Snapshot) float64 { return float64(s.EnergyPerHour) }},
	{"heart_rate_bpm", "Heart rate.", func(s rower.Snapshot) float64 { return float64(s.HeartRate) }},
	{"elapsed_seconds", "Elapsed session time.", func(s rower.Snapshot) float64 { return float64(s.ElapsedTime) }},
}

// Metrics mirrors the latest snapshot into Prometheus gauges on a private
// registry.
type Metrics struct {
	reg       *prometheus.Registry
	gauges    []prometheus.Gauge
	snapshots prometheus.Counter
	resets    prometheus.Counter
	running   prometheus.Gauge
}

// NewMetrics registers the rower collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		snapshots: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rower",
			Name:      "snapshots_total",
			Help:      "Snapshots published by the simulator.",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rower",
			Name:      "resets_total",
			Help:      "Zero snapshots published by reset.",
		}),
		running: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rower",
			Name:      "running",
			Help:      "1 while the simulator is running.",
		}),
	}

	for _, f := range gaugeFields {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rower",
			Name:      f.name,
			Help:      f.help,
		})
		m.gauges = append(m.gauges, g)
		m.reg.MustRegister(g)
	}
	m.reg.MustRegister(m.snapshots, m.resets, m.running)
	return m
}

func (m *Metrics) Send(env Envelope) {
	m.snapshots.Inc()
	if env.Snapshot.IsZero() {
		m.resets.Inc()
	}
	for i, f := range gaugeFields {
		m.gauges[i].Set(f.value(env.Snapshot))
	}
}

// SetRunning records the simulator's running flag.
func (m *Metrics) SetRunning(running bool) {
	if running {
		m.running.Set(1)
	} else {
		m.running.Set(0)
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
