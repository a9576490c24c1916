// Package server exposes a headless simulator over HTTP.
package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"rowsim.klederson.com/internal/broadcast"
	"rowsim.klederson.com/internal/rower"
)

// State is the body returned by the read and control endpoints.
type State struct {
	Running  bool           `json:"running"`
	Session  string         `json:"session"`
	Params   rower.Params   `json:"params"`
	Snapshot rower.Snapshot `json:"snapshot"`
}

// Server wires a simulator to its HTTP surface.
type Server struct {
	sim     *rower.Simulator
	fanout  *broadcast.Fanout
	hub     *broadcast.Hub
	metrics *broadcast.Metrics
	log     *slog.Logger
	access  io.Writer
}

// New creates a server. access receives one common-log line per request.
func New(sim *rower.Simulator, fanout *broadcast.Fanout, hub *broadcast.Hub, metrics *broadcast.Metrics, log *slog.Logger, access io.Writer) *Server {
	return &Server{
		sim:     sim,
		fanout:  fanout,
		hub:     hub,
		metrics: metrics,
		log:     log.With(slog.String("component", "http")),
		access:  access,
	}
}

// Router returns the route table. The websocket route is mounted outside
// the access log so the upgrade sees the raw ResponseWriter.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Handle("/ws", s.hub)

	api := r.PathPrefix("/").Subrouter()
	api.Use(func(next http.Handler) http.Handler {
		return handlers.LoggingHandler(s.access, next)
	})

	api.HandleFunc("/health", s.health).Methods("GET")
	api.Handle("/metrics", s.metrics.Handler()).Methods("GET")
	api.HandleFunc("/state", s.state).Methods("GET")

	ctl := api.PathPrefix("/control").Subrouter()
	ctl.HandleFunc("/start", s.control(s.sim.Start)).Methods("POST")
	ctl.HandleFunc("/stop", s.control(s.sim.Stop)).Methods("POST")
	ctl.HandleFunc("/reset", s.control(s.sim.Reset)).Methods("POST")
	ctl.HandleFunc("/increase", s.control(s.sim.IncreaseEffort)).Methods("POST")
	ctl.HandleFunc("/decrease", s.control(s.sim.DecreaseEffort)).Methods("POST")
	ctl.HandleFunc("/resistance", s.resistance).Methods("POST")

	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) state(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.current())
}

func (s *Server) control(op func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		op()
		s.metrics.SetRunning(s.sim.IsRunning())
		s.log.Debug("control", "path", r.URL.Path)
		writeJSON(w, http.StatusOK, s.current())
	}
}

func (s *Server) resistance(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.ParseFloat(r.URL.Query().Get("level"), 64)
	if err != nil || level < 0 || level > 1 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "level must be a number in [0, 1]"})
		return
	}
	s.sim.SetResistance(level)
	s.log.Debug("control", "path", r.URL.Path, "level", level)
	writeJSON(w, http.StatusOK, s.current())
}

func (s *Server) current() State {
	return State{
		Running:  s.sim.IsRunning(),
		Session:  s.fanout.Session(),
		Params:   s.sim.Params(),
		Snapshot: s.sim.Snapshot(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StartClock runs RunClock on its own goroutine. The returned channel is
// closed once the clock has delivered its last tick.
func StartClock(ctx context.Context, sim *rower.Simulator, fps int) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		RunClock(ctx, sim, fps)
	}()
	return done
}

// RunClock ticks sim at fps with the measured wall time between ticks
// until ctx is done.
func RunClock(ctx context.Context, sim *rower.Simulator, fps int) {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			sim.Tick(now.Sub(last).Seconds())
			last = now
		}
	}
}
