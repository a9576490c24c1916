package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"

	"rowsim.klederson.com/internal/rower"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type captureSink struct {
	envs []Envelope
}

func (c *captureSink) Send(env Envelope) { c.envs = append(c.envs, env) }

func TestFanoutSequencesAndSessions(t *testing.T) {
	sink := &captureSink{}
	f := NewFanout(sink)
	first := f.Session()

	f.Publish(rower.Snapshot{StrokeCount: 1})
	f.Publish(rower.Snapshot{StrokeCount: 2})
	f.Publish(rower.Snapshot{})
	f.Publish(rower.Snapshot{StrokeCount: 1})

	require.Len(t, sink.envs, 4)
	require.Equal(t, first, sink.envs[0].Session)
	require.Equal(t, uint64(1), sink.envs[0].Seq)
	require.Equal(t, uint64(2), sink.envs[1].Seq)

	// reset opens a new session
	require.NotEqual(t, first, sink.envs[2].Session)
	require.Equal(t, uint64(1), sink.envs[2].Seq)
	require.Equal(t, sink.envs[2].Session, sink.envs[3].Session)
	require.Equal(t, uint64(2), sink.envs[3].Seq)
	require.Equal(t, sink.envs[3].Session, f.Session())
}

func TestFanoutLeadingResetKeepsSession(t *testing.T) {
	sink := &captureSink{}
	f := NewFanout(sink)
	first := f.Session()

	f.Publish(rower.Snapshot{})
	require.Equal(t, first, sink.envs[0].Session)
}

func TestFanoutAsSimulatorSubscriber(t *testing.T) {
	sink := &captureSink{}
	f := NewFanout(sink)
	sim := rower.New(rower.DefaultParams().WithoutVariation(), rower.NewRandomSource(1))
	sim.Subscribe(f.Publish)

	sim.Start()
	sim.Tick(0.5)
	sim.Tick(0.5)
	sim.Reset()

	require.Len(t, sink.envs, 3)
	require.Equal(t, 1, sink.envs[1].Snapshot.ElapsedTime)
	require.True(t, sink.envs[2].Snapshot.IsZero())
}

func TestHubBroadcastsToClients(t *testing.T) {
	hub := NewHub(discardLogger())
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.Count() == 1 }, time.Second, 10*time.Millisecond)

	hub.Send(Envelope{Session: "s1", Seq: 7, Snapshot: rower.Snapshot{HeartRate: 131}})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	typ, data, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.TextMessage, typ)

	var env Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	require.Equal(t, "s1", env.Session)
	require.Equal(t, uint64(7), env.Seq)
	require.Equal(t, 131, env.Snapshot.HeartRate)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Count() == 0 }, time.Second, 10*time.Millisecond)
}

type fakeNATS struct {
	subject string
	data    [][]byte
	err     error
}

func (f *fakeNATS) Publish(subject string, data []byte) error {
	f.subject = subject
	f.data = append(f.data, data)
	return f.err
}

func TestNATSPublisher(t *testing.T) {
	conn := &fakeNATS{}
	p := newNATSPublisher(conn, "rower.telemetry", discardLogger())

	p.Send(Envelope{Session: "abc", Seq: 1, Snapshot: rower.Snapshot{StrokeCount: 3}})
	require.Equal(t, "rower.telemetry", conn.subject)
	require.Len(t, conn.data, 1)

	var env Envelope
	require.NoError(t, json.Unmarshal(conn.data[0], &env))
	require.Equal(t, 3, env.Snapshot.StrokeCount)

	// publish errors are logged, not raised
	conn.err = errors.New("nats: connection closed")
	p.Send(Envelope{Seq: 2})
	require.Len(t, conn.data, 2)
}

type fakeWriter struct {
	msgs   []kafka.Message
	closed bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublisherKeysBySession(t *testing.T) {
	w := &fakeWriter{}
	p := &KafkaPublisher{w: w, log: discardLogger()}

	at := time.Date(2026, 10, 19, 7, 0, 0, 0, time.UTC)
	p.Send(Envelope{Session: "sess-1", Seq: 1, At: at, Snapshot: rower.Snapshot{TotalDistance: 250}})

	require.Len(t, w.msgs, 1)
	require.Equal(t, "sess-1", string(w.msgs[0].Key))
	require.Equal(t, at, w.msgs[0].Time)
	require.Contains(t, string(w.msgs[0].Value), `"totalDistance":250`)

	require.NoError(t, p.Close())
	require.True(t, w.closed)
}

func TestMetricsMirrorSnapshot(t *testing.T) {
	m := NewMetrics()
	m.Send(Envelope{Snapshot: rower.Snapshot{StrokeRate: 24, InstantaneousPower: 152, TotalDistance: 120}})
	m.Send(Envelope{})
	m.Send(Envelope{Snapshot: rower.Snapshot{StrokeRate: 26, InstantaneousPower: 160, TotalDistance: 10}})
	m.SetRunning(true)

	require.Equal(t, 3.0, testutil.ToFloat64(m.snapshots))
	require.Equal(t, 1.0, testutil.ToFloat64(m.resets))
	require.Equal(t, 1.0, testutil.ToFloat64(m.running))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	require.Contains(t, body, "rower_stroke_rate_spm 26")
	require.Contains(t, body, "rower_power_watts 160")
	require.Contains(t, body, "rower_distance_meters 10")
}
