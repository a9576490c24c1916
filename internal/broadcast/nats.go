package broadcast

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// ConnectNATS dials url with reconnects enabled forever.
func ConnectNATS(url string) (*nats.Conn, error) {
	return nats.Connect(
		url,
		nats.Name("rowsim"),
		nats.Timeout(3*time.Second),
		nats.ReconnectWait(500*time.Millisecond),
		nats.MaxReconnects(-1),
	)
}

type natsConn interface {
	Publish(subject string, data []byte) error
}

// NATSPublisher publishes envelopes as JSON on one subject. nats buffers
// publishes internally, so Send does not wait on the network.
type NATSPublisher struct {
	conn    natsConn
	subject string
	log     *slog.Logger
}

// NewNATSPublisher publishes on subject over conn.
func NewNATSPublisher(conn *nats.Conn, subject string, log *slog.Logger) *NATSPublisher {
	return newNATSPublisher(conn, subject, log)
}

func newNATSPublisher(conn natsConn, subject string, log *slog.Logger) *NATSPublisher {
	return &NATSPublisher{
		conn:    conn,
		subject: subject,
		log:     log.With(slog.String("component", "nats"), slog.String("subject", subject)),
	}
}

func (p *NATSPublisher) Send(env Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		p.log.Error("encode envelope", "err", err)
		return
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		p.log.Warn("publish failed", "seq", env.Seq, "err", err)
	}
}
