package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes envelopes keyed by session id, so one session
// stays on one partition.
type KafkaPublisher struct {
	w   messageWriter
	log *slog.Logger
}

// NewKafkaPublisher creates an async writer for topic. Delivery errors are
// logged from the writer's completion callback.
func NewKafkaPublisher(brokers []string, topic string, log *slog.Logger) *KafkaPublisher {
	log = log.With(slog.String("component", "kafka"), slog.String("topic", topic))
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(msgs []kafka.Message, err error) {
			if err != nil {
				log.Warn("delivery failed", "messages", len(msgs), "err", err)
			}
		},
	}
	return &KafkaPublisher{w: w, log: log}
}

func (p *KafkaPublisher) Send(env Envelope) {
	data, err := json.Marshal(env)
	if err != nil {
		p.log.Error("encode envelope", "err", err)
		return
	}
	msg := kafka.Message{
		Key:   []byte(env.Session),
		Value: data,
		Time:  env.At,
	}
	if err := p.w.WriteMessages(context.Background(), msg); err != nil {
		p.log.Warn("write failed", "seq", env.Seq, "err", err)
	}
}

// Close flushes pending messages.
func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}
