package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher delivers roster-change events to downstream consumers. Delivery is
// best effort: the directory never fails a request because the broker is down.
type Publisher interface {
	Publish(ctx context.Context, event RosterChange)
	Close() error
}

// NoopPublisher drops every event. Used when no brokers are configured.
type NoopPublisher struct{}

// Publish implements Publisher.
func (NoopPublisher) Publish(context.Context, RosterChange) {}

// Close implements Publisher.
func (NoopPublisher) Close() error { return nil }

// KafkaPublisher writes roster events to a single topic, creating the writer
// lazily on first publish.
type KafkaPublisher struct {
	brokers []string
	topic   string
	logger  *zap.Logger

	mu     sync.Mutex
	writer *kafka.Writer
}

// NewKafkaPublisher creates a KafkaPublisher.
func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{brokers: brokers, topic: topic, logger: logger}
}

// Publish encodes the event as JSON keyed by activity name and writes it to
// the topic. Failures are logged and swallowed.
func (p *KafkaPublisher) Publish(ctx context.Context, event RosterChange) {
	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("encode roster event", zap.Error(err), zap.String("event_type", event.EventType))
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.Activity),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "event_id", Value: []byte(event.EventID)},
		},
	}

	if err := p.writerHandle().WriteMessages(ctx, msg); err != nil {
		p.logger.Error("publish roster event",
			zap.Error(err),
			zap.String("event_type", event.EventType),
			zap.String("activity", event.Activity),
		)
	}
}

func (p *KafkaPublisher) writerHandle() *kafka.Writer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		p.writer = &kafka.Writer{
			Addr:         kafka.TCP(p.brokers...),
			Topic:        p.topic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		}
	}
	return p.writer
}

// Close releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.writer == nil {
		return nil
	}
	err := p.writer.Close()
	p.writer = nil
	return err
}
