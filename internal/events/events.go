// Package events publishes order lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"storefront/internal/domain"
)

const EventOrderPlaced = "OrderPlaced"

// Envelope wraps every event payload written to the order topic.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

type OrderPlacedPayload struct {
	OrderID           string    `json:"order_id"`
	UserID            string    `json:"user_id"`
	TotalCents        int64     `json:"total_cents"`
	ItemCount         int       `json:"item_count"`
	Status            string    `json:"status"`
	EstimatedDelivery time.Time `json:"estimated_delivery"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes envelopes synchronously, keyed by order id so all
// events of one order land on the same partition.
type KafkaPublisher struct {
	w        messageWriter
	producer string
	logger   *zap.Logger
	now      func() time.Time
}

func NewKafkaPublisher(brokers []string, topic, producer string, logger *zap.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: 5 * time.Second,
	}
	return newKafkaPublisher(w, producer, logger)
}

func newKafkaPublisher(w messageWriter, producer string, logger *zap.Logger) *KafkaPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaPublisher{w: w, producer: producer, logger: logger, now: time.Now}
}

// OrderPlaced publishes the OrderPlaced event for a stored order.
func (p *KafkaPublisher) OrderPlaced(ctx context.Context, o domain.Order, totalCents int64, traceID string) error {
	payload, err := json.Marshal(OrderPlacedPayload{
		OrderID:           o.OrderID,
		UserID:            o.UserID,
		TotalCents:        totalCents,
		ItemCount:         len(o.Items),
		Status:            string(o.Status),
		EstimatedDelivery: o.EstimatedDelivery,
	})
	if err != nil {
		return err
	}
	env := Envelope{
		EventID:       uuid.NewString(),
		EventType:     EventOrderPlaced,
		EventVersion:  1,
		OccurredAt:    p.now().UTC(),
		Producer:      p.producer,
		TraceID:       traceID,
		CorrelationID: o.OrderID,
		Payload:       payload,
	}
	value, err := json.Marshal(env)
	if err != nil {
		return err
	}
	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(o.OrderID),
		Value: value,
		Time:  env.OccurredAt,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "x-event-type", Value: []byte(EventOrderPlaced)},
		},
	})
	if err != nil {
		return err
	}
	p.logger.Debug("event published", zap.String("event_type", EventOrderPlaced), zap.String("order_id", o.OrderID))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

// NopPublisher drops events; used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) OrderPlaced(context.Context, domain.Order, int64, string) error { return nil }

func (NopPublisher) Close() error { return nil }
