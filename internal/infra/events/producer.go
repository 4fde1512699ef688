// Package events publishes booking lifecycle events to Kafka for
// downstream consumers (reporting, reconciliation). The stream is an
// optional side channel: when no brokers are configured a no-op publisher
// is used, and publish failures are logged, never propagated.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"oasis-backend/internal/domain/booking"

	"github.com/segmentio/kafka-go"
)

const (
	TypeBookingCreated   = "booking_created"
	TypeBookingConfirmed = "booking_confirmed"
	TypeStatusChanged    = "booking_status_changed"
)

type BookingEvent struct {
	Type        string    `json:"type"`
	BookingID   string    `json:"booking_id"`
	PaymentID   string    `json:"payment_id,omitempty"`
	PackageName string    `json:"package_name"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishBookingEvent(ctx context.Context, eventType string, b *booking.Booking)
}

type KafkaPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaPublisher{writer: writer, logger: logger}
}

func (p *KafkaPublisher) PublishBookingEvent(ctx context.Context, eventType string, b *booking.Booking) {
	event := BookingEvent{
		Type:        eventType,
		BookingID:   b.ID().String(),
		PaymentID:   b.Payment().PaymentID(),
		PackageName: b.Package().Name(),
		Status:      b.Status().String(),
		OccurredAt:  time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to marshal booking event", "type", eventType, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(b.ID().String()),
		Value: data,
		Time:  event.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish booking event", "type", eventType, "booking_id", b.ID(), "error", err)
	}
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher is used when no Kafka brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishBookingEvent(context.Context, string, *booking.Booking) {}
