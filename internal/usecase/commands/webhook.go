package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"oasis-backend/internal/domain/booking"
	"oasis-backend/internal/infra"
	"oasis-backend/internal/infra/events"
	"oasis-backend/internal/pkg/clock"
	"oasis-backend/internal/pkg/errs"
	"oasis-backend/internal/pkg/signature"
)

const (
	eventPaymentCaptured = "payment.captured"
	eventPaymentFailed   = "payment.failed"
)

// webhookEvent is the subset of the provider's event envelope this
// receiver dispatches on.
type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// Ack reports what the receiver did with an event. The gateway retries on
// non-2xx, so everything that is not a verification or storage failure is
// acknowledged.
type Ack struct {
	Event     string
	Duplicate bool // event id already processed
	Applied   bool // a booking transition happened
}

type WebhookCommands interface {
	Handle(ctx context.Context, rawBody []byte, signatureHeader, eventID string) (*Ack, error)
}

type webhookCommandsImpl struct {
	secret    string
	bookings  BookingRepository
	dedup     EventDedup
	publisher events.Publisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewWebhookCommands(
	secret string,
	bookings BookingRepository,
	dedup EventDedup,
	publisher events.Publisher,
	clk clock.Clock,
	logger *slog.Logger,
) WebhookCommands {
	return &webhookCommandsImpl{
		secret:    secret,
		bookings:  bookings,
		dedup:     dedup,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

func (w *webhookCommandsImpl) Handle(ctx context.Context, rawBody []byte, signatureHeader, eventID string) (*Ack, error) {
	// Fail closed: an unconfigured receiver accepts nothing.
	if w.secret == "" {
		return nil, errs.ErrWebhookNotConfigured
	}

	// The HMAC covers the exact raw body, with the webhook secret, never
	// the order-verification secret.
	if !signature.VerifyWebhook(w.secret, rawBody, signatureHeader) {
		w.logger.Warn("webhook signature verification failed",
			"security_event", true,
			"event_id", eventID,
		)
		return nil, errs.ErrVerification
	}

	var event webhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "malformed webhook body"), errs.ErrValidation)
	}

	paymentID := event.Payload.Payment.Entity.ID

	// Dedup key: provider event id when supplied, otherwise event kind +
	// payment id. Claimed before the side effect, released if it fails so
	// the provider's retry can run it again.
	dedupKey := eventID
	if dedupKey == "" {
		dedupKey = event.Event + ":" + paymentID
	}

	claimed, err := w.dedup.Claim(ctx, dedupKey)
	if err != nil {
		// Dedup store down: proceed anyway, the booking transitions are
		// idempotent on their own.
		w.logger.Warn("webhook dedup unavailable, processing without claim", "error", err)
		claimed = true
	} else if !claimed {
		w.logger.Info("duplicate webhook delivery acknowledged", "event", event.Event, "event_id", dedupKey)
		return &Ack{Event: event.Event, Duplicate: true}, nil
	}

	ack, err := w.apply(ctx, event, paymentID)
	if err != nil {
		if releaseErr := w.dedup.Release(ctx, dedupKey); releaseErr != nil {
			w.logger.Warn("failed to release webhook claim", "event_id", dedupKey, "error", releaseErr)
		}
		return nil, err
	}
	return ack, nil
}

func (w *webhookCommandsImpl) apply(ctx context.Context, event webhookEvent, paymentID string) (*Ack, error) {
	var target booking.Status
	switch event.Event {
	case eventPaymentCaptured:
		target = booking.StatusConfirmed
	case eventPaymentFailed:
		target = booking.StatusFailed
	default:
		// Unknown kinds are acknowledged untouched for forward
		// compatibility.
		w.logger.Info("unhandled webhook event acknowledged", "event", event.Event)
		return &Ack{Event: event.Event}, nil
	}

	orderID := event.Payload.Payment.Entity.OrderID
	updated, err := w.bookings.UpdatePendingByPayment(ctx, orderID, paymentID, target, w.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// No pending booking for this payment: the synchronous verify
			// flow may have completed it already, or the booking never
			// existed locally. Recorded and acknowledged.
			w.logger.Info("webhook event without matching pending booking",
				"event", event.Event, "payment_id", paymentID, "order_id", orderID)
			return &Ack{Event: event.Event}, nil
		}
		return nil, errs.Mark(err, errs.ErrPersistence)
	}

	w.publisher.PublishBookingEvent(ctx, events.TypeStatusChanged, updated)
	w.logger.Info("webhook event applied",
		"event", event.Event, "booking_id", updated.ID(), "status", updated.Status())
	return &Ack{Event: event.Event, Applied: true}, nil
}
