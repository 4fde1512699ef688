package commands

import (
	"context"
	"time"

	"oasis-backend/internal/domain/booking"
	"oasis-backend/internal/domain/contact"
	"oasis-backend/internal/infra/gateway"
	"oasis-backend/internal/infra/mailer"

	"github.com/google/uuid"
)

// BookingRepository is the write/read surface over the booking store. All
// implementations must be safe under concurrent writers: single-statement
// row-atomic updates, no collection-level read-modify-write.
type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	CreateConfirmed(ctx context.Context, b *booking.Booking) (stored *booking.Booking, created bool, err error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByPaymentID(ctx context.Context, paymentID string) (*booking.Booking, error)
	List(ctx context.Context) ([]*booking.Booking, error)
	UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to booking.Status, now time.Time) (*booking.Booking, error)
	UpdatePendingByPayment(ctx context.Context, orderID, paymentID string, to booking.Status, now time.Time) (*booking.Booking, error)
}

// PaymentGateway is the pass-through port to the payment provider.
type PaymentGateway interface {
	KeyID() string
	CreateOrder(ctx context.Context, req gateway.OrderRequest) (*gateway.Order, error)
	FetchPayment(ctx context.Context, paymentID string) (*gateway.Payment, error)
	Refund(ctx context.Context, paymentID string, amountMinor int64, notes map[string]string) (*gateway.Refund, error)
}

// Notifier sends transactional email. Delivery is at-most-once per call;
// the commands decide whether a failure is fatal.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, b *booking.Booking) (mailer.Receipt, error)
	SendContactNotification(ctx context.Context, inq *contact.Inquiry) (mailer.Receipt, error)
}

// EventDedup claims webhook event ids so retried deliveries produce the
// side effect exactly once.
type EventDedup interface {
	Claim(ctx context.Context, eventID string) (bool, error)
	Release(ctx context.Context, eventID string) error
}
