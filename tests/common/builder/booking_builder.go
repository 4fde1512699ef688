//go:build unit || e2e

package builder

import (
	"time"

	"oasis-backend/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID           uuid.UUID
	CustomerName string
	Email        string
	Phone        string
	PackageName  string
	Duration     string
	AmountMinor  int64
	OrderID      string
	PaymentID    string
	Signature    string
	Status       booking.Status
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           uuid.New(),
		CustomerName: "Asha Verma",
		Email:        "asha@example.com",
		Phone:        "9876543210",
		PackageName:  "Golden Triangle Tour",
		Duration:     "6 days / 5 nights",
		AmountMinor:  2500000,
		OrderID:      "order_N5kWkC1234abcd",
		PaymentID:    "pay_N5kXqD5678efgh",
		Signature:    "deadbeef",
		Status:       booking.StatusConfirmed,
		CreatedAt:    time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPayment(orderID, paymentID string) *BookingBuilder {
	b.OrderID = orderID
	b.PaymentID = paymentID
	return b
}

func (b *BookingBuilder) Build() *booking.Booking {
	return booking.Reconstruct(
		b.ID,
		booking.ReconstructCustomerDetails(b.CustomerName, b.Email, b.Phone),
		booking.ReconstructPackageDetails(b.PackageName, b.Duration, b.AmountMinor),
		booking.NewPaymentRef(b.OrderID, b.PaymentID, b.Signature),
		b.Status,
		b.CreatedAt,
		b.CreatedAt,
	)
}

// BuildRequestMap is the JSON shape the booking and payment endpoints bind.
func (b *BookingBuilder) BuildRequestMap() map[string]any {
	return map[string]any{
		"customerDetails": map[string]any{
			"name":  b.CustomerName,
			"email": b.Email,
			"phone": b.Phone,
		},
		"packageDetails": map[string]any{
			"name":     b.PackageName,
			"duration": b.Duration,
			"amount":   b.AmountMinor / 100,
		},
	}
}
