package response

import (
	"time"

	"oasis-backend/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	Customer  Customer  `json:"customerDetails"`
	Package   Package   `json:"packageDetails"`
	OrderID   string    `json:"orderId,omitempty"`
	PaymentID string    `json:"paymentId,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type Package struct {
	Name     string `json:"name"`
	Duration string `json:"duration,omitempty"`
	Amount   int64  `json:"amount"` // minor units
}

type BookingEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Note    string          `json:"note,omitempty"`
	Booking BookingResponse `json:"booking"`
}

type BookingListEnvelope struct {
	Success  bool              `json:"success"`
	Count    int               `json:"count"`
	Bookings []BookingResponse `json:"bookings"`
}

func FromBooking(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID: b.ID(),
		Customer: Customer{
			Name:  b.Customer().Name(),
			Email: b.Customer().Email(),
			Phone: b.Customer().Phone(),
		},
		Package: Package{
			Name:     b.Package().Name(),
			Duration: b.Package().Duration(),
			Amount:   b.Package().AmountMinor(),
		},
		OrderID:   b.Payment().OrderID(),
		PaymentID: b.Payment().PaymentID(),
		Status:    b.Status().String(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func FromBookings(records []*booking.Booking) BookingListEnvelope {
	out := make([]BookingResponse, 0, len(records))
	for _, b := range records {
		out = append(out, FromBooking(b))
	}
	return BookingListEnvelope{Success: true, Count: len(out), Bookings: out}
}
