package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidStatusTransition = errors.New("invalid status transition")

// Booking is the durable record of a travel-package purchase. Lifecycle
// transitions go through Transition; once confirmed the record is immutable
// except for the administrative status override.
type Booking struct {
	id        uuid.UUID
	customer  CustomerDetails
	pkg       PackageDetails
	payment   PaymentRef
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewPending creates a booking on the generic, non-payment path.
func NewPending(customer CustomerDetails, pkg PackageDetails, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		customer:  customer,
		pkg:       pkg,
		status:    StatusPending,
		createdAt: now,
	}
}

// NewConfirmed creates a booking for a payment whose signature has already
// been verified. The signature check is the only gate to this constructor.
func NewConfirmed(customer CustomerDetails, pkg PackageDetails, payment PaymentRef, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		customer:  customer,
		pkg:       pkg,
		payment:   payment,
		status:    StatusConfirmed,
		createdAt: now,
	}
}

func Reconstruct(
	id uuid.UUID,
	customer CustomerDetails,
	pkg PackageDetails,
	payment PaymentRef,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		customer:  customer,
		pkg:       pkg,
		payment:   payment,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Transition moves the booking forward in its lifecycle. Backward moves
// (reconfirming a cancelled booking, for example) are rejected.
func (b *Booking) Transition(next Status, now time.Time) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}
	b.status = next
	b.updatedAt = now
	return nil
}

func (b *Booking) IsConfirmed() bool { return b.status == StatusConfirmed }

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) Customer() CustomerDetails { return b.customer }
func (b *Booking) Package() PackageDetails   { return b.pkg }
func (b *Booking) Payment() PaymentRef       { return b.payment }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
