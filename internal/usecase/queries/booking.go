package queries

import (
	"context"

	"oasis-backend/internal/domain/booking"
	"oasis-backend/internal/infra"
	"oasis-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

// BookingReader is the read-side slice of the booking store.
type BookingReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByOrderID(ctx context.Context, orderID string) (*booking.Booking, error)
	List(ctx context.Context) ([]*booking.Booking, error)
}

type BookingQueries interface {
	List(ctx context.Context) ([]*booking.Booking, error)
	Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	GetByOrderID(ctx context.Context, orderID string) (*booking.Booking, error)
}

type bookingQueriesImpl struct {
	bookings BookingReader
}

func NewBookingQueries(bookings BookingReader) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) List(ctx context.Context) ([]*booking.Booking, error) {
	records, err := q.bookings.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	return records, nil
}

func (q *bookingQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	record, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	return record, nil
}

func (q *bookingQueriesImpl) GetByOrderID(ctx context.Context, orderID string) (*booking.Booking, error) {
	if orderID == "" {
		return nil, errs.Mark(errs.New("order id is required"), errs.ErrValidation)
	}
	record, err := q.bookings.FindByOrderID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrPersistence)
	}
	return record, nil
}
