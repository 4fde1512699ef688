package commands

import (
	"context"
	"log/slog"

	"oasis-backend/internal/domain/booking"
	"oasis-backend/internal/infra"
	"oasis-backend/internal/infra/events"
	"oasis-backend/internal/pkg/clock"
	"oasis-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateBookingInput struct {
	Customer CustomerInput
	Package  PackageInput
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	bookings  BookingRepository
	publisher events.Publisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewBookingCommands(
	bookings BookingRepository,
	publisher events.Publisher,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings:  bookings,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

// Create is the generic, non-payment booking path; records start out
// pending and are completed later by the payment flow or an operator.
func (b *bookingCommandsImpl) Create(ctx context.Context, in CreateBookingInput) (*booking.Booking, error) {
	customer, err := booking.NewCustomerDetails(in.Customer.Name, in.Customer.Email, in.Customer.Phone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	pkg, err := booking.NewPackageDetails(in.Package.Name, in.Package.Duration, booking.ToMinorUnits(in.Package.AmountMajor))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	record := booking.NewPending(customer, pkg, b.clock.Now())
	if err := b.bookings.Create(ctx, record); err != nil {
		return nil, errs.Mark(err, errs.ErrPersistence)
	}

	b.publisher.PublishBookingEvent(ctx, events.TypeBookingCreated, record)
	return record, nil
}

// UpdateStatus is the administrative override. The compare-and-swap in
// the repository keeps concurrent overrides from silently overwriting each
// other.
func (b *bookingCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error) {
	if !status.IsValid() {
		return nil, errs.Mark(errs.New("unknown status value"), errs.ErrValidation)
	}

	current, err := b.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, errs.ErrPersistence)
	}

	if !current.Status().CanTransitionTo(status) {
		return nil, errs.Mark(errs.New("cannot move "+current.Status().String()+" to "+status.String()), errs.ErrInvalidTransition)
	}

	updated, err := b.bookings.UpdateStatusFrom(ctx, id, current.Status(), status, b.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// The row moved between read and swap; the caller should
			// re-inspect before retrying the override.
			return nil, errs.Mark(err, errs.ErrInvalidTransition)
		}
		return nil, errs.Mark(err, errs.ErrPersistence)
	}

	b.publisher.PublishBookingEvent(ctx, events.TypeStatusChanged, updated)
	b.logger.Info("booking status overridden", "booking_id", id, "status", status)
	return updated, nil
}
