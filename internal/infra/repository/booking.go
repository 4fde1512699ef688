package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"oasis-backend/internal/domain/booking"
	"oasis-backend/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const bookingColumns = `id, customer_name, customer_email, customer_phone,
	package_name, package_duration, amount_minor,
	order_id, payment_id, signature, status, created_at, updated_at`

// BookingRepository persists bookings with single-statement, row-atomic
// SQL. Concurrent writers never read-modify-write a whole collection, so
// updates cannot be lost; the payment-id unique index makes confirmed
// insertion idempotent.
type BookingRepository struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

func NewBookingRepository(db *pgxpool.Pool, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{db: db, logger: logger}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), NULLIF($9, ''), $10, $11, $12, NULL)`,
		b.ID(),
		b.Customer().Name(), b.Customer().Email(), b.Customer().Phone(),
		b.Package().Name(), b.Package().Duration(), b.Package().AmountMinor(),
		b.Payment().OrderID(), b.Payment().PaymentID(), b.Payment().Signature(),
		b.Status().String(), b.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr(r.logger, insertErrKind(err), "failed to insert booking", err)
	}
	return nil
}

// insertErrKind distinguishes a unique-index conflict, which the caller
// may treat as a replayed payment, from an actual database failure.
func insertErrKind(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return infra.KindDuplicateKey
	}
	return infra.KindDBFailure
}

// CreateConfirmed inserts a verified booking. A replay with the same
// payment id hits the unique index, inserts nothing, and the existing
// record is returned with created=false.
func (r *BookingRepository) CreateConfirmed(ctx context.Context, b *booking.Booking) (*booking.Booking, bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NULL)
		ON CONFLICT (payment_id) WHERE payment_id IS NOT NULL DO NOTHING`,
		b.ID(),
		b.Customer().Name(), b.Customer().Email(), b.Customer().Phone(),
		b.Package().Name(), b.Package().Duration(), b.Package().AmountMinor(),
		b.Payment().OrderID(), b.Payment().PaymentID(), b.Payment().Signature(),
		b.Status().String(), b.CreatedAt(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			existing, findErr := r.FindByPaymentID(ctx, b.Payment().PaymentID())
			if findErr != nil {
				return nil, false, findErr
			}
			return existing, false, nil
		}
		return nil, false, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to insert confirmed booking", err)
	}

	if tag.RowsAffected() == 0 {
		existing, findErr := r.FindByPaymentID(ctx, b.Payment().PaymentID())
		if findErr != nil {
			return nil, false, findErr
		}
		return existing, false, nil
	}
	return b, true, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	return r.scan(row)
}

func (r *BookingRepository) FindByPaymentID(ctx context.Context, paymentID string) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE payment_id = $1`, paymentID)
	return r.scan(row)
}

func (r *BookingRepository) FindByOrderID(ctx context.Context, orderID string) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE order_id = $1`, orderID)
	return r.scan(row)
}

func (r *BookingRepository) List(ctx context.Context) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		b, scanErr := r.scan(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to read booking rows", err)
	}
	return result, nil
}

// UpdateStatusFrom is a compare-and-swap: the row only changes when it is
// still in the expected prior status, so two concurrent overrides cannot
// silently overwrite each other.
func (r *BookingRepository) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to booking.Status, now time.Time) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE bookings SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2
		RETURNING `+bookingColumns,
		id, from.String(), to.String(), now,
	)
	return r.scan(row)
}

// UpdatePendingByPayment moves the pending booking for a gateway payment
// to its post-payment status. Used by the webhook receiver; repeated
// delivery finds no pending row and is a no-op.
func (r *BookingRepository) UpdatePendingByPayment(ctx context.Context, orderID, paymentID string, to booking.Status, now time.Time) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE bookings SET status = $3, payment_id = COALESCE(payment_id, NULLIF($2, '')), updated_at = $4
		WHERE (payment_id = $2 OR order_id = $1) AND status = 'pending'
		RETURNING `+bookingColumns,
		orderID, paymentID, to.String(), now,
	)
	return r.scan(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *BookingRepository) scan(row rowScanner) (*booking.Booking, error) {
	var (
		id                      uuid.UUID
		name, email, phone      string
		pkgName, pkgDuration    string
		amountMinor             int64
		orderID, paymentID, sig *string
		status                  string
		createdAt               time.Time
		updatedAt               *time.Time
	)

	err := row.Scan(&id, &name, &email, &phone, &pkgName, &pkgDuration, &amountMinor,
		&orderID, &paymentID, &sig, &status, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan booking", err)
	}

	updated := time.Time{}
	if updatedAt != nil {
		updated = *updatedAt
	}

	return booking.Reconstruct(
		id,
		booking.ReconstructCustomerDetails(name, email, phone),
		booking.ReconstructPackageDetails(pkgName, pkgDuration, amountMinor),
		booking.NewPaymentRef(deref(orderID), deref(paymentID), deref(sig)),
		booking.Status(status),
		createdAt,
		updated,
	), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
