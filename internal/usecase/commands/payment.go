package commands

import (
	"context"
	"log/slog"

	"oasis-backend/internal/domain/booking"
	"oasis-backend/internal/infra"
	"oasis-backend/internal/infra/events"
	"oasis-backend/internal/infra/gateway"
	"oasis-backend/internal/pkg/clock"
	"oasis-backend/internal/pkg/config"
	"oasis-backend/internal/pkg/errs"
	"oasis-backend/internal/pkg/signature"

	"github.com/google/uuid"
)

// emailPendingNote is attached to a successful verification whose
// confirmation email could not be delivered. Payment correctness is
// decoupled from notification delivery; the note is advisory only.
const emailPendingNote = "Email notification failed - will be sent manually"

type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

type PackageInput struct {
	Name        string
	Duration    string
	AmountMajor int64
}

type CreateOrderInput struct {
	AmountMajor int64
	Currency    string
	PackageName string
	Customer    CustomerInput
}

// OrderHandle is what the browser checkout needs; it carries the public
// key id and never any secret material.
type OrderHandle struct {
	ID       string
	Amount   int64 // minor units
	Currency string
	Receipt  string
	KeyID    string
}

type VerifyPaymentInput struct {
	OrderID   string
	PaymentID string
	Signature string
	Customer  CustomerInput
	Package   PackageInput
}

type VerifyPaymentResult struct {
	Booking  *booking.Booking
	Replayed bool   // same payment id was already verified
	Note     string // advisory, set when confirmation email delivery failed
}

type RefundResult struct {
	ID        string
	PaymentID string
	Amount    int64 // minor units
	Status    string
}

type PaymentCommands interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*OrderHandle, error)
	VerifyPayment(ctx context.Context, in VerifyPaymentInput) (*VerifyPaymentResult, error)
	Refund(ctx context.Context, paymentID string, amountMajor int64, reason string) (*RefundResult, error)
}

type paymentCommandsImpl struct {
	gw        PaymentGateway
	bookings  BookingRepository
	notifier  Notifier
	publisher events.Publisher
	clock     clock.Clock
	keySecret string
	bounds    booking.AmountBounds
	currency  string
	logger    *slog.Logger
}

func NewPaymentCommands(
	gw PaymentGateway,
	bookings BookingRepository,
	notifier Notifier,
	publisher events.Publisher,
	clk clock.Clock,
	razorpayCfg config.RazorpayConfig,
	paymentCfg config.PaymentConfig,
	logger *slog.Logger,
) PaymentCommands {
	return &paymentCommandsImpl{
		gw:        gw,
		bookings:  bookings,
		notifier:  notifier,
		publisher: publisher,
		clock:     clk,
		keySecret: razorpayCfg.KeySecret,
		bounds:    booking.AmountBounds{Min: paymentCfg.MinAmount, Max: paymentCfg.MaxAmount},
		currency:  paymentCfg.Currency,
		logger:    logger,
	}
}

func (p *paymentCommandsImpl) CreateOrder(ctx context.Context, in CreateOrderInput) (*OrderHandle, error) {
	if err := p.bounds.Validate(in.AmountMajor); err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	customer, err := booking.NewCustomerDetails(in.Customer.Name, in.Customer.Email, in.Customer.Phone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if in.PackageName == "" {
		return nil, errs.Mark(errs.New("package name is required"), errs.ErrValidation)
	}

	currency := in.Currency
	if currency == "" {
		currency = p.currency
	}

	order, err := p.gw.CreateOrder(ctx, gateway.OrderRequest{
		Amount:   booking.ToMinorUnits(in.AmountMajor),
		Currency: currency,
		Receipt:  "receipt_" + uuid.NewString(),
		Notes: map[string]string{
			"package_name":   in.PackageName,
			"customer_name":  customer.Name(),
			"customer_email": customer.Email(),
			"customer_phone": customer.Phone(),
		},
	})
	if err != nil {
		return nil, err
	}

	return &OrderHandle{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
		KeyID:    p.gw.KeyID(),
	}, nil
}

// VerifyPayment is the sole gate between a client's payment claim and a
// confirmed booking: the recomputed HMAC must match before anything is
// persisted or mailed.
func (p *paymentCommandsImpl) VerifyPayment(ctx context.Context, in VerifyPaymentInput) (*VerifyPaymentResult, error) {
	customer, err := booking.NewCustomerDetails(in.Customer.Name, in.Customer.Email, in.Customer.Phone)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	pkg, err := booking.NewPackageDetails(in.Package.Name, in.Package.Duration, booking.ToMinorUnits(in.Package.AmountMajor))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	if !signature.VerifyPayment(p.keySecret, in.OrderID, in.PaymentID, in.Signature) {
		p.logger.Warn("payment signature verification failed",
			"security_event", true,
			"order_id", in.OrderID,
			"payment_id", in.PaymentID,
		)
		return nil, errs.ErrVerification
	}

	now := p.clock.Now()
	candidate := booking.NewConfirmed(customer, pkg,
		booking.NewPaymentRef(in.OrderID, in.PaymentID, in.Signature), now)

	stored, created, err := p.bookings.CreateConfirmed(ctx, candidate)
	if err != nil {
		// The signature was valid; failing to record the booking must be
		// loud so the client does not assume a partial commit.
		return nil, errs.Mark(err, errs.ErrPersistence)
	}

	result := &VerifyPaymentResult{Booking: stored, Replayed: !created}
	if !created {
		// Same payment id verified before: nothing new to persist or mail.
		return result, nil
	}

	p.publisher.PublishBookingEvent(ctx, events.TypeBookingConfirmed, stored)

	if _, mailErr := p.notifier.SendBookingConfirmation(ctx, stored); mailErr != nil {
		p.logger.Warn("confirmation email delivery failed",
			"booking_id", stored.ID(), "error", mailErr)
		result.Note = emailPendingNote
	}
	return result, nil
}

// Refund delegates to the gateway, then records the refund locally as a
// best effort: the gateway remains the source of truth for refund state.
func (p *paymentCommandsImpl) Refund(ctx context.Context, paymentID string, amountMajor int64, reason string) (*RefundResult, error) {
	if paymentID == "" {
		return nil, errs.Mark(errs.New("payment id is required"), errs.ErrValidation)
	}
	if err := p.bounds.Validate(amountMajor); err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	if reason == "" {
		reason = "Customer requested refund"
	}

	refund, err := p.gw.Refund(ctx, paymentID, booking.ToMinorUnits(amountMajor), map[string]string{"reason": reason})
	if err != nil {
		return nil, err
	}

	p.recordRefund(ctx, paymentID)

	return &RefundResult{
		ID:        refund.ID,
		PaymentID: paymentID,
		Amount:    refund.Amount,
		Status:    refund.Status,
	}, nil
}

func (p *paymentCommandsImpl) recordRefund(ctx context.Context, paymentID string) {
	b, err := p.bookings.FindByPaymentID(ctx, paymentID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			p.logger.Warn("could not load booking for refund record", "payment_id", paymentID, "error", err)
		}
		return
	}

	updated, err := p.bookings.UpdateStatusFrom(ctx, b.ID(), booking.StatusConfirmed, booking.StatusRefunded, p.clock.Now())
	if err != nil {
		p.logger.Warn("could not record refunded status", "booking_id", b.ID(), "error", err)
		return
	}
	p.publisher.PublishBookingEvent(ctx, events.TypeStatusChanged, updated)
}
