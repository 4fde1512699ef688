// Package mailer sends the transactional emails of the booking flow over
// SMTP: booking confirmations (customer + sales copies) and contact-inquiry
// alerts (sales only). Delivery is at-most-once per call; deciding whether
// a failure is fatal belongs to the caller.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"oasis-backend/internal/domain/booking"
	"oasis-backend/internal/domain/contact"
	"oasis-backend/internal/pkg/config"
	"oasis-backend/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/wneessen/go-mail"
)

// Receipt reports the message ids of a completed send.
type Receipt struct {
	CustomerMessageID string
	SalesMessageID    string
}

type SMTPNotifier struct {
	cfg    config.SMTPConfig
	logger *slog.Logger
}

func NewSMTPNotifier(cfg config.SMTPConfig, logger *slog.Logger) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg, logger: logger}
}

// SendBookingConfirmation delivers the customer confirmation and the sales
// alert for a confirmed booking. Both messages go out in one SMTP session.
func (n *SMTPNotifier) SendBookingConfirmation(ctx context.Context, b *booking.Booking) (Receipt, error) {
	data := bookingEmailData{
		CustomerName: b.Customer().Name(),
		PackageName:  b.Package().Name(),
		Duration:     b.Package().Duration(),
		PaymentID:    b.Payment().PaymentID(),
		AmountMajor:  b.Package().AmountMinor() / booking.MinorUnitFactor,
		BookingDate:  b.CreatedAt().Format("02 Jan 2006 15:04"),
	}

	customerID := newMessageID()
	customerMsg, err := n.newMessage(
		b.Customer().Email(),
		fmt.Sprintf("Booking Confirmed - %s | Oasis Travel", b.Package().Name()),
		customerConfirmationTmpl, data, customerID,
	)
	if err != nil {
		return Receipt{}, err
	}

	salesID := newMessageID()
	salesMsg, err := n.newMessage(
		n.cfg.SalesEmail,
		fmt.Sprintf("New Booking Alert - %s", b.Package().Name()),
		salesAlertTmpl, data, salesID,
	)
	if err != nil {
		return Receipt{}, err
	}

	if err := n.send(ctx, customerMsg, salesMsg); err != nil {
		return Receipt{}, err
	}

	n.logger.Info("booking confirmation emails sent",
		"booking_id", b.ID(), "customer_message_id", customerID, "sales_message_id", salesID)
	return Receipt{CustomerMessageID: customerID, SalesMessageID: salesID}, nil
}

// SendContactNotification delivers a contact-inquiry alert to the sales
// address.
func (n *SMTPNotifier) SendContactNotification(ctx context.Context, inq *contact.Inquiry) (Receipt, error) {
	data := contactEmailData{
		Name:        inq.Name(),
		Email:       inq.Email(),
		Phone:       inq.Phone(),
		Subject:     inq.Subject(),
		Message:     inq.Message(),
		SubmittedAt: inq.SubmittedAt().Format("02 Jan 2006 15:04"),
	}

	salesID := newMessageID()
	msg, err := n.newMessage(
		n.cfg.SalesEmail,
		fmt.Sprintf("New Contact Form Submission - %s", inq.Name()),
		contactAlertTmpl, data, salesID,
	)
	if err != nil {
		return Receipt{}, err
	}

	if err := n.send(ctx, msg); err != nil {
		return Receipt{}, err
	}

	n.logger.Info("contact notification email sent", "sales_message_id", salesID)
	return Receipt{SalesMessageID: salesID}, nil
}

func (n *SMTPNotifier) newMessage(to, subject string, tmpl *template.Template, data any, messageID string) (*mail.Msg, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to render email template"), errs.ErrDelivery)
	}

	msg := mail.NewMsg()
	if err := msg.From(n.cfg.From); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid from address"), errs.ErrDelivery)
	}
	if err := msg.To(to); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "invalid recipient address"), errs.ErrDelivery)
	}
	msg.Subject(subject)
	msg.SetMessageIDWithValue(messageID)
	msg.SetBodyString(mail.TypeTextHTML, body.String())
	return msg, nil
}

func (n *SMTPNotifier) send(ctx context.Context, msgs ...*mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(n.cfg.Port),
		mail.WithTimeout(n.cfg.Timeout),
	}
	if n.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(n.cfg.User),
			mail.WithPassword(n.cfg.Password),
		)
	}
	if n.cfg.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(n.cfg.Host, opts...)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to create smtp client"), errs.ErrDelivery)
	}

	if err := client.DialAndSendWithContext(ctx, msgs...); err != nil {
		n.logger.Error("email delivery failed", "error", err)
		return errs.Mark(errs.Wrap(err, "smtp delivery failed"), errs.ErrDelivery)
	}
	return nil
}

func newMessageID() string {
	return uuid.NewString()
}
