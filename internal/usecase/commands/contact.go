package commands

import (
	"context"
	"log/slog"

	"oasis-backend/internal/domain/contact"
	"oasis-backend/internal/pkg/clock"
	"oasis-backend/internal/pkg/errs"
)

type SubmitInquiryInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

type SubmitInquiryResult struct {
	Inquiry *contact.Inquiry
	// Note is set when the alert mail could not be sent. Submission still
	// succeeds; the note tells the caller delivery will happen out of band.
	Note string
}

type ContactCommands interface {
	Submit(ctx context.Context, in SubmitInquiryInput) (*SubmitInquiryResult, error)
}

type contactCommandsImpl struct {
	notifier Notifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewContactCommands(notifier Notifier, clk clock.Clock, logger *slog.Logger) ContactCommands {
	return &contactCommandsImpl{notifier: notifier, clock: clk, logger: logger}
}

func (c *contactCommandsImpl) Submit(ctx context.Context, in SubmitInquiryInput) (*SubmitInquiryResult, error) {
	inq, err := contact.NewInquiry(in.Name, in.Email, in.Phone, in.Subject, in.Message, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	result := &SubmitInquiryResult{Inquiry: inq}
	if _, err := c.notifier.SendContactNotification(ctx, inq); err != nil {
		c.logger.Error("contact alert mail failed", "error", err, "email", inq.Email())
		result.Note = emailPendingNote
	}
	return result, nil
}
