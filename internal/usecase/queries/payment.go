package queries

import (
	"context"

	"oasis-backend/internal/infra/gateway"
	"oasis-backend/internal/pkg/errs"
)

// PaymentReader is the read-only slice of the gateway port.
type PaymentReader interface {
	FetchPayment(ctx context.Context, paymentID string) (*gateway.Payment, error)
}

type PaymentStatus struct {
	PaymentID   string
	OrderID     string
	Status      string
	Method      string
	AmountMinor int64
	Currency    string
}

type PaymentQueries interface {
	GetStatus(ctx context.Context, paymentID string) (*PaymentStatus, error)
}

type paymentQueriesImpl struct {
	gateway PaymentReader
}

func NewPaymentQueries(gw PaymentReader) PaymentQueries {
	return &paymentQueriesImpl{gateway: gw}
}

// GetStatus is a pass-through to the provider; the provider record is the
// source of truth for payment state, not the local booking row.
func (q *paymentQueriesImpl) GetStatus(ctx context.Context, paymentID string) (*PaymentStatus, error) {
	if paymentID == "" {
		return nil, errs.Mark(errs.New("payment id is required"), errs.ErrValidation)
	}

	payment, err := q.gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	return &PaymentStatus{
		PaymentID:   payment.ID,
		OrderID:     payment.OrderID,
		Status:      payment.Status,
		Method:      payment.Method,
		AmountMinor: payment.Amount,
		Currency:    payment.Currency,
	}, nil
}
