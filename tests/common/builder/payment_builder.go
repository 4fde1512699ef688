//go:build unit || e2e

package builder

import (
	"oasis-backend/internal/pkg/signature"
)

type PaymentBuilder struct {
	OrderID   string
	PaymentID string
	KeySecret string
	Booking   *BookingBuilder
}

func NewPaymentBuilder() *PaymentBuilder {
	return &PaymentBuilder{
		OrderID:   "order_N5kWkC1234abcd",
		PaymentID: "pay_N5kXqD5678efgh",
		KeySecret: "test_key_secret",
		Booking:   NewBookingBuilder(),
	}
}

func (p *PaymentBuilder) WithSecret(secret string) *PaymentBuilder {
	p.KeySecret = secret
	return p
}

// Sign produces the checkout signature a genuine gateway callback carries.
func (p *PaymentBuilder) Sign() string {
	return signature.Payment(p.KeySecret, p.OrderID, p.PaymentID)
}

func (p *PaymentBuilder) BuildVerifyMap() map[string]any {
	m := p.Booking.BuildRequestMap()
	m["razorpay_order_id"] = p.OrderID
	m["razorpay_payment_id"] = p.PaymentID
	m["razorpay_signature"] = p.Sign()
	return m
}

func (p *PaymentBuilder) BuildOrderMap() map[string]any {
	return map[string]any{
		"amount":      p.Booking.AmountMinor / 100,
		"currency":    "INR",
		"packageName": p.Booking.PackageName,
		"customerDetails": map[string]any{
			"name":  p.Booking.CustomerName,
			"email": p.Booking.Email,
			"phone": p.Booking.Phone,
		},
	}
}
