package request

import (
	"oasis-backend/internal/usecase/commands"
)

type CustomerPayload struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

type PackagePayload struct {
	Name     string `json:"name" binding:"required"`
	Duration string `json:"duration"`
	Amount   int64  `json:"amount" binding:"required"`
}

// OrderPackagePayload is the optional package context on an order request.
// The authoritative amount is the top-level one; nothing in here is
// required at binding time.
type OrderPackagePayload struct {
	Name     string `json:"name"`
	Duration string `json:"duration"`
}

type CreateOrderRequest struct {
	Amount      int64               `json:"amount" binding:"required"`
	Currency    string              `json:"currency"`
	PackageName string              `json:"packageName"`
	Customer    CustomerPayload     `json:"customerDetails" binding:"required"`
	Package     OrderPackagePayload `json:"packageDetails"`
}

func (r CreateOrderRequest) ToInput() commands.CreateOrderInput {
	name := r.PackageName
	if name == "" {
		name = r.Package.Name
	}
	return commands.CreateOrderInput{
		AmountMajor: r.Amount,
		Currency:    r.Currency,
		PackageName: name,
		Customer: commands.CustomerInput{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
	}
}

type VerifyPaymentRequest struct {
	OrderID   string          `json:"razorpay_order_id" binding:"required"`
	PaymentID string          `json:"razorpay_payment_id" binding:"required"`
	Signature string          `json:"razorpay_signature" binding:"required"`
	Customer  CustomerPayload `json:"customerDetails" binding:"required"`
	Package   PackagePayload  `json:"packageDetails" binding:"required"`
}

func (r VerifyPaymentRequest) ToInput() commands.VerifyPaymentInput {
	return commands.VerifyPaymentInput{
		OrderID:   r.OrderID,
		PaymentID: r.PaymentID,
		Signature: r.Signature,
		Customer: commands.CustomerInput{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
		Package: commands.PackageInput{
			Name:        r.Package.Name,
			Duration:    r.Package.Duration,
			AmountMajor: r.Package.Amount,
		},
	}
}

type RefundRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
	Amount    int64  `json:"amount"`
	Reason    string `json:"reason"`
}
