package response

import (
	"oasis-backend/internal/usecase/commands"
	"oasis-backend/internal/usecase/queries"
)

type OrderPayload struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type CreateOrderResponse struct {
	Success bool         `json:"success"`
	Order   OrderPayload `json:"order"`
	KeyID   string       `json:"key_id"`
}

func FromOrderHandle(h *commands.OrderHandle) CreateOrderResponse {
	return CreateOrderResponse{
		Success: true,
		Order: OrderPayload{
			ID:       h.ID,
			Amount:   h.Amount,
			Currency: h.Currency,
			Receipt:  h.Receipt,
		},
		KeyID: h.KeyID,
	}
}

type RefundResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Refund  struct {
		ID        string `json:"id"`
		PaymentID string `json:"payment_id"`
		Amount    int64  `json:"amount"`
		Status    string `json:"status"`
	} `json:"refund"`
}

func FromRefund(r *commands.RefundResult) RefundResponse {
	resp := RefundResponse{Success: true, Message: "Refund initiated successfully"}
	resp.Refund.ID = r.ID
	resp.Refund.PaymentID = r.PaymentID
	resp.Refund.Amount = r.Amount
	resp.Refund.Status = r.Status
	return resp
}

type PaymentStatusResponse struct {
	Success bool `json:"success"`
	Payment struct {
		ID       string `json:"id"`
		OrderID  string `json:"order_id"`
		Status   string `json:"status"`
		Method   string `json:"method,omitempty"`
		Amount   int64  `json:"amount"`
		Currency string `json:"currency"`
	} `json:"payment"`
}

func FromPaymentStatus(s *queries.PaymentStatus) PaymentStatusResponse {
	resp := PaymentStatusResponse{Success: true}
	resp.Payment.ID = s.PaymentID
	resp.Payment.OrderID = s.OrderID
	resp.Payment.Status = s.Status
	resp.Payment.Method = s.Method
	resp.Payment.Amount = s.AmountMinor
	resp.Payment.Currency = s.Currency
	return resp
}

type WebhookAckResponse struct {
	Success   bool   `json:"success"`
	Event     string `json:"event,omitempty"`
	Duplicate bool   `json:"duplicate,omitempty"`
}
