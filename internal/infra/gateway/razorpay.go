// Package gateway is a thin adapter over the Razorpay REST API: order
// creation, payment lookup and refunds. Signature verification lives in
// internal/pkg/signature, not here.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"oasis-backend/internal/pkg/config"
	"oasis-backend/internal/pkg/errs"
)

type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // minor units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type Payment struct {
	ID        string `json:"id"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	Status    string `json:"status"`
	Method    string `json:"method"`
	OrderID   string `json:"order_id"`
	CreatedAt int64  `json:"created_at"`
}

type Refund struct {
	ID        string `json:"id"`
	PaymentID string `json:"payment_id"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

type OrderRequest struct {
	Amount   int64             `json:"amount"` // minor units
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type apiError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// Client holds the key pair and a bounded-timeout HTTP client. The key
// secret never leaves this package except inside the Authorization header.
type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	http      *http.Client
	logger    *slog.Logger
}

func NewClient(cfg config.RazorpayConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		http:      &http.Client{Timeout: cfg.Timeout},
		logger:    logger,
	}
}

// KeyID is the public identifier the browser checkout needs. The secret
// has no accessor.
func (c *Client) KeyID() string {
	return c.keyID
}

func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodPost, "/orders", req, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) FetchPayment(ctx context.Context, paymentID string) (*Payment, error) {
	var payment Payment
	if err := c.do(ctx, http.MethodGet, "/payments/"+paymentID, nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (c *Client) Refund(ctx context.Context, paymentID string, amountMinor int64, notes map[string]string) (*Refund, error) {
	body := map[string]any{"amount": amountMinor}
	if len(notes) > 0 {
		body["notes"] = notes
	}

	var refund Refund
	if err := c.do(ctx, http.MethodPost, "/payments/"+paymentID+"/refund", body, &refund); err != nil {
		return nil, err
	}
	return &refund, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errs.Wrap(err, "failed to encode gateway request")
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errs.Wrap(err, "failed to build gateway request")
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "gateway request failed"), errs.ErrGateway)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to read gateway response"), errs.ErrGateway)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		_ = json.Unmarshal(raw, &apiErr)
		c.logger.Error("gateway rejected request",
			"method", method, "path", path,
			"status", resp.StatusCode, "code", apiErr.Error.Code)
		return errs.Mark(
			errs.New(fmt.Sprintf("gateway returned %d: %s", resp.StatusCode, apiErr.Error.Description)),
			errs.ErrGateway,
		)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return errs.Mark(errs.Wrap(err, "failed to decode gateway response"), errs.ErrGateway)
		}
	}
	return nil
}
