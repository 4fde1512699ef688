package api

import (
	"errors"
	"net/http"

	reqdto "oasis-backend/internal/handler/dto/request"
	resdto "oasis-backend/internal/handler/dto/response"
	"oasis-backend/internal/handler/httperr"
	"oasis-backend/internal/pkg/errs"
	"oasis-backend/internal/usecase/commands"
	"oasis-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const webhookSignatureHeader = "X-Razorpay-Signature"

type PaymentHandler struct {
	payments commands.PaymentCommands
	webhooks commands.WebhookCommands
	status   queries.PaymentQueries
}

func NewPaymentHandler(
	payments commands.PaymentCommands,
	webhooks commands.WebhookCommands,
	status queries.PaymentQueries,
) *PaymentHandler {
	return &PaymentHandler{payments: payments, webhooks: webhooks, status: status}
}

// @Summary Create payment order
// @Description Create a gateway order for browser checkout
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 200 {object} resdto.CreateOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /payments/create-order [post]
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	handle, err := h.payments.CreateOrder(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, validationMessage(err), nil)
		case errors.Is(err, errs.ErrGateway):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create payment order", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderHandle(handle))
}

// @Summary Verify payment
// @Description Verify the checkout signature and persist the booking
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.VerifyPaymentRequest true "Verification request"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /payments/verify-payment [post]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req reqdto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.payments.VerifyPayment(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrVerification):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Payment verification failed", nil)
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, validationMessage(err), nil)
		case errors.Is(err, errs.ErrPersistence):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to save booking", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	message := "Payment verified and booking confirmed"
	if result.Replayed {
		message = "Payment already verified"
	}
	c.JSON(http.StatusOK, resdto.BookingEnvelope{
		Success: true,
		Message: message,
		Note:    result.Note,
		Booking: resdto.FromBooking(result.Booking),
	})
}

// @Summary Payment webhook
// @Description Receive gateway webhook events over the raw request body
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	// Signature is computed over the exact bytes on the wire; the body must
	// not pass through JSON binding first.
	rawBody, err := c.GetRawData()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unable to read request body", nil)
		return
	}

	ack, err := h.webhooks.Handle(
		c.Request.Context(),
		rawBody,
		c.GetHeader(webhookSignatureHeader),
		c.GetHeader("X-Razorpay-Event-Id"),
	)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrWebhookNotConfigured):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Webhook secret not configured", nil)
		case errors.Is(err, errs.ErrVerification):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid webhook signature", nil)
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed webhook payload", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to process webhook", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.WebhookAckResponse{
		Success:   true,
		Event:     ack.Event,
		Duplicate: ack.Duplicate,
	})
}

// @Summary Refund payment
// @Description Initiate a refund for a captured payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RefundRequest true "Refund request"
// @Success 200 {object} resdto.RefundResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /payments/refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	var req reqdto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.payments.Refund(c.Request.Context(), req.PaymentID, req.Amount, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, validationMessage(err), nil)
		case errors.Is(err, errs.ErrGateway):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to initiate refund", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRefund(result))
}

// @Summary Payment status
// @Description Look up a payment directly from the gateway
// @Tags payments
// @Produce json
// @Param paymentId path string true "Payment ID"
// @Success 200 {object} resdto.PaymentStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /payments/status/{paymentId} [get]
func (h *PaymentHandler) PaymentStatus(c *gin.Context) {
	status, err := h.status.GetStatus(c.Request.Context(), c.Param("paymentId"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Payment ID is required", nil)
		case errors.Is(err, errs.ErrGateway):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to fetch payment", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentStatus(status))
}
