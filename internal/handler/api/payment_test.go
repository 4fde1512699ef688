//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"oasis-backend/internal/handler/api"
	resdto "oasis-backend/internal/handler/dto/response"
	"oasis-backend/internal/pkg/errs"
	"oasis-backend/internal/usecase/commands"
	"oasis-backend/internal/usecase/queries"
	"oasis-backend/tests/common/builder"
	"oasis-backend/tests/common/httptest"
	"oasis-backend/tests/common/testutil"
	commandsmock "oasis-backend/tests/mock/commands"
	queriesmock "oasis-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	ctrl         *gomock.Controller
	mockPayments *commandsmock.MockPaymentCommands
	mockWebhooks *commandsmock.MockWebhookCommands
	mockStatus   *queriesmock.MockPaymentQueries
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.ctrl = gomock.NewController(s.T())
	s.mockPayments = commandsmock.NewMockPaymentCommands(s.ctrl)
	s.mockWebhooks = commandsmock.NewMockWebhookCommands(s.ctrl)
	s.mockStatus = queriesmock.NewMockPaymentQueries(s.ctrl)
	s.handler = api.NewPaymentHandler(s.mockPayments, s.mockWebhooks, s.mockStatus)

	s.router.POST("/api/payments/create-order", s.handler.CreateOrder)
	s.router.POST("/api/payments/verify-payment", s.handler.VerifyPayment)
	s.router.POST("/api/payments/webhook", s.handler.Webhook)
	s.router.GET("/api/payments/status/:paymentId", s.handler.PaymentStatus)
	s.router.POST("/api/payments/refund", s.handler.Refund)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestCreateOrder() {
	url := "/api/payments/create-order"

	s.Run("success: returns the order handle with the public key id", func() {
		body := builder.NewPaymentBuilder().BuildOrderMap()
		s.mockPayments.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(&commands.OrderHandle{
				ID:       "order_created",
				Amount:   2500000,
				Currency: "INR",
				Receipt:  "receipt_x",
				KeyID:    "rzp_test_key",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.CreateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("order_created", response.Order.ID)
		s.Equal("rzp_test_key", response.KeyID)
	})

	s.Run("success: top-level packageName reaches the command", func() {
		body := map[string]any{
			"amount":      25000,
			"currency":    "INR",
			"packageName": "Dubai Delight",
			"customerDetails": map[string]any{
				"name":  "Asha Verma",
				"email": "asha@example.com",
				"phone": "9876543210",
			},
		}
		s.mockPayments.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreateOrderInput) (*commands.OrderHandle, error) {
				s.Equal("Dubai Delight", in.PackageName)
				s.Equal(int64(25000), in.AmountMajor)
				return &commands.OrderHandle{ID: "order_x", Amount: 2500000, Currency: "INR", KeyID: "rzp_test_key"}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.CreateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
	})

	s.Run("success: nested packageDetails name is a fallback", func() {
		body := map[string]any{
			"amount": 25000,
			"customerDetails": map[string]any{
				"name":  "Asha Verma",
				"email": "asha@example.com",
				"phone": "9876543210",
			},
			"packageDetails": map[string]any{"name": "Golden Triangle Tour"},
		}
		s.mockPayments.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreateOrderInput) (*commands.OrderHandle, error) {
				s.Equal("Golden Triangle Tour", in.PackageName)
				return &commands.OrderHandle{ID: "order_y", Amount: 2500000, Currency: "INR", KeyID: "rzp_test_key"}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.CreateOrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("error: 400 on missing fields", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing amount", mutate: testutil.Field("amount", nil)},
			{name: "missing customer", mutate: testutil.Field("customerDetails", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.Clone(builder.NewPaymentBuilder().BuildOrderMap())
				tc.mutate(body)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 on validation failure from the command", func() {
		body := builder.NewPaymentBuilder().BuildOrderMap()
		s.mockPayments.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("amount must be between 1000 and 1000000"), errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "amount")
	})

	s.Run("error: 500 when the gateway is down", func() {
		body := builder.NewPaymentBuilder().BuildOrderMap()
		s.mockPayments.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("status 502"), errs.ErrGateway)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to create payment order")
	})
}

func (s *PaymentHandlerTestSuite) TestVerifyPayment() {
	url := "/api/payments/verify-payment"

	s.Run("success: confirmed booking in the envelope", func() {
		body := builder.NewPaymentBuilder().BuildVerifyMap()
		stored := builder.NewBookingBuilder().Build()

		s.mockPayments.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
			Return(&commands.VerifyPaymentResult{Booking: stored}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("confirmed", response.Booking.Status)
		s.Empty(response.Note)
	})

	s.Run("success: advisory note when the confirmation mail failed", func() {
		body := builder.NewPaymentBuilder().BuildVerifyMap()
		stored := builder.NewBookingBuilder().Build()

		s.mockPayments.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
			Return(&commands.VerifyPaymentResult{
				Booking: stored,
				Note:    "Email notification failed - will be sent manually",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Contains(response.Note, "will be sent manually")
	})

	s.Run("error: 400 on a rejected signature", func() {
		body := builder.NewPaymentBuilder().BuildVerifyMap()

		s.mockPayments.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrVerification).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Payment verification failed")
	})

	s.Run("error: 400 on missing signature fields", func() {
		body := testutil.Clone(builder.NewPaymentBuilder().BuildVerifyMap())
		testutil.Field("razorpay_signature", nil)(body)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 500 when persistence failed after a valid signature", func() {
		body := builder.NewPaymentBuilder().BuildVerifyMap()

		s.mockPayments.EXPECT().VerifyPayment(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("insert failed"), errs.ErrPersistence)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to save booking")
	})
}

func (s *PaymentHandlerTestSuite) TestWebhook() {
	url := "/api/payments/webhook"

	s.Run("success: raw body and signature header reach the command verbatim", func() {
		rawBody := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","order_id":"order_1"}}}}`)

		s.mockWebhooks.EXPECT().Handle(gomock.Any(), rawBody, "sig-header", "evt_1").
			Return(&commands.Ack{Event: "payment.captured", Applied: true}, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, rawBody, map[string]string{
			"X-Razorpay-Signature": "sig-header",
			"X-Razorpay-Event-Id":  "evt_1",
		})

		var response resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("payment.captured", response.Event)
	})

	s.Run("error: 400 on a bad webhook signature", func() {
		rawBody := []byte(`{}`)

		s.mockWebhooks.EXPECT().Handle(gomock.Any(), rawBody, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrVerification).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, rawBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid webhook signature")
	})

	s.Run("error: 500 when the receiver has no secret", func() {
		rawBody := []byte(`{}`)

		s.mockWebhooks.EXPECT().Handle(gomock.Any(), rawBody, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrWebhookNotConfigured).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, rawBody, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Webhook secret not configured")
	})
}

func (s *PaymentHandlerTestSuite) TestPaymentStatus() {
	s.Run("success: passes the gateway record through", func() {
		s.mockStatus.EXPECT().GetStatus(gomock.Any(), "pay_1").
			Return(&queries.PaymentStatus{
				PaymentID:   "pay_1",
				OrderID:     "order_1",
				Status:      "captured",
				Method:      "upi",
				AmountMinor: 2500000,
				Currency:    "INR",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/status/pay_1", nil, "")

		var response resdto.PaymentStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("captured", response.Payment.Status)
		s.Equal(int64(2500000), response.Payment.Amount)
	})

	s.Run("error: 500 when the gateway lookup fails", func() {
		s.mockStatus.EXPECT().GetStatus(gomock.Any(), "pay_down").
			Return(nil, errs.Mark(errs.New("status 503"), errs.ErrGateway)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/payments/status/pay_down", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to fetch payment")
	})
}

func (s *PaymentHandlerTestSuite) TestRefund() {
	url := "/api/payments/refund"

	s.Run("success: refund envelope", func() {
		body := map[string]any{"payment_id": "pay_1", "amount": 25000, "reason": "trip cancelled"}

		s.mockPayments.EXPECT().Refund(gomock.Any(), "pay_1", int64(25000), "trip cancelled").
			Return(&commands.RefundResult{ID: "rfnd_1", PaymentID: "pay_1", Amount: 2500000, Status: "processed"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.RefundResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("rfnd_1", response.Refund.ID)
	})

	s.Run("error: 400 without a payment id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"amount": 25000}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}
