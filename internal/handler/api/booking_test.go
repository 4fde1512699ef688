//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"oasis-backend/internal/domain/booking"
	"oasis-backend/internal/handler/api"
	resdto "oasis-backend/internal/handler/dto/response"
	"oasis-backend/internal/pkg/errs"
	"oasis-backend/tests/common/builder"
	"oasis-backend/tests/common/httptest"
	"oasis-backend/tests/common/testutil"
	commandsmock "oasis-backend/tests/mock/commands"
	queriesmock "oasis-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	ctrl         *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.ctrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.ctrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.ctrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/api/bookings", s.handler.Create)
	s.router.GET("/api/bookings", s.handler.List)
	s.router.GET("/api/bookings/order/:orderId", s.handler.GetByOrder)
	s.router.GET("/api/bookings/:id", s.handler.Get)
	s.router.PATCH("/api/bookings/:id/status", s.handler.UpdateStatus)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"

	s.Run("success: 201 with the pending booking", func() {
		body := builder.NewBookingBuilder().BuildRequestMap()
		record := builder.NewBookingBuilder().WithStatus(booking.StatusPending).WithPayment("", "").Build()

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(record, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.True(response.Success)
		s.Equal("Booking created", response.Message)
		s.Equal("pending", response.Booking.Status)
	})

	s.Run("error: 400 on missing customer details", func() {
		body := testutil.Clone(builder.NewBookingBuilder().BuildRequestMap())
		testutil.Field("customerDetails", nil)(body)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 when the command rejects the input", func() {
		body := builder.NewBookingBuilder().BuildRequestMap()

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("phone must be 10 digits"), errs.ErrValidation)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "phone")
	})

	s.Run("error: 500 when storage fails", func() {
		body := builder.NewBookingBuilder().BuildRequestMap()

		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("insert failed"), errs.ErrPersistence)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to create booking")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	url := "/api/bookings"

	s.Run("success: bookings with count", func() {
		records := []*booking.Booking{
			builder.NewBookingBuilder().Build(),
			builder.NewBookingBuilder().WithStatus(booking.StatusPending).WithPayment("", "").Build(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(records, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.BookingListEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal(2, response.Count)
		s.Len(response.Bookings, 2)
	})

	s.Run("success: empty list stays an array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*booking.Booking{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.BookingListEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(0, response.Count)
		s.NotNil(response.Bookings)
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(nil, errs.Mark(errs.New("query failed"), errs.ErrPersistence)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to list bookings")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("success: booking by id", func() {
		record := builder.NewBookingBuilder().Build()
		s.mockQueries.EXPECT().Get(gomock.Any(), record.ID()).Return(record, nil).Times(1)

		url := fmt.Sprintf("/api/bookings/%s", record.ID())
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(record.ID(), response.Booking.ID)
	})

	s.Run("error: 404 when missing", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Get(gomock.Any(), id).Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 on a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})
}

func (s *BookingHandlerTestSuite) TestGetByOrder() {
	s.Run("success: booking for a gateway order", func() {
		record := builder.NewBookingBuilder().Build()
		s.mockQueries.EXPECT().GetByOrderID(gomock.Any(), "order_N5kWkC1234abcd").
			Return(record, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/order/order_N5kWkC1234abcd", nil, "")

		var response resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(record.ID(), response.Booking.ID)
		s.Equal("order_N5kWkC1234abcd", response.Booking.OrderID)
	})

	s.Run("error: 404 when no booking exists for the order", func() {
		s.mockQueries.EXPECT().GetByOrderID(gomock.Any(), "order_unknown").
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/bookings/order/order_unknown", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	s.Run("success: status override applied", func() {
		record := builder.NewBookingBuilder().WithStatus(booking.StatusCancelled).Build()
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), record.ID(), booking.StatusCancelled).
			Return(record, nil).Times(1)

		url := fmt.Sprintf("/api/bookings/%s/status", record.ID())
		body := map[string]any{"status": "cancelled"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "")

		var response resdto.BookingEnvelope
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Booking.Status)
	})

	s.Run("error: 400 on an unknown status", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, booking.Status("archived")).
			Return(nil, errs.ErrValidation).Times(1)

		url := fmt.Sprintf("/api/bookings/%s/status", id)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "archived"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown status value")
	})

	s.Run("error: 400 on a disallowed transition", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, booking.StatusPending).
			Return(nil, errs.ErrInvalidTransition).Times(1)

		url := fmt.Sprintf("/api/bookings/%s/status", id)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "pending"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Status transition not allowed")
	})

	s.Run("error: 404 when the booking is missing", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().UpdateStatus(gomock.Any(), id, booking.StatusConfirmed).
			Return(nil, errs.ErrBookingNotFound).Times(1)

		url := fmt.Sprintf("/api/bookings/%s/status", id)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "confirmed"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
