package api

import (
	"errors"
	"net/http"

	"oasis-backend/internal/domain/booking"
	reqdto "oasis-backend/internal/handler/dto/request"
	resdto "oasis-backend/internal/handler/dto/response"
	"oasis-backend/internal/handler/httperr"
	"oasis-backend/internal/pkg/errs"
	"oasis-backend/internal/usecase/commands"
	"oasis-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(
	bookingCommands commands.BookingCommands,
	bookingQueries queries.BookingQueries,
) *BookingHandler {
	return &BookingHandler{bookingCommands: bookingCommands, bookingQueries: bookingQueries}
}

// @Summary Create booking
// @Description Create a pending booking without payment
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	record, err := h.bookingCommands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, validationMessage(err), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create booking", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.BookingEnvelope{
		Success: true,
		Message: "Booking created",
		Booking: resdto.FromBooking(record),
	})
}

// @Summary List bookings
// @Description List all bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BookingListEnvelope
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	records, err := h.bookingQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookings(records))
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	record, err := h.bookingQueries.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.BookingEnvelope{
		Success: true,
		Booking: resdto.FromBooking(record),
	})
}

// @Summary Get booking by order
// @Description Look up the booking created for a gateway order, for the checkout return page
// @Tags bookings
// @Produce json
// @Param orderId path string true "Gateway order ID"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 404 {object} httperr.Response
// @Router /bookings/order/{orderId} [get]
func (h *BookingHandler) GetByOrder(c *gin.Context) {
	record, err := h.bookingQueries.GetByOrderID(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.BookingEnvelope{
		Success: true,
		Booking: resdto.FromBooking(record),
	})
}

// @Summary Update booking status
// @Description Override a booking's status along the allowed transitions
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Status update"
// @Success 200 {object} resdto.BookingEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	record, err := h.bookingCommands.UpdateStatus(c.Request.Context(), id, booking.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status value", nil)
		case errors.Is(err, errs.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Status transition not allowed", nil)
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update booking", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.BookingEnvelope{
		Success: true,
		Message: "Booking status updated",
		Booking: resdto.FromBooking(record),
	})
}
