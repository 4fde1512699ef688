package api

import (
	"errors"
	"net/http"

	reqdto "oasis-backend/internal/handler/dto/request"
	resdto "oasis-backend/internal/handler/dto/response"
	"oasis-backend/internal/handler/httperr"
	"oasis-backend/internal/pkg/errs"
	"oasis-backend/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contact commands.ContactCommands
}

func NewContactHandler(contact commands.ContactCommands) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// @Summary Submit contact inquiry
// @Description Submit a contact form inquiry; mail delivery failure does not fail the request
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Inquiry"
// @Success 200 {object} resdto.ContactResponse
// @Failure 400 {object} httperr.Response
// @Router /contact/submit [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.contact.Submit(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, validationMessage(err), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ContactResponse{
		Success: true,
		Message: "Thank you for contacting us. We will get back to you shortly.",
		Note:    result.Note,
	})
}
