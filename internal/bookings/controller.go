package bookings

import (
	"errors"
	"io"
	"net/http"

	"catering/internal/shared/utils/response"
	"catering/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// BookEvent handles POST /api/book-event
func (c *Controller) BookEvent(ctx *gin.Context) {
	log := logger.FromContext(ctx.Request.Context())

	var req BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) || errors.Is(err, io.EOF) {
			log.Warn("Booking rejected", "reason", err.Error())
			response.RespondMessage(ctx, http.StatusBadRequest, MessageMissingDetails)
			return
		}

		log.Warn("Invalid booking payload", "error", err.Error())
		response.RespondError(ctx, http.StatusBadRequest, MessageInvalidPayload, err)
		return
	}

	err := c.service.BookEvent(ctx.Request.Context(), req)
	if err == nil {
		response.RespondMessage(ctx, http.StatusOK, MessageBookingConfirmed)
		return
	}

	if errors.Is(err, ErrMissingDetails) {
		response.RespondMessage(ctx, http.StatusBadRequest, MessageMissingDetails)
		return
	}

	// Surface the transport's own message, not our wrapping
	var derr *DeliveryError
	if errors.As(err, &derr) {
		response.RespondError(ctx, http.StatusInternalServerError, MessageSendFailed, derr.Err)
		return
	}

	log.Error("Booking failed", "error", err.Error())
	response.RespondError(ctx, http.StatusInternalServerError, MessageSendFailed, err)
}
