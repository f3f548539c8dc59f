package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"booking-widget/internal/booking"
	"booking-widget/pkg/response"
)

// respondError translates use-case errors into HTTP responses.
// Calendar provider internals never reach the client. Provider failures are
// already logged by the gateway with their full detail.
func (h *handler) respondError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	if vErr, ok := booking.IsValidation(err); ok {
		h.l.Warnf(ctx, "%s: rejected: %v", op, vErr)
		response.Error(c, vErr)
		return
	}

	var pErr *booking.ProviderError
	if !errors.As(err, &pErr) {
		h.l.Errorf(ctx, "%s: %v", op, err)
		response.InternalError(c, "", "")
		return
	}

	switch {
	case errors.Is(err, booking.ErrCalendarInsert):
		response.InternalError(c, errorCreateEvent, "")
	case errors.Is(err, booking.ErrMailSend):
		response.InternalError(c, errorSendEmail, pErr.Message)
	default:
		response.InternalError(c, "", "")
	}
}
