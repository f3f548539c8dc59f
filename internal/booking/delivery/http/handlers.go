package http

import (
	"github.com/gin-gonic/gin"

	"booking-widget/pkg/response"
)

// CreateEvent godoc
// @Summary     Book an event
// @Description Validates the request and inserts one event into the shared calendar.
// @Tags        Booking
// @Accept      json
// @Produce     json
// @Param       body body     createEventReq true "Event request"
// @Success     200  {object} createEventResp
// @Failure     400  {object} response.ErrorResp "Missing fields or invalid dateTime"
// @Failure     429  {object} response.ErrorResp "Too many requests"
// @Failure     500  {object} response.ErrorResp "Failed to create event"
// @Router      /api/event [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateEventReq(c)
	if err != nil {
		h.l.Warnf(ctx, "booking.http.CreateEvent: bind: %v", err)
		response.InvalidBody(c)
		return
	}

	output, err := h.uc.CreateEvent(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "booking.http.CreateEvent", err)
		return
	}

	response.OK(c, h.newCreateEventResp(output))
}

// SendEmail godoc
// @Summary     Send a booking confirmation
// @Description Sends the templated confirmation email. Called by the client after a successful booking.
// @Tags        Mail
// @Accept      json
// @Produce     json
// @Param       body body     sendEmailReq true "Notification"
// @Success     200  {object} response.MessageResp
// @Failure     400  {object} response.ErrorResp "Missing required fields: to, eventName"
// @Failure     429  {object} response.ErrorResp "Too many requests"
// @Failure     500  {object} response.ErrorResp "Failed to send email"
// @Router      /mail/send-email [POST]
func (h *handler) SendEmail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendEmailReq(c)
	if err != nil {
		h.l.Warnf(ctx, "booking.http.SendEmail: bind: %v", err)
		response.InvalidBody(c)
		return
	}

	if err := h.uc.SendNotification(ctx, req.toInput()); err != nil {
		h.respondError(c, "booking.http.SendEmail", err)
		return
	}

	response.Message(c, messageEmailSent)
}
