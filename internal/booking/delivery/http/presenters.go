package http

import "booking-widget/internal/booking"

const (
	messageEventCreated = "Event added to calendar"
	messageEmailSent    = "Email sent successfully"

	errorCreateEvent = "Failed to create event"
	errorSendEmail   = "Failed to send email"
)

// --- Request DTOs ---

type eventTimeReq struct {
	DateTime string `json:"dateTime" example:"2025-01-10T09:00:00+05:30"`
	TimeZone string `json:"timeZone" example:"Asia/Kolkata"`
}

type createEventReq struct {
	Summary     string       `json:"summary" example:"Demo"`
	Description string       `json:"description"`
	Start       eventTimeReq `json:"start"`
	End         eventTimeReq `json:"end"`
	ClientEmail string       `json:"client_email" example:"visitor@example.com"`
	// Accepted for clients that send the camelCase key.
	ClientEmailAlt string `json:"clientEmail" swaggerignore:"true"`
}

func (r createEventReq) toInput() booking.CreateEventInput {
	email := r.ClientEmail
	if email == "" {
		email = r.ClientEmailAlt
	}
	return booking.CreateEventInput{
		Request: booking.EventRequest{
			Summary:     r.Summary,
			Description: r.Description,
			Start:       booking.EventTime{DateTime: r.Start.DateTime, TimeZone: r.Start.TimeZone},
			End:         booking.EventTime{DateTime: r.End.DateTime, TimeZone: r.End.TimeZone},
			ClientEmail: email,
		},
	}
}

type sendEmailReq struct {
	To          string `json:"to" example:"visitor@example.com"`
	EventName   string `json:"eventName" example:"Demo"`
	Date        string `json:"date" example:"10/1/2025"`
	TimeRange   string `json:"timeRange" example:"09:00 to 10:00"`
	Description string `json:"description"`
}

func (r sendEmailReq) toInput() booking.SendNotificationInput {
	return booking.SendNotificationInput{
		Notification: booking.MailNotification{
			To:          r.To,
			EventName:   r.EventName,
			Date:        r.Date,
			TimeRange:   r.TimeRange,
			Description: r.Description,
		},
	}
}

// --- Response DTOs ---

type createEventResp struct {
	Message string `json:"message" example:"Event added to calendar"`
	EventID string `json:"eventId" example:"abc123"`
}

func (h *handler) newCreateEventResp(out booking.CreateEventOutput) createEventResp {
	return createEventResp{Message: messageEventCreated, EventID: out.EventID}
}
