package bookingclient

import "fmt"

const DefaultBaseURL = "http://localhost:5000"

// EventTime is one boundary of an event on the wire.
type EventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone,omitempty"`
}

// CreateEventRequest is the body of POST /api/event.
type CreateEventRequest struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description,omitempty"`
	Start       EventTime `json:"start"`
	End         EventTime `json:"end"`
	ClientEmail string    `json:"client_email,omitempty"`
}

// CreateEventResponse is the success body of POST /api/event.
type CreateEventResponse struct {
	Message string `json:"message"`
	EventID string `json:"eventId"`
}

// NotificationRequest is the body of POST /mail/send-email.
type NotificationRequest struct {
	To          string `json:"to"`
	EventName   string `json:"eventName"`
	Date        string `json:"date,omitempty"`
	TimeRange   string `json:"timeRange,omitempty"`
	Description string `json:"description,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

// APIError is a non-2xx answer from the booking service.
type APIError struct {
	Status  int
	Message string
	Details string
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Details)
	}
	return e.Message
}
