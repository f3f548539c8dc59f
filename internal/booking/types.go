package booking

import "time"

// DefaultTimeZone is applied to event boundaries that arrive without one.
const DefaultTimeZone = "Asia/Kolkata"

// --- Domain Model ---

// EventTime is one boundary of an event as supplied by the caller.
type EventTime struct {
	DateTime string // ISO-8601 with offset, e.g. 2025-01-10T09:00:00+05:30
	TimeZone string // IANA name, DefaultTimeZone when empty
}

// EventRequest is a booking request before validation.
type EventRequest struct {
	Summary     string
	Description string
	Start       EventTime
	End         EventTime
	ClientEmail string
}

// NormalizedEvent is an EventRequest that passed validation, with time zones
// defaulted and both boundaries parsed.
type NormalizedEvent struct {
	EventRequest
	StartAt time.Time
	EndAt   time.Time
}

// CalendarEvent is the payload handed to the calendar gateway.
type CalendarEvent struct {
	Summary     string
	Description string
	Start       EventTime
	End         EventTime
	StartAt     time.Time
	EndAt       time.Time
}

// CalendarEventResult is what the provider assigned to a created event.
type CalendarEventResult struct {
	ID string
}

// MailNotification is a confirmation email request.
type MailNotification struct {
	To          string
	EventName   string
	Date        string // display string
	TimeRange   string // display string
	Description string
}

// --- UseCase Inputs / Outputs ---

type CreateEventInput struct {
	Request EventRequest
}

type CreateEventOutput struct {
	EventID string
}

type SendNotificationInput struct {
	Notification MailNotification
}
