package gcalendar

// EventTime is one boundary of an event. DateTime is sent verbatim (RFC 3339 with offset)
// so the caller's wall clock reaches the provider unchanged.
type EventTime struct {
	DateTime string
	TimeZone string // e.g. "Asia/Kolkata"
}

// InsertEventRequest is the input for inserting an event into a calendar.
type InsertEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Start       EventTime
	End         EventTime
}

// Event is a simplified representation of a created Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Status   string
}

// APIError carries what the Calendar API reported about a failed call.
type APIError struct {
	Code    int
	Message string
	Details []string // "reason: message" per provider error item
}
