package bookingform

import (
	"context"
	"errors"
	"time"

	"booking-widget/pkg/bookingclient"
)

const (
	DefaultBannerDelay = 7 * time.Second
	DefaultStartTime   = "09:00"
	DefaultEndTime     = "10:00"

	dateDisplayLayout  = "2/1/2006"
	bannerLayout       = "2 Jan 2006, 3:04 pm"
	timeRangeSeparator = " to "
)

// State of the form.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Messages shown to the user for local rejections.
const (
	MessageMissingEventName = "Please enter an event name"
	MessageMissingEmail     = "Please enter your email"
)

var ErrSubmitting = errors.New("a booking is already being submitted")

// Booker is the booking service as seen by the form.
type Booker interface {
	CreateEvent(ctx context.Context, req bookingclient.CreateEventRequest) (bookingclient.CreateEventResponse, error)
	SendNotification(ctx context.Context, req bookingclient.NotificationRequest) (string, error)
}

// Fields is what the user entered.
type Fields struct {
	Date          time.Time // only the calendar date is used
	StartTime     string    // HH:MM
	EndTime       string    // HH:MM
	EventName     string
	Description   string
	AttendeeEmail string
}

// Config tunes the form. Zero values fall back to defaults.
type Config struct {
	MeetingLink string
	Offset      string        // fixed UTC offset of composed timestamps, default +05:30
	TimeZone    string        // sent with both boundaries, default Asia/Kolkata
	BannerDelay time.Duration // how long Success is shown before returning to Idle
}

// Outcome describes a completed booking.
type Outcome struct {
	EventID string
	Start   time.Time
	End     time.Time
	Banner  string
	// Warning is set when the booking succeeded but the confirmation email did not.
	Warning string
}

// InputError is a local rejection that never reached the service.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// BookingError is a failed booking call.
type BookingError struct {
	Err error
}

func (e *BookingError) Error() string {
	return "Error booking event: " + e.Err.Error()
}

func (e *BookingError) Unwrap() error {
	return e.Err
}
