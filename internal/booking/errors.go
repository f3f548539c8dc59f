package booking

import (
	"errors"
	"fmt"
)

// Validation categories.
const (
	CategoryMissingFields     = "missing_fields"
	CategoryInvalidDateTime   = "invalid_datetime"
	CategoryMissingMailFields = "missing_mail_fields"
)

// Provider names.
const (
	ProviderCalendar = "calendar"
	ProviderMail     = "mail"
)

// Client-visible reasons.
const (
	ReasonMissingEventFields = "Missing required fields: summary, start.dateTime, end.dateTime"
	ReasonMissingMailFields  = "Missing required fields: to, eventName"
	ReasonInvalidFormat      = "Invalid dateTime format"
	ReasonEndBeforeStart     = "End time must be after start time"
)

var (
	ErrCalendarInsert = errors.New("failed to insert event")
	ErrMailSend       = errors.New("failed to send email")
)

// ValidationError rejects input before any provider is contacted.
type ValidationError struct {
	Category string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Category == CategoryInvalidDateTime {
		return "Invalid dateTime: " + e.Reason
	}
	return e.Reason
}

// ProviderError is a failed call to the calendar or mail provider.
// Code, Message and Details are for server logs only.
type ProviderError struct {
	Provider string
	Code     int
	Message  string
	Details  []string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() []error {
	sentinel := ErrCalendarInsert
	if e.Provider == ProviderMail {
		sentinel = ErrMailSend
	}
	return []error{sentinel, e.Err}
}

// IsValidation reports whether err is a *ValidationError and returns it.
func IsValidation(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
