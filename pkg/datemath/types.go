package datemath

import (
	"errors"
	"time"
)

const (
	// DateLayout is the calendar date part of a combined timestamp.
	DateLayout = "2006-01-02"

	// DefaultOffset is the fixed UTC offset applied to constructed timestamps.
	DefaultOffset = "+05:30"
)

// Layouts accepted for timestamps that carry no offset. They are read in the event's zone.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

var (
	ErrInvalidClock     = errors.New("time of day must be HH:MM with hours 00-23 and minutes 00-59")
	ErrInvalidOffset    = errors.New("offset must be ±HH:MM")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
)

// Clock is a validated time of day.
type Clock struct {
	Hour   int
	Minute int
}

// String renders the clock as HH:MM.
func (c Clock) String() string {
	return pad2(c.Hour) + ":" + pad2(c.Minute)
}

// On returns the instant at this clock on the calendar date of day, in loc.
func (c Clock) On(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, loc)
}
