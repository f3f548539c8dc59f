package caldav

import (
	"fmt"
	"io"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

// NewUID creates a unique identifier for an event.
func NewUID() string {
	return uuid.New().String()
}

// toCalendar wraps event in a VCALENDAR. now stamps DTSTAMP.
func toCalendar(event Event, now time.Time) *ical.Calendar {
	ve := ical.NewEvent()
	ve.Props.SetText(ical.PropUID, event.UID)
	ve.Props.SetText(ical.PropSummary, event.Summary)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	// UTC keeps the instant without a VTIMEZONE block; fixed offsets have no TZID.
	ve.Props.SetDateTime(ical.PropDateTimeStart, event.Start.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeEnd, event.End.UTC())
	ve.Props.SetText(ical.PropStatus, "CONFIRMED")
	if event.Description != "" {
		ve.Props.SetText(ical.PropDescription, event.Description)
	}
	if event.Location != "" {
		ve.Props.SetText(ical.PropLocation, event.Location)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)
	cal.Children = append(cal.Children, ve.Component)
	return cal
}

// EncodeEvent writes event as an iCalendar document. A missing UID is generated.
func EncodeEvent(w io.Writer, event Event) error {
	if event.UID == "" {
		event.UID = NewUID()
	}
	if err := ical.NewEncoder(w).Encode(toCalendar(event, time.Now())); err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	return nil
}
