package caldav

import "time"

const productID = "-//booking-widget//EN"

// Event is the calendar object written to the server or encoded as .ics.
type Event struct {
	UID         string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Location    string
}
