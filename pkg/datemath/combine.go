package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	clockPattern  = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	offsetPattern = regexp.MustCompile(`^([+-])(\d{2}):(\d{2})$`)
)

// ParseClock validates an "HH:MM" time of day.
func ParseClock(s string) (Clock, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, _ := strconv.Atoi(m[1])
	mi, _ := strconv.Atoi(m[2])
	if h > 23 || mi > 59 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return Clock{Hour: h, Minute: mi}, nil
}

// ParseOffset converts "+05:30" style offsets into a fixed zone.
func ParseOffset(offset string) (*time.Location, error) {
	m := offsetPattern.FindStringSubmatch(offset)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOffset, offset)
	}
	h, _ := strconv.Atoi(m[2])
	mi, _ := strconv.Atoi(m[3])
	if h > 14 || mi > 59 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOffset, offset)
	}
	secs := h*3600 + mi*60
	if m[1] == "-" {
		secs = -secs
	}
	return time.FixedZone("UTC"+offset, secs), nil
}

// Combine joins the calendar date of day with an "HH:MM" clock and renders
// YYYY-MM-DDTHH:MM:00±HH:MM using the given fixed offset. Only the year, month
// and day of day are used; its location is ignored.
func Combine(day time.Time, clock, offset string) (string, error) {
	c, err := ParseClock(clock)
	if err != nil {
		return "", err
	}
	if _, err := ParseOffset(offset); err != nil {
		return "", err
	}
	return day.Format(DateLayout) + "T" + c.String() + ":00" + offset, nil
}

// Parse reads a timestamp. RFC 3339 values keep their own offset; values without
// one are interpreted in timeZone (an IANA name), falling back to UTC when the
// zone is empty.
func Parse(value, timeZone string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}

	loc := time.UTC
	if timeZone != "" {
		l, err := time.LoadLocation(timeZone)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: unknown time zone %q", ErrInvalidTimestamp, timeZone)
		}
		loc = l
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
