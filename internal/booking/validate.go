package booking

import (
	"strings"

	"booking-widget/pkg/datemath"
)

// ValidateEventRequest checks presence and ordering of the required fields.
// The booking service and the booking form both call it.
func ValidateEventRequest(req EventRequest) (NormalizedEvent, error) {
	if strings.TrimSpace(req.Summary) == "" || req.Start.DateTime == "" || req.End.DateTime == "" {
		return NormalizedEvent{}, &ValidationError{Category: CategoryMissingFields, Reason: ReasonMissingEventFields}
	}

	if req.Start.TimeZone == "" {
		req.Start.TimeZone = DefaultTimeZone
	}
	if req.End.TimeZone == "" {
		req.End.TimeZone = DefaultTimeZone
	}

	startAt, err := datemath.Parse(req.Start.DateTime, req.Start.TimeZone)
	if err != nil {
		return NormalizedEvent{}, &ValidationError{Category: CategoryInvalidDateTime, Reason: ReasonInvalidFormat}
	}
	endAt, err := datemath.Parse(req.End.DateTime, req.End.TimeZone)
	if err != nil {
		return NormalizedEvent{}, &ValidationError{Category: CategoryInvalidDateTime, Reason: ReasonInvalidFormat}
	}
	if !endAt.After(startAt) {
		return NormalizedEvent{}, &ValidationError{Category: CategoryInvalidDateTime, Reason: ReasonEndBeforeStart}
	}

	return NormalizedEvent{EventRequest: req, StartAt: startAt, EndAt: endAt}, nil
}

// ValidateNotification requires a recipient and an event name.
func ValidateNotification(n MailNotification) error {
	if strings.TrimSpace(n.To) == "" || strings.TrimSpace(n.EventName) == "" {
		return &ValidationError{Category: CategoryMissingMailFields, Reason: ReasonMissingMailFields}
	}
	return nil
}
