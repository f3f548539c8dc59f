package usecase

import (
	"context"

	"booking-widget/internal/booking"
)

// CreateEvent validates the request, then inserts it into the shared calendar.
// Nothing is sent to the provider when validation fails.
func (uc *implUseCase) CreateEvent(ctx context.Context, input booking.CreateEventInput) (booking.CreateEventOutput, error) {
	ev, err := booking.ValidateEventRequest(input.Request)
	if err != nil {
		return booking.CreateEventOutput{}, err
	}

	res, err := uc.calendar.InsertEvent(ctx, uc.buildCalendarEvent(ev))
	if err != nil {
		return booking.CreateEventOutput{}, err
	}

	return booking.CreateEventOutput{EventID: res.ID}, nil
}

func (uc *implUseCase) buildCalendarEvent(ev booking.NormalizedEvent) booking.CalendarEvent {
	return booking.CalendarEvent{
		Summary:     ev.Summary,
		Description: booking.ComposeDescription(ev.Description, uc.meetingLink, ev.ClientEmail),
		Start:       ev.Start,
		End:         ev.End,
		StartAt:     ev.StartAt,
		EndAt:       ev.EndAt,
	}
}
