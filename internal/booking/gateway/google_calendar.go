package gateway

import (
	"context"

	"booking-widget/internal/booking"
	"booking-widget/pkg/gcalendar"
	pkgLog "booking-widget/pkg/log"
)

type googleInserter interface {
	InsertEvent(ctx context.Context, req gcalendar.InsertEventRequest) (*gcalendar.Event, error)
}

type googleCalendar struct {
	l          pkgLog.Logger
	client     googleInserter
	calendarID string
}

// NewGoogleCalendar creates a Calendar backed by the Google Calendar API.
// client is authenticated once by the caller and shared by every request.
func NewGoogleCalendar(l pkgLog.Logger, client googleInserter, calendarID string) Calendar {
	return &googleCalendar{l: l, client: client, calendarID: calendarID}
}

func (g *googleCalendar) InsertEvent(ctx context.Context, event booking.CalendarEvent) (booking.CalendarEventResult, error) {
	g.l.Debugf(ctx, "gateway.googleCalendar.InsertEvent: calendar=%s summary=%q start=%s end=%s",
		g.calendarID, event.Summary, event.Start.DateTime, event.End.DateTime)

	created, err := g.client.InsertEvent(ctx, gcalendar.InsertEventRequest{
		CalendarID:  g.calendarID,
		Summary:     event.Summary,
		Description: event.Description,
		Start:       gcalendar.EventTime{DateTime: event.Start.DateTime, TimeZone: event.Start.TimeZone},
		End:         gcalendar.EventTime{DateTime: event.End.DateTime, TimeZone: event.End.TimeZone},
	})
	if err != nil {
		pErr := &booking.ProviderError{Provider: booking.ProviderCalendar, Message: err.Error(), Err: err}
		if apiErr, ok := gcalendar.DescribeError(err); ok {
			pErr.Code = apiErr.Code
			pErr.Message = apiErr.Message
			pErr.Details = apiErr.Details
		}
		logProviderError(ctx, g.l, "gateway.googleCalendar.InsertEvent", pErr)
		return booking.CalendarEventResult{}, pErr
	}

	g.l.Infof(ctx, "gateway.googleCalendar.InsertEvent: created event id=%s", created.ID)
	return booking.CalendarEventResult{ID: created.ID}, nil
}

func logProviderError(ctx context.Context, l pkgLog.Logger, op string, pErr *booking.ProviderError) {
	l.Errorf(ctx, "%s: message=%q code=%d details=%v", op, pErr.Message, pErr.Code, pErr.Details)
}
