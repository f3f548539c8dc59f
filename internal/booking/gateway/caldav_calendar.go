package gateway

import (
	"context"

	"booking-widget/internal/booking"
	"booking-widget/pkg/caldav"
	pkgLog "booking-widget/pkg/log"
)

type caldavInserter interface {
	InsertEvent(ctx context.Context, event caldav.Event) (string, error)
}

type caldavCalendar struct {
	l      pkgLog.Logger
	client caldavInserter
}

// NewCalDAVCalendar creates a Calendar that writes into a CalDAV collection.
func NewCalDAVCalendar(l pkgLog.Logger, client caldavInserter) Calendar {
	return &caldavCalendar{l: l, client: client}
}

func (c *caldavCalendar) InsertEvent(ctx context.Context, event booking.CalendarEvent) (booking.CalendarEventResult, error) {
	uid, err := c.client.InsertEvent(ctx, caldav.Event{
		Summary:     event.Summary,
		Description: event.Description,
		Start:       event.StartAt,
		End:         event.EndAt,
	})
	if err != nil {
		pErr := &booking.ProviderError{Provider: booking.ProviderCalendar, Message: err.Error(), Err: err}
		logProviderError(ctx, c.l, "gateway.caldavCalendar.InsertEvent", pErr)
		return booking.CalendarEventResult{}, pErr
	}

	c.l.Infof(ctx, "gateway.caldavCalendar.InsertEvent: created event uid=%s", uid)
	return booking.CalendarEventResult{ID: uid}, nil
}
