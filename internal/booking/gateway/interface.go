package gateway

import (
	"context"

	"booking-widget/internal/booking"
)

// Calendar inserts events into the single pre-configured calendar.
type Calendar interface {
	InsertEvent(ctx context.Context, event booking.CalendarEvent) (booking.CalendarEventResult, error)
}

// Mail sends the templated confirmation email.
type Mail interface {
	SendNotification(ctx context.Context, n booking.MailNotification) error
}
