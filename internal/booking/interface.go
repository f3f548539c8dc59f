package booking

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// CreateEvent validates the request and inserts one event into the shared calendar.
	CreateEvent(ctx context.Context, input CreateEventInput) (CreateEventOutput, error)

	// SendNotification sends one confirmation email. It is not chained to CreateEvent.
	SendNotification(ctx context.Context, input SendNotificationInput) error
}
