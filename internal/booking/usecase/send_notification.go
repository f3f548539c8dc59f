package usecase

import (
	"context"

	"booking-widget/internal/booking"
)

// SendNotification sends one confirmation email. Failures are not retried.
func (uc *implUseCase) SendNotification(ctx context.Context, input booking.SendNotificationInput) error {
	if err := booking.ValidateNotification(input.Notification); err != nil {
		return err
	}

	if err := uc.mail.SendNotification(ctx, input.Notification); err != nil {
		return err
	}
	return nil
}
