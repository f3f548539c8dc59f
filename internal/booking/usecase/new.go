package usecase

import (
	"booking-widget/internal/booking/gateway"
	pkgLog "booking-widget/pkg/log"
)

// implUseCase is the private implementation of booking.UseCase.
type implUseCase struct {
	l           pkgLog.Logger
	calendar    gateway.Calendar
	mail        gateway.Mail
	meetingLink string
}

// New creates a new booking UseCase. The gateways are constructed once at startup
// and shared by every request.
func New(l pkgLog.Logger, calendar gateway.Calendar, mail gateway.Mail, meetingLink string) *implUseCase {
	return &implUseCase{
		l:           l,
		calendar:    calendar,
		mail:        mail,
		meetingLink: meetingLink,
	}
}
