package gateway

import (
	"context"

	"booking-widget/internal/booking"
	pkgLog "booking-widget/pkg/log"
	"booking-widget/pkg/mailer"
)

type mailGateway struct {
	l           pkgLog.Logger
	sender      mailer.Sender
	from        string
	meetingLink string
}

// NewMail creates a Mail gateway sending from the configured mailbox.
func NewMail(l pkgLog.Logger, sender mailer.Sender, from, meetingLink string) Mail {
	return &mailGateway{l: l, sender: sender, from: from, meetingLink: meetingLink}
}

func (m *mailGateway) SendNotification(ctx context.Context, n booking.MailNotification) error {
	err := m.sender.Send(ctx, mailer.Message{
		From:    m.from,
		To:      n.To,
		Subject: booking.ConfirmationSubject(n.EventName),
		Body:    booking.ConfirmationBody(n, m.meetingLink),
	})
	if err != nil {
		d := mailer.DescribeError(err)
		pErr := &booking.ProviderError{
			Provider: booking.ProviderMail,
			Code:     d.Code,
			Message:  d.Message,
			Details:  d.Details,
			Err:      err,
		}
		logProviderError(ctx, m.l, "gateway.mail.SendNotification", pErr)
		return pErr
	}

	m.l.Infof(ctx, "gateway.mail.SendNotification: confirmation sent for %q", n.EventName)
	return nil
}
