package main

import (
	"context"
	"fmt"
	"os"

	"booking-widget/config"
	"booking-widget/internal/booking/gateway"
	"booking-widget/pkg/caldav"
	"booking-widget/pkg/gcalendar"
	"booking-widget/pkg/log"
	"booking-widget/pkg/mailer"
)

func newCalendarGateway(ctx context.Context, cfg *config.Config, logger log.Logger) (gateway.Calendar, error) {
	switch cfg.Calendar.Driver {
	case config.CalendarDriverCalDAV:
		client, err := caldav.NewClient(nil, cfg.CalDAV.URL, cfg.CalDAV.Username, cfg.CalDAV.Password, cfg.CalDAV.CalendarPath)
		if err != nil {
			return nil, err
		}
		if cfg.Calendar.VerifyOnStartup {
			if err := client.Verify(ctx); err != nil {
				return nil, err
			}
		}
		logger.Infof(ctx, "CalDAV calendar initialized: %s%s", cfg.CalDAV.URL, cfg.CalDAV.CalendarPath)
		return gateway.NewCalDAVCalendar(logger, client), nil

	default:
		var (
			client *gcalendar.Client
			err    error
		)
		if cfg.GoogleCalendar.Credentials != "" {
			client, err = gcalendar.NewClientFromCredentialsJSON(ctx, []byte(cfg.GoogleCalendar.Credentials))
		} else {
			client, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		}
		if err != nil {
			return nil, err
		}
		if cfg.Calendar.VerifyOnStartup {
			if err := client.Verify(ctx); err != nil {
				return nil, err
			}
		}
		logger.Infof(ctx, "Google Calendar initialized: %s", cfg.GoogleCalendar.CalendarID)
		return gateway.NewGoogleCalendar(logger, client, cfg.GoogleCalendar.CalendarID), nil
	}
}

func newMailGateway(ctx context.Context, cfg *config.Config, logger log.Logger) (gateway.Mail, error) {
	var (
		sender mailer.Sender
		err    error
	)

	switch cfg.Mail.Driver {
	case config.MailDriverGmail:
		var credentials []byte
		credentials, err = googleCredentials(cfg.GoogleCalendar)
		if err != nil {
			return nil, err
		}
		sender, err = mailer.NewGmailFromCredentialsJSON(ctx, credentials, cfg.Mail.User)
	default:
		sender, err = mailer.NewSMTP(mailer.SMTPConfig{
			Host:     cfg.Mail.SMTPHost,
			Port:     cfg.Mail.SMTPPort,
			Username: cfg.Mail.User,
			Password: cfg.Mail.Pass,
		})
	}
	if err != nil {
		return nil, err
	}

	if cfg.Mail.VerifyOnStartup {
		if err := sender.Verify(ctx); err != nil {
			return nil, err
		}
	}
	logger.Infof(ctx, "Mail sender initialized: driver=%s from=%s", cfg.Mail.Driver, cfg.Mail.User)
	return gateway.NewMail(logger, sender, cfg.Mail.User, cfg.Meeting.Link), nil
}

func googleCredentials(cfg config.GoogleCalendarConfig) ([]byte, error) {
	if cfg.Credentials != "" {
		return []byte(cfg.Credentials), nil
	}
	b, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %w", err)
	}
	return b, nil
}
