package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"booking-widget/internal/booking"
	"booking-widget/internal/bookingform"
	"booking-widget/pkg/bookingclient"
	"booking-widget/pkg/caldav"
	"booking-widget/pkg/datemath"
	"booking-widget/pkg/log"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	app := &cli.App{
		Name:   "book",
		Usage:  "Book a meeting through the booking service and request the confirmation email.",
		Flags:  bookFlags(),
		Action: bookAction,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func bookFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "server", Value: bookingclient.DefaultBaseURL, EnvVars: []string{"BOOKING_SERVER_URL"}, Usage: "Booking service base URL."},
		&cli.StringFlag{Name: "date", Usage: "Event date as YYYY-MM-DD. Defaults to today."},
		&cli.StringFlag{Name: "start", Value: bookingform.DefaultStartTime, Usage: "Start time, HH:MM."},
		&cli.StringFlag{Name: "end", Value: bookingform.DefaultEndTime, Usage: "End time, HH:MM."},
		&cli.StringFlag{Name: "name", Usage: "Event name."},
		&cli.StringFlag{Name: "description", Usage: "Event description."},
		&cli.StringFlag{Name: "email", Usage: "Attendee email, receives the confirmation."},
		&cli.StringFlag{Name: "meet-link", EnvVars: []string{"GMEETLINK"}, Usage: "Meeting link shown in the confirmation banner."},
		&cli.StringFlag{Name: "offset", Value: datemath.DefaultOffset, Usage: "UTC offset of the entered times."},
		&cli.StringFlag{Name: "ics", Usage: "Also write the booked event to this .ics file."},
		&cli.StringFlag{Name: "log-level", Value: "warn", EnvVars: []string{"LOG_LEVEL"}},
	}
}

func bookAction(c *cli.Context) error {
	logger := log.Init(log.ZapConfig{Level: c.String("log-level"), Encoding: log.EncodingConsole})

	day := time.Now()
	if raw := c.String("date"); raw != "" {
		parsed, err := time.Parse(datemath.DateLayout, raw)
		if err != nil {
			return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", raw)
		}
		day = parsed
	}

	form := bookingform.New(logger, bookingclient.New(c.String("server")), bookingform.Config{
		MeetingLink: c.String("meet-link"),
		Offset:      c.String("offset"),
	})
	defer form.Close()

	fields := bookingform.Fields{
		Date:          day,
		StartTime:     c.String("start"),
		EndTime:       c.String("end"),
		EventName:     c.String("name"),
		Description:   c.String("description"),
		AttendeeEmail: c.String("email"),
	}
	if err := form.SetFields(fields); err != nil {
		return err
	}

	out, err := form.Submit(c.Context)
	if err != nil {
		return err
	}

	fmt.Println(out.Banner)
	if out.Warning != "" {
		fmt.Fprintln(os.Stderr, "Warning:", out.Warning)
	}

	if path := c.String("ics"); path != "" {
		if err := writeICS(path, fields, out, c.String("meet-link")); err != nil {
			return err
		}
		fmt.Println("Saved", path)
	}
	return nil
}

func writeICS(path string, fields bookingform.Fields, out bookingform.Outcome, meetingLink string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	uid := out.EventID
	if uid == "" {
		uid = caldav.NewUID()
	}
	err = caldav.EncodeEvent(f, caldav.Event{
		UID:         uid,
		Summary:     fields.EventName,
		Description: booking.ComposeDescription(fields.Description, meetingLink, fields.AttendeeEmail),
		Start:       out.Start,
		End:         out.End,
		Location:    meetingLink,
	})
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	return f.Close()
}
