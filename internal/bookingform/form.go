package bookingform

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"booking-widget/internal/booking"
	"booking-widget/pkg/bookingclient"
	"booking-widget/pkg/datemath"
	"booking-widget/pkg/log"
)

// Form runs one booking at a time: book the event, then ask for the
// confirmation email. A failed email never undoes the booking.
type Form struct {
	l      log.Logger
	booker Booker
	cfg    Config

	mu     sync.Mutex
	state  State
	fields Fields
	err    error
	timer  *time.Timer
}

// New creates an idle form for today with the default time slot.
func New(l log.Logger, booker Booker, cfg Config) *Form {
	if cfg.Offset == "" {
		cfg.Offset = datemath.DefaultOffset
	}
	if cfg.TimeZone == "" {
		cfg.TimeZone = booking.DefaultTimeZone
	}
	if cfg.BannerDelay <= 0 {
		cfg.BannerDelay = DefaultBannerDelay
	}
	return &Form{
		l:      l,
		booker: booker,
		cfg:    cfg,
		fields: Fields{
			Date:      time.Now(),
			StartTime: DefaultStartTime,
			EndTime:   DefaultEndTime,
		},
	}
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Err is the failure that put the form in StateError.
func (f *Form) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// SetFields replaces the user input. It is refused while a booking is in flight.
func (f *Form) SetFields(fields Fields) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSubmitting {
		return ErrSubmitting
	}
	f.fields = fields
	return nil
}

// Submit books the current fields. Missing name or email is rejected without
// leaving the current state.
func (f *Form) Submit(ctx context.Context) (Outcome, error) {
	fields, err := f.begin()
	if err != nil {
		return Outcome{}, err
	}

	outcome, err := f.book(ctx, fields)
	if err != nil {
		f.fail(err)
		return Outcome{}, err
	}

	outcome.Warning = f.notify(ctx, fields)
	f.succeed()
	return outcome, nil
}

func (f *Form) begin() (Fields, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == StateSubmitting {
		return Fields{}, ErrSubmitting
	}
	if f.fields.EventName == "" {
		return Fields{}, &InputError{Message: MessageMissingEventName}
	}
	if f.fields.AttendeeEmail == "" {
		return Fields{}, &InputError{Message: MessageMissingEmail}
	}

	f.stopTimer()
	f.state = StateSubmitting
	f.err = nil
	return f.fields, nil
}

func (f *Form) book(ctx context.Context, fields Fields) (Outcome, error) {
	startDateTime, err := datemath.Combine(fields.Date, fields.StartTime, f.cfg.Offset)
	if err != nil {
		return Outcome{}, &InputError{Message: err.Error()}
	}
	endDateTime, err := datemath.Combine(fields.Date, fields.EndTime, f.cfg.Offset)
	if err != nil {
		return Outcome{}, &InputError{Message: err.Error()}
	}

	req := booking.EventRequest{
		Summary:     fields.EventName,
		Description: fields.Description,
		Start:       booking.EventTime{DateTime: startDateTime, TimeZone: f.cfg.TimeZone},
		End:         booking.EventTime{DateTime: endDateTime, TimeZone: f.cfg.TimeZone},
		ClientEmail: fields.AttendeeEmail,
	}
	ev, err := booking.ValidateEventRequest(req)
	if err != nil {
		if vErr, ok := booking.IsValidation(err); ok {
			return Outcome{}, &InputError{Message: vErr.Reason}
		}
		return Outcome{}, err
	}

	resp, err := f.booker.CreateEvent(ctx, bookingclient.CreateEventRequest{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       bookingclient.EventTime{DateTime: req.Start.DateTime, TimeZone: req.Start.TimeZone},
		End:         bookingclient.EventTime{DateTime: req.End.DateTime, TimeZone: req.End.TimeZone},
		ClientEmail: req.ClientEmail,
	})
	if err != nil {
		f.l.Errorf(ctx, "bookingform.Submit: CreateEvent: %v", err)
		return Outcome{}, &BookingError{Err: err}
	}

	return Outcome{
		EventID: resp.EventID,
		Start:   ev.StartAt,
		End:     ev.EndAt,
		Banner:  Banner(fields.EventName, ev.StartAt, f.cfg.MeetingLink),
	}, nil
}

// notify sends the confirmation and returns a warning for the user when it fails.
func (f *Form) notify(ctx context.Context, fields Fields) string {
	_, err := f.booker.SendNotification(ctx, bookingclient.NotificationRequest{
		To:          fields.AttendeeEmail,
		EventName:   fields.EventName,
		Date:        DisplayDate(fields.Date),
		TimeRange:   TimeRange(fields.StartTime, fields.EndTime),
		Description: fields.Description,
	})
	if err != nil {
		f.l.Warnf(ctx, "bookingform.Submit: SendNotification: %v", err)
		var apiErr *bookingclient.APIError
		if errors.As(err, &apiErr) {
			return "Failed to send email: " + apiErr.Message
		}
		return "Failed to send email: " + err.Error()
	}
	return ""
}

func (f *Form) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateError
	f.err = err
}

func (f *Form) succeed() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state = StateSuccess
	f.fields.EventName = ""
	f.fields.Description = ""
	f.fields.AttendeeEmail = ""

	f.timer = time.AfterFunc(f.cfg.BannerDelay, f.dismiss)
}

// dismiss hides the success banner.
func (f *Form) dismiss() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSuccess {
		f.state = StateIdle
	}
}

// Close stops the pending banner timer.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopTimer()
}

func (f *Form) stopTimer() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}

// DisplayDate renders the date as day/month/year without padding.
func DisplayDate(day time.Time) string {
	return day.Format(dateDisplayLayout)
}

// TimeRange renders "HH:MM to HH:MM".
func TimeRange(start, end string) string {
	return start + timeRangeSeparator + end
}

// Banner is the success message shown after a booking.
func Banner(eventName string, start time.Time, meetingLink string) string {
	return fmt.Sprintf("Event \"%s\" booked for %s. Google Meet: %s", eventName, start.Format(bannerLayout), meetingLink)
}
