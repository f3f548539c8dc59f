package booking_test

import (
	"strings"
	"testing"

	"booking-widget/internal/booking"
)

func TestComposeDescription(t *testing.T) {
	got := booking.ComposeDescription("Agenda", "https://meet.example/abc", "a@example.com")
	want := "Agenda\nGoogle Meet Link: https://meet.example/abc\nClient Email: a@example.com"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got = booking.ComposeDescription("", "https://meet.example/abc", "")
	if !strings.HasSuffix(got, "Client Email: N/A") || !strings.HasPrefix(got, "\nGoogle Meet Link:") {
		t.Errorf("unexpected description for empty inputs: %q", got)
	}
}

func TestConfirmationTemplate(t *testing.T) {
	if got := booking.ConfirmationSubject("Demo"); got != "Event Confirmation: Demo" {
		t.Errorf("unexpected subject %q", got)
	}

	body := booking.ConfirmationBody(booking.MailNotification{
		To:        "a@example.com",
		EventName: "Demo",
		Date:      "10/1/2025",
		TimeRange: "09:00 to 10:00",
	}, "https://meet.example/abc")

	for _, want := range []string{
		`Your event "Demo" has been scheduled.`,
		"Date: 10/1/2025",
		"Time: 09:00 to 10:00",
		"Description: No description provided",
		"Google Meet Link: https://meet.example/abc",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}
