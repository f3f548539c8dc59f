package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

var envNames = []string{
	"PORT", "HTTP_SERVER_PORT", "CREDENTIALS", "GOOGLE_CALENDAR_CREDENTIALS",
	"GOOGLE_CALENDAR_CREDENTIALS_PATH", "CALENDAR_ID", "GOOGLE_CALENDAR_CALENDAR_ID",
	"GMEETLINK", "MEETING_LINK", "EMAIL_USER", "MAIL_USER", "EMAIL_PASS", "MAIL_PASS",
	"CALENDAR_DRIVER", "MAIL_DRIVER", "CALDAV_URL", "CALDAV_CALENDAR_PATH",
}

// isolate runs the test in an empty directory with no booking variables set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, name := range envNames {
		t.Setenv(name, "")
	}
	return dir
}

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("CREDENTIALS", `{"type":"service_account"}`)
	t.Setenv("CALENDAR_ID", "bookings@group.calendar.google.com")
	t.Setenv("GMEETLINK", "https://meet.example/abc")
	t.Setenv("EMAIL_USER", "events@example.com")
	t.Setenv("EMAIL_PASS", "app-password")
}

func TestLoadFromEnvAliases(t *testing.T) {
	isolate(t)
	setRequired(t)
	t.Setenv("PORT", "7000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 7000 {
		t.Errorf("expected port 7000, got %d", cfg.HTTPServer.Port)
	}
	if cfg.GoogleCalendar.CalendarID != "bookings@group.calendar.google.com" {
		t.Errorf("unexpected calendar id %q", cfg.GoogleCalendar.CalendarID)
	}
	if cfg.Meeting.Link != "https://meet.example/abc" || cfg.Mail.User != "events@example.com" || cfg.Mail.Pass != "app-password" {
		t.Errorf("aliases not applied: %+v %+v", cfg.Meeting, cfg.Mail)
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Calendar.Driver != CalendarDriverGoogle || cfg.Mail.Driver != MailDriverSMTP {
		t.Errorf("unexpected drivers %q %q", cfg.Calendar.Driver, cfg.Mail.Driver)
	}
	if !cfg.Calendar.VerifyOnStartup || !cfg.Mail.VerifyOnStartup {
		t.Errorf("startup verification should default to on")
	}
	if cfg.Mail.SMTPHost != "smtp.gmail.com" || cfg.Mail.SMTPPort != 587 {
		t.Errorf("unexpected smtp defaults %+v", cfg.Mail)
	}
	if cfg.RateLimit.PerMin != 60 {
		t.Errorf("expected rate limit 60, got %d", cfg.RateLimit.PerMin)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	isolate(t)

	_, err := Load()

	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	want := []string{
		"google_calendar.credentials",
		"google_calendar.calendar_id",
		"meeting.link",
		"mail.user",
		"mail.pass",
	}
	if !reflect.DeepEqual(cfgErr.Keys, want) {
		t.Errorf("expected %v, got %v", want, cfgErr.Keys)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("EMAIL_PASS", "from-env")

	yaml := `
calendar:
  driver: caldav
caldav:
  url: https://dav.example.com
  calendar_path: /calendars/events/
meeting:
  link: https://meet.example/file
mail:
  user: events@example.com
  pass: from-file
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Calendar.Driver != CalendarDriverCalDAV || cfg.CalDAV.URL != "https://dav.example.com" {
		t.Errorf("file values not read: %+v %+v", cfg.Calendar, cfg.CalDAV)
	}
	if cfg.Mail.Pass != "from-env" {
		t.Errorf("environment should override the file, got %q", cfg.Mail.Pass)
	}
}

func TestLoadUnknownDriver(t *testing.T) {
	isolate(t)
	setRequired(t)
	t.Setenv("MAIL_DRIVER", "pigeon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown mail driver")
	}
}
