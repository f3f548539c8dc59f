package datemath_test

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"booking-widget/pkg/datemath"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    datemath.Clock
		wantErr bool
	}{
		{name: "Morning", in: "09:00", want: datemath.Clock{Hour: 9}},
		{name: "Single digit hour", in: "9:30", want: datemath.Clock{Hour: 9, Minute: 30}},
		{name: "Last minute", in: "23:59", want: datemath.Clock{Hour: 23, Minute: 59}},
		{name: "Midnight", in: "00:00", want: datemath.Clock{}},
		{name: "Hour out of range", in: "25:00", wantErr: true},
		{name: "Minute out of range", in: "10:99", wantErr: true},
		{name: "Both out of range", in: "25:99", wantErr: true},
		{name: "Garbage", in: "noon", wantErr: true},
		{name: "Seconds", in: "10:00:00", wantErr: true},
		{name: "Empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := datemath.ParseClock(tt.in)
			if tt.wantErr {
				if !errors.Is(err, datemath.ErrInvalidClock) {
					t.Fatalf("expected ErrInvalidClock, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCombine(t *testing.T) {
	day := time.Date(2025, 1, 10, 18, 45, 0, 0, time.UTC)

	got, err := datemath.Combine(day, "09:00", datemath.DefaultOffset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-01-10T09:00:00+05:30" {
		t.Errorf("unexpected timestamp: %s", got)
	}

	if _, err := datemath.Combine(day, "24:00", datemath.DefaultOffset); err == nil {
		t.Errorf("expected error for 24:00")
	}
	if _, err := datemath.Combine(day, "10:00", "IST"); !errors.Is(err, datemath.ErrInvalidOffset) {
		t.Errorf("expected ErrInvalidOffset, got %v", err)
	}
}

// Every valid clock must render in the fixed-offset pattern and round-trip to the same wall clock.
func TestCombineRoundTrip(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:00\+05:30$`)
	loc, err := datemath.ParseOffset(datemath.DefaultOffset)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	days := []time.Time{
		time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 23, 0, 0, 0, time.Local),
		time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	for _, day := range days {
		for h := 0; h < 24; h++ {
			for m := 0; m < 60; m += 7 {
				clock := datemath.Clock{Hour: h, Minute: m}
				ts, err := datemath.Combine(day, clock.String(), datemath.DefaultOffset)
				if err != nil {
					t.Fatalf("Combine(%s): %v", clock, err)
				}
				if !pattern.MatchString(ts) {
					t.Fatalf("timestamp %q does not match pattern", ts)
				}
				parsed, err := time.Parse(time.RFC3339, ts)
				if err != nil {
					t.Fatalf("parse %q: %v", ts, err)
				}
				parsed = parsed.In(loc)
				if parsed.Hour() != h || parsed.Minute() != m || parsed.Day() != day.Day() {
					t.Fatalf("round trip of %q gave %v", ts, parsed)
				}
			}
		}
	}
}

func TestParseOffset(t *testing.T) {
	loc, err := datemath.ParseOffset("-03:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, secs := time.Date(2025, 1, 1, 0, 0, 0, 0, loc).Zone()
	if secs != -(3*3600 + 30*60) {
		t.Errorf("unexpected offset seconds: %d", secs)
	}

	for _, bad := range []string{"", "05:30", "+5:30", "+15:00", "+05:60"} {
		if _, err := datemath.ParseOffset(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestParse(t *testing.T) {
	t.Run("RFC3339 keeps offset", func(t *testing.T) {
		got, err := datemath.Parse("2025-01-10T09:00:00+05:30", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(time.Date(2025, 1, 10, 3, 30, 0, 0, time.UTC)) {
			t.Errorf("unexpected instant: %v", got)
		}
	})

	t.Run("Local value read in zone", func(t *testing.T) {
		got, err := datemath.Parse("2025-01-10T09:00", "Asia/Kolkata")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(time.Date(2025, 1, 10, 3, 30, 0, 0, time.UTC)) {
			t.Errorf("unexpected instant: %v", got)
		}
	})

	t.Run("Local value without zone is UTC", func(t *testing.T) {
		got, err := datemath.Parse("2025-01-10T09:00:00", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)) {
			t.Errorf("unexpected instant: %v", got)
		}
	})

	t.Run("Unknown zone", func(t *testing.T) {
		if _, err := datemath.Parse("2025-01-10T09:00", "Mars/Olympus"); !errors.Is(err, datemath.ErrInvalidTimestamp) {
			t.Errorf("expected ErrInvalidTimestamp, got %v", err)
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := datemath.Parse("tomorrow-ish", "Asia/Kolkata"); !errors.Is(err, datemath.ErrInvalidTimestamp) {
			t.Errorf("expected ErrInvalidTimestamp, got %v", err)
		}
	})
}
