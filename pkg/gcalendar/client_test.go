package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"booking-widget/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCredentials(t *testing.T) {
	t.Run("Broken JSON", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed app credentials are rejected", func(t *testing.T) {
		creds := `{"installed": {"client_id": "id", "client_secret": "secret"}}`
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(creds))
		if err == nil {
			t.Errorf("expected service account requirement")
		}
	})

	t.Run("From file", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp("", "creds.json")
		defer os.Remove(tmpFile.Name())
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), tmpFile.Name()); err == nil {
			t.Errorf("expected failure loading broken file")
		}
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json"); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestInsertEvent(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/bookings/events" && r.Method == http.MethodPost {
			json.NewDecoder(r.Body).Decode(&got)
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri", "status": "confirmed"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	if err := client.Verify(context.Background()); err != nil {
		t.Fatalf("verify on HTTP client should be a no-op: %v", err)
	}

	event, err := client.InsertEvent(context.Background(), gcalendar.InsertEventRequest{
		CalendarID:  "bookings",
		Summary:     "Demo",
		Description: "Desc",
		Start:       gcalendar.EventTime{DateTime: "2025-01-10T09:00:00+05:30", TimeZone: "Asia/Kolkata"},
		End:         gcalendar.EventTime{DateTime: "2025-01-10T10:00:00+05:30", TimeZone: "Asia/Kolkata"},
	})
	if err != nil {
		t.Fatalf("failed to insert event: %v", err)
	}
	if event.ID != "event-123" || event.Status != "confirmed" {
		t.Errorf("unexpected event: %+v", event)
	}

	start, _ := got["start"].(map[string]any)
	if start["dateTime"] != "2025-01-10T09:00:00+05:30" || start["timeZone"] != "Asia/Kolkata" {
		t.Errorf("start sent unchanged expected, got %v", start)
	}
	if got["summary"] != "Demo" {
		t.Errorf("unexpected summary: %v", got["summary"])
	}
}

func TestInsertEventDefaultsToPrimary(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" {
			w.Write([]byte(`{"id": "p-1"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	event, err := client.InsertEvent(context.Background(), gcalendar.InsertEventRequest{Summary: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.ID != "p-1" {
		t.Errorf("unexpected id %q", event.ID)
	}
}

func TestInsertEventProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": {"code": 404, "message": "Not Found", "errors": [{"domain": "global", "reason": "notFound", "message": "Not Found"}]}}`))
	})

	_, err := client.InsertEvent(context.Background(), gcalendar.InsertEventRequest{CalendarID: "missing"})
	if err == nil {
		t.Fatalf("expected insert error")
	}

	apiErr, ok := gcalendar.DescribeError(err)
	if !ok {
		t.Fatalf("expected a provider error, got %v", err)
	}
	if apiErr.Code != http.StatusNotFound || apiErr.Message != "Not Found" {
		t.Errorf("unexpected api error: %+v", apiErr)
	}
	if len(apiErr.Details) != 1 || apiErr.Details[0] != "notFound: Not Found" {
		t.Errorf("unexpected details: %v", apiErr.Details)
	}
}

func TestDescribeErrorNonAPI(t *testing.T) {
	if _, ok := gcalendar.DescribeError(errors.New("dial tcp: refused")); ok {
		t.Errorf("plain errors are not provider errors")
	}
}
