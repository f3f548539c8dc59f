package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client wraps the Google Calendar API service.
// It is safe for concurrent use once constructed.
type Client struct {
	service     *calendar.Service
	tokenSource oauth2.TokenSource
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service Account JSON bytes.
// One shared identity books on behalf of every requester.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials: %w", err)
	}

	tokenSource := oauth2.ReuseTokenSource(nil, config.TokenSource(ctx))
	svc, err := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc, tokenSource: tokenSource}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// Verify fetches an access token so bad credentials fail at startup rather than on the first booking.
// Clients built from an HTTP client have nothing to verify.
func (c *Client) Verify(ctx context.Context) error {
	if c.tokenSource == nil {
		return nil
	}
	if _, err := c.tokenSource.Token(); err != nil {
		return fmt.Errorf("failed to obtain calendar access token: %w", err)
	}
	return nil
}

// InsertEvent creates one event on the given calendar. It does not retry.
func (c *Client) InsertEvent(ctx context.Context, req InsertEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.Start.DateTime,
			TimeZone: req.Start.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.End.DateTime,
			TimeZone: req.End.TimeZone,
		},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to insert calendar event: %w", err)
	}

	return &Event{
		ID:       created.Id,
		Summary:  created.Summary,
		HtmlLink: created.HtmlLink,
		Status:   created.Status,
	}, nil
}

// DescribeError extracts the provider's code, message and error items from err.
// ok is false when err did not come from the API (e.g. a transport failure).
func DescribeError(err error) (APIError, bool) {
	var gErr *googleapi.Error
	if !errors.As(err, &gErr) {
		return APIError{}, false
	}

	out := APIError{Code: gErr.Code, Message: gErr.Message}
	for _, item := range gErr.Errors {
		out.Details = append(out.Details, item.Reason+": "+item.Message)
	}
	if out.Message == "" {
		out.Message = http.StatusText(gErr.Code)
	}
	return out, true
}
