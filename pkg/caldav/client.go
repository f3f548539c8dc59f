package caldav

import (
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/emersion/go-webdav"
	"github.com/emersion/go-webdav/caldav"
)

// Client writes events into a single CalDAV collection.
type Client struct {
	client       *caldav.Client
	calendarPath string
}

// NewClient creates a CalDAV client with basic auth for the collection at calendarPath
// (e.g. "/calendars/owner/bookings/").
func NewClient(httpClient *http.Client, endpoint, username, password, calendarPath string) (*Client, error) {
	if calendarPath == "" {
		return nil, fmt.Errorf("calendar path is required")
	}

	var hc webdav.HTTPClient = http.DefaultClient
	if httpClient != nil {
		hc = httpClient
	}
	if username != "" && password != "" {
		hc = webdav.HTTPClientWithBasicAuth(hc, username, password)
	}

	c, err := caldav.NewClient(hc, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create caldav client: %w", err)
	}
	return &Client{client: c, calendarPath: calendarPath}, nil
}

// Verify checks that the credentials are accepted by resolving the current user principal.
func (c *Client) Verify(ctx context.Context) error {
	if _, err := c.client.FindCurrentUserPrincipal(ctx); err != nil {
		return fmt.Errorf("failed to reach caldav server: %w", err)
	}
	return nil
}

// InsertEvent stores event as <uid>.ics in the collection and returns its UID.
func (c *Client) InsertEvent(ctx context.Context, event Event) (string, error) {
	if event.UID == "" {
		event.UID = NewUID()
	}

	objectPath := path.Join("/", strings.Trim(c.calendarPath, "/"), event.UID+".ics")
	if _, err := c.client.PutCalendarObject(ctx, objectPath, toCalendar(event, time.Now())); err != nil {
		return "", fmt.Errorf("failed to put calendar object: %w", err)
	}
	return event.UID, nil
}
