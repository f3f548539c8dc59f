package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"booking-widget/internal/middleware"
	"booking-widget/pkg/log"
)

type fakeBookingHandler struct {
	created int
}

func (f *fakeBookingHandler) CreateEvent(c *gin.Context) {
	f.created++
	c.JSON(http.StatusOK, gin.H{"message": "Event added to calendar", "eventId": "evt-1"})
}

func (f *fakeBookingHandler) SendEmail(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
}

func newTestServer(t *testing.T) (*HTTPServer, *fakeBookingHandler) {
	t.Helper()
	return newTestServerIn(t, "test")
}

func newTestServerIn(t *testing.T, environment string) (*HTTPServer, *fakeBookingHandler) {
	t.Helper()
	l := log.New(zap.NewNop())
	h := &fakeBookingHandler{}
	srv, err := New(l, Config{
		Logger:         l,
		Port:           5000,
		Mode:           gin.TestMode,
		Environment:    environment,
		Middleware:     middleware.New(l, middleware.Config{}),
		BookingHandler: h,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return srv, h
}

func TestNewValidates(t *testing.T) {
	l := log.New(zap.NewNop())
	if _, err := New(l, Config{Logger: l, Mode: gin.TestMode, BookingHandler: &fakeBookingHandler{}}); err == nil {
		t.Error("expected error for missing port")
	}
	if _, err := New(l, Config{Logger: l, Mode: gin.TestMode, Port: 5000}); err == nil {
		t.Error("expected error for missing booking handler")
	}
}

func TestSystemRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	for path, status := range map[string]string{"/health": "healthy", "/ready": "ready", "/live": "alive"} {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, w.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: unmarshal: %v", path, err)
		}
		if body["status"] != status || body["service"] != ServiceName || body["environment"] != "test" {
			t.Errorf("%s: unexpected body %v", path, body)
		}
	}
}

func TestBookingRoutesMounted(t *testing.T) {
	srv, h := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/event", nil)
	req.Header.Set("Origin", "https://widget.example")
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)

	if w.Code != http.StatusOK || h.created != 1 {
		t.Fatalf("booking route not mounted: %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Errorf("expected CORS header on booking route")
	}
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Errorf("expected request id header")
	}

	w = httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/mail/send-email", nil))
	if w.Code != http.StatusOK {
		t.Errorf("mail route not mounted: %d", w.Code)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv, _ := newTestServer(t)
	srv.port = 0 // any free port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSwaggerHiddenInProduction(t *testing.T) {
	for env, want := range map[string]int{"development": http.StatusOK, "production": http.StatusNotFound} {
		srv, _ := newTestServerIn(t, env)
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		if w.Code != want {
			t.Errorf("%s: expected %d, got %d", env, want, w.Code)
		}
	}
}
