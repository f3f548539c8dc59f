package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bookingHTTP "booking-widget/internal/booking/delivery/http"
)

// setupBookingDomain registers POST /api/event and POST /mail/send-email.
// The handler is built in main because its gateways hold process-wide credentials.
func (srv HTTPServer) setupBookingDomain(ctx context.Context, r gin.IRouter) error {
	bookingHTTP.RegisterRoutes(r, srv.bookingHandler, srv.mw)

	srv.l.Infof(ctx, "Booking domain registered: POST /api/event, POST /mail/send-email")
	return nil
}
