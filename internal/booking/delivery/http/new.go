package http

import (
	"github.com/gin-gonic/gin"

	"booking-widget/internal/booking"
	pkgLog "booking-widget/pkg/log"
)

// Handler is the public interface for the booking HTTP delivery layer.
type Handler interface {
	CreateEvent(c *gin.Context)
	SendEmail(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc booking.UseCase
}

// New creates a new HTTP handler for the booking domain.
func New(l pkgLog.Logger, uc booking.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
