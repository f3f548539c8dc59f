package http

import (
	"github.com/gin-gonic/gin"

	"booking-widget/internal/middleware"
)

// RegisterRoutes maps the booking endpoints. Both groups are rate limited per client.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	api := r.Group("/api", mw.RateLimit())
	{
		api.POST("/event", h.CreateEvent)
	}

	mail := r.Group("/mail", mw.RateLimit())
	{
		mail.POST("/send-email", h.SendEmail)
	}
}
