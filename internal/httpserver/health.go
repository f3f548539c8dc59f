package httpserver

import (
	"github.com/gin-gonic/gin"

	"booking-widget/pkg/response"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "booking-widget"
)

// healthResp is the body of /health, /ready and /live.
type healthResp struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Environment string `json:"environment,omitempty"`
}

func (srv HTTPServer) statusHandler(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, healthResp{
			Status:      status,
			Service:     ServiceName,
			Version:     HealthVersion,
			Environment: srv.environment,
		})
	}
}

// Status routes answer as soon as the engine serves: providers are verified before
// the server starts listening.
//
// @Summary  Health, readiness and liveness checks
// @Tags     Health
// @Produce  json
// @Success  200 {object} healthResp
// @Router   /health [get]
// @Router   /ready [get]
// @Router   /live [get]
func (srv HTTPServer) registerStatusRoutes(r gin.IRoutes) {
	r.GET("/health", srv.statusHandler("healthy"))
	r.GET("/ready", srv.statusHandler("ready"))
	r.GET("/live", srv.statusHandler("alive"))
}
