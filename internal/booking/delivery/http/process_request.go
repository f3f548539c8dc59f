package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateEventReq binds the booking request body. Field checks are left
// to the shared validator so the client-visible reasons stay exact.
func (h *handler) processCreateEventReq(c *gin.Context) (createEventReq, error) {
	var req createEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSendEmailReq binds the notification request body.
func (h *handler) processSendEmailReq(c *gin.Context) (sendEmailReq, error) {
	var req sendEmailReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
