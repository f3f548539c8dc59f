package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Message sends 200 {"message": msg}.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageResp{Message: msg})
}

// Error sends 400 with the error text as the client-visible reason.
func Error(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResp{Error: err.Error()})
}

// InvalidBody sends 400 for a body that could not be decoded.
func InvalidBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResp{Error: MessageInvalidBody})
}

// InternalError sends 500 with a generic message. details is optional.
func InternalError(c *gin.Context, message, details string) {
	if message == "" {
		message = MessageInternalError
	}
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: message, Details: details})
}

// TooManyRequests sends 429 and stops the handler chain.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResp{Error: MessageTooManyRequests})
}
