package response

// ErrorResp is the JSON body of every non-2xx response.
type ErrorResp struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResp is the JSON body of a plain success response.
type MessageResp struct {
	Message string `json:"message"`
}

const (
	MessageInvalidBody     = "Invalid request body"
	MessageTooManyRequests = "Too many requests"
	MessageInternalError   = "Internal server error"
)
