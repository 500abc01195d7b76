package response

import "net/http"

// Body is the shape of every non-2xx response.
type Body struct {
	Message string `json:"message"`
}

// Error builds the body for status; an empty msg uses DefaultMsg.
func Error(status int, msg string) Body {
	if msg == "" {
		msg = DefaultMsg[status]
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return Body{Message: msg}
}
