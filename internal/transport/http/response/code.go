package response

import "net/http"

// Messages the public API returns.
const (
	MsgInvalidPortfolioType = "Invalid portfolio type"
	MsgInvalidSkillType     = "Invalid skill type"
	MsgInvalidID            = "Invalid ID"
	MsgItemNotFound         = "Portfolio item not found"
	MsgFetchItems           = "Failed to fetch portfolio items"
	MsgFetchItem            = "Failed to fetch portfolio item"
	MsgFetchSkills          = "Failed to fetch skills"
	MsgSendMessage          = "Failed to send message"
	MsgInternal             = "Internal server error"
)

// DefaultMsg holds the fallback message per status.
var DefaultMsg = map[int]string{
	http.StatusBadRequest:            "Bad Request",
	http.StatusUnauthorized:          "Unauthorized",
	http.StatusForbidden:             "Forbidden",
	http.StatusNotFound:              "Not found",
	http.StatusConflict:              "Conflict",
	http.StatusRequestEntityTooLarge: "Request body too large",
	http.StatusTooManyRequests:       "Too many requests",
	http.StatusInternalServerError:   MsgInternal,
	http.StatusServiceUnavailable:    "Server busy",
	http.StatusGatewayTimeout:        "Request timeout",
}
