package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"artist-portfolio/internal/transport/http/ez"
)

const KeyRequestID = ez.KeyRequestID

// RequestID reuses the caller's X-Request-ID or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get(KeyRequestID)
		if rid == "" || len(rid) > 128 {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}
