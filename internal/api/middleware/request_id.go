package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ContextKeyRequestID is where the request id lives in the gin context
const ContextKeyRequestID = "request_id"

// RequestID assigns each request an identifier, honoring one supplied by the
// proxy, and echoes it back in the response
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextKeyRequestID, id)
		c.Writer.Header().Set("X-Request-ID", id)

		c.Next()
	}
}
