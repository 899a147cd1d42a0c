package middleware

import (
	"time"

	"github.com/studioforma/contact-api/internal/logging"
	"github.com/studioforma/contact-api/internal/utils"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per completed request
func RequestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.LogHTTPRequest(
			method,
			path,
			utils.GetRealIP(c),
			c.Writer.Status(),
			time.Since(start).String(),
		)
	}
}
