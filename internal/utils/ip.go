package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// UnknownClient is reported when no proxy header identifies the caller
const UnknownClient = "unknown"

// GetRealIP extracts the client identifier from reverse-proxy headers.
// X-Forwarded-For can be a comma-separated list (client, proxy1, proxy2, ...);
// the leftmost entry is the client. Clients behind the same proxy without
// distinguishing headers collapse to one identifier, which is accepted.
func GetRealIP(c *gin.Context) string {
	forwardedFor := c.GetHeader("X-Forwarded-For")
	if forwardedFor != "" {
		ips := strings.Split(forwardedFor, ",")
		if ip := strings.TrimSpace(ips[0]); ip != "" {
			return ip
		}
	}

	if ip := c.GetHeader("X-Real-IP"); ip != "" {
		return ip
	}

	return UnknownClient
}
