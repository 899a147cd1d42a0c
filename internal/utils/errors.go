package utils

import (
	"github.com/studioforma/contact-api/internal/api/dto/common"
	"github.com/studioforma/contact-api/internal/logging"

	"github.com/gin-gonic/gin"
)

// HandleAPIError logs the underlying error with request context and sends a
// sanitized error response. Raw provider or parser detail never reaches the
// caller beyond the top-level message.
func HandleAPIError(c *gin.Context, err error, status int, code common.ErrorCode, message string) {
	logger := logging.GetLogger()
	logger.LogHTTPError(
		c.Request.Method,
		c.Request.URL.Path,
		GetRealIP(c),
		status,
		message,
		err,
	)

	c.JSON(status, common.NewErrorResponse(code, message, nil))
}

// HandleValidationError reports field-level constraint failures to the caller
func HandleValidationError(c *gin.Context, status int, message string, fieldErrors []common.FieldError) {
	c.JSON(status, common.NewErrorResponse(common.ErrCodeValidation, message, fieldErrors))
}
