package utils

import (
	"net/http"

	"github.com/studioforma/contact-api/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends a success response with an optional provider message id
func HandleSuccess(c *gin.Context, message, messageID string) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(message, messageID))
}
