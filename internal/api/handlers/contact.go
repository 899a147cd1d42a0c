package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/studioforma/contact-api/internal/api/dto/common"
	"github.com/studioforma/contact-api/internal/api/dto/v1/contact"
	"github.com/studioforma/contact-api/internal/api/validation"
	"github.com/studioforma/contact-api/internal/config"
	"github.com/studioforma/contact-api/internal/logging"
	"github.com/studioforma/contact-api/internal/mailer"
	"github.com/studioforma/contact-api/internal/ratelimit"
	"github.com/studioforma/contact-api/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const successMessage = "Thanks for reaching out! We'll get back to you soon."

// ContactHandler orchestrates one submission: identify, rate-check, parse,
// validate, honeypot-check, render, send.
type ContactHandler struct {
	cfg     *config.Config
	limiter *ratelimit.Limiter
	sender  mailer.Sender
}

func NewContactHandler(cfg *config.Config, limiter *ratelimit.Limiter, sender mailer.Sender) *ContactHandler {
	return &ContactHandler{
		cfg:     cfg,
		limiter: limiter,
		sender:  sender,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	logger := logging.GetLogger()

	clientID := utils.GetRealIP(c)

	// Counted before parsing, so even garbage requests consume the budget
	if h.limiter.Check(clientID, h.cfg.RateLimitMax, h.cfg.RateLimitWindow) {
		retryAfter := int(h.cfg.RateLimitWindow.Seconds())
		logger.Warn("rate limit exceeded (client=%s)", clientID)
		c.Header("Retry-After", strconv.Itoa(retryAfter))
		c.JSON(http.StatusTooManyRequests, common.NewErrorResponse(
			common.ErrCodeRateLimited,
			fmt.Sprintf("Too many submissions. Please try again in %d seconds.", retryAfter),
			nil,
		))
		return
	}

	var req contact.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("submission failed validation (client=%s): %v", clientID, err)
			utils.HandleValidationError(c, http.StatusBadRequest,
				"Validation failed", validation.FormatValidationError(validationErrors))
			return
		}
		utils.HandleAPIError(c, err, http.StatusBadRequest, common.ErrCodeInvalidJSON,
			"Request body is not valid JSON")
		return
	}

	// Bots fill the invisible field. Answer success without sending anything
	// so automated senders never learn they were detected.
	if req.IsSpam() {
		logger.Warn("honeypot triggered, dropping submission (client=%s)", clientID)
		utils.HandleSuccess(c, successMessage, "")
		return
	}

	htmlBody, textBody := mailer.RenderSubmission(&req)
	envelope := &mailer.Envelope{
		Sender:   mailer.Identity{Name: h.cfg.SenderName, Email: h.cfg.SenderEmail},
		To:       mailer.Identity{Email: h.cfg.ReceiverEmail},
		ReplyTo:  mailer.Identity{Name: req.Name, Email: req.Email},
		Subject:  fmt.Sprintf("Contact Form: %s", req.Subject),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}

	messageID, err := h.sender.Send(c.Request.Context(), envelope)
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeServer,
			"Failed to send your message. Please try again later.")
		return
	}

	logger.Info("submission forwarded (client=%s, messageId=%s)", clientID, messageID)
	utils.HandleSuccess(c, successMessage, messageID)
}
