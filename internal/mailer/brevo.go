package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/studioforma/contact-api/internal/logging"

	"github.com/google/uuid"
)

const defaultBaseURL = "https://api.brevo.com"

// ErrNotConfigured means the provider credentials or addresses are missing.
// It fails the send, not process startup.
var ErrNotConfigured = errors.New("mailer is not configured")

// TransportError is a non-2xx answer from the email provider
type TransportError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *TransportError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("provider returned status %d: %s (%s)", e.StatusCode, e.Message, e.Code)
	}
	return fmt.Sprintf("provider returned status %d", e.StatusCode)
}

// Identity is a named email address
type Identity struct {
	Name  string
	Email string
}

// Envelope describes one outbound email
type Envelope struct {
	Sender   Identity
	To       Identity
	ReplyTo  Identity
	Subject  string
	HTMLBody string
	TextBody string
}

// Sender dispatches an envelope and returns the provider message identifier
type Sender interface {
	Send(ctx context.Context, env *Envelope) (messageID string, err error)
}

// BrevoClient sends transactional email through the Brevo HTTP API.
// A single synchronous call per envelope; no retries, no backoff.
type BrevoClient struct {
	apiKey  string
	baseURL string
	bypass  bool
	client  *http.Client
}

// Option tweaks a BrevoClient; used by tests to point at a fake provider
type Option func(*BrevoClient)

// WithBaseURL overrides the provider endpoint
func WithBaseURL(url string) Option {
	return func(c *BrevoClient) { c.baseURL = url }
}

// NewBrevoClient creates a provider client. With bypass set (non-production)
// Send performs no network call and returns a sentinel message identifier,
// so development never consumes provider quota.
func NewBrevoClient(apiKey string, bypass bool, opts ...Option) *BrevoClient {
	c := &BrevoClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		bypass:  bypass,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type brevoIdentity struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoRequest struct {
	Sender      brevoIdentity   `json:"sender"`
	To          []brevoIdentity `json:"to"`
	ReplyTo     brevoIdentity   `json:"replyTo"`
	Subject     string          `json:"subject"`
	HTMLContent string          `json:"htmlContent"`
	TextContent string          `json:"textContent"`
}

type brevoResponse struct {
	MessageID string `json:"messageId"`
}

type brevoError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (c *BrevoClient) Send(ctx context.Context, env *Envelope) (string, error) {
	if c.bypass {
		id := "dev-" + uuid.NewString()
		logging.GetLogger().Info("mailer bypass active, skipping provider call (messageId=%s)", id)
		return id, nil
	}

	if c.apiKey == "" {
		return "", fmt.Errorf("missing API key: %w", ErrNotConfigured)
	}
	if env.Sender.Email == "" || env.To.Email == "" {
		return "", fmt.Errorf("missing sender or recipient address: %w", ErrNotConfigured)
	}

	payload := brevoRequest{
		Sender:      brevoIdentity{Name: env.Sender.Name, Email: env.Sender.Email},
		To:          []brevoIdentity{{Name: env.To.Name, Email: env.To.Email}},
		ReplyTo:     brevoIdentity{Name: env.ReplyTo.Name, Email: env.ReplyTo.Email},
		Subject:     env.Subject,
		HTMLContent: env.HTMLBody,
		TextContent: env.TextBody,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal provider request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v3/smtp/email", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		terr := &TransportError{StatusCode: resp.StatusCode}
		var detail brevoError
		if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil {
			terr.Code = detail.Code
			terr.Message = detail.Message
		}
		return "", terr
	}

	var result brevoResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// The mail was accepted; a missing id only degrades the response
		return "", nil
	}
	return result.MessageID, nil
}
