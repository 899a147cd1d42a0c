package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`

	// CORS Configuration
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	// Email Provider Configuration
	BrevoAPIKey   string `env:"BREVO_API_KEY"`
	SenderEmail   string `env:"SENDER_EMAIL"`
	SenderName    string `env:"SENDER_NAME" envDefault:"Contact Form"`
	ReceiverEmail string `env:"RECEIVER_EMAIL"`

	// Rate Limit Configuration
	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"5"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"60s"`
}

// Load loads the configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists; real environment variables take precedence
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}
	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Receiver falls back to the sender address when unset
	if cfg.ReceiverEmail == "" {
		cfg.ReceiverEmail = cfg.SenderEmail
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

// Validate checks that everything the send path will need is present.
// It runs once at startup so a misconfigured deployment fails immediately
// instead of on the first submission.
func (c *Config) Validate() error {
	if c.RateLimitMax <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", c.RateLimitMax)
	}
	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimitWindow)
	}

	// Outside production the mailer runs in bypass mode and never touches
	// the provider, so credentials are optional there.
	if !c.IsProduction() {
		return nil
	}

	if c.BrevoAPIKey == "" {
		return fmt.Errorf("BREVO_API_KEY is required in production")
	}
	if c.SenderEmail == "" {
		return fmt.Errorf("SENDER_EMAIL is required in production")
	}
	if c.ReceiverEmail == "" {
		return fmt.Errorf("RECEIVER_EMAIL is required in production")
	}
	return nil
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
