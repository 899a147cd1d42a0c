package validation

import (
	"strings"
	"testing"

	"github.com/studioforma/contact-api/internal/api/dto/v1/contact"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	RegisterValidators(v)
	return v
}

func validSubmission() contact.SubmitRequest {
	return contact.SubmitRequest{
		Name:    "Jo",
		Email:   "a@b.com",
		Subject: "Hi there",
		Message: strings.Repeat("x", 20),
	}
}

func TestValidSubmissionPasses(t *testing.T) {
	v := newValidator()
	sub := validSubmission()
	assert.NoError(t, v.Struct(sub))
}

func TestValidSubmissionWithOptionalsPasses(t *testing.T) {
	v := newValidator()
	sub := validSubmission()
	sub.ProjectType = "ecommerce"
	sub.Budget = "10k-25k"
	assert.NoError(t, v.Struct(sub))
}

func TestSingleViolationYieldsSingleFieldError(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*contact.SubmitRequest)
		wantField   string
		wantMessage string
	}{
		{
			name:        "name too short",
			mutate:      func(s *contact.SubmitRequest) { s.Name = "J" },
			wantField:   "name",
			wantMessage: "must be at least 2 characters",
		},
		{
			name:        "name missing",
			mutate:      func(s *contact.SubmitRequest) { s.Name = "" },
			wantField:   "name",
			wantMessage: "name is required",
		},
		{
			name:        "invalid email",
			mutate:      func(s *contact.SubmitRequest) { s.Email = "not-an-email" },
			wantField:   "email",
			wantMessage: "must be a valid email address",
		},
		{
			name:        "subject too short",
			mutate:      func(s *contact.SubmitRequest) { s.Subject = "Hi" },
			wantField:   "subject",
			wantMessage: "must be at least 3 characters",
		},
		{
			name:        "message too short",
			mutate:      func(s *contact.SubmitRequest) { s.Message = "xxxxx" },
			wantField:   "message",
			wantMessage: "must be at least 20 characters",
		},
		{
			name:        "message too long",
			mutate:      func(s *contact.SubmitRequest) { s.Message = strings.Repeat("x", 5001) },
			wantField:   "message",
			wantMessage: "must be at most 5000 characters",
		},
		{
			name:        "unknown project type",
			mutate:      func(s *contact.SubmitRequest) { s.ProjectType = "spaceship" },
			wantField:   "projectType",
			wantMessage: "must be one of: website, ecommerce, webapp, branding, consulting, other",
		},
		{
			name:        "unknown budget",
			mutate:      func(s *contact.SubmitRequest) { s.Budget = "a-fortune" },
			wantField:   "budget",
			wantMessage: "must be one of: under-5k, 5k-10k, 10k-25k, 25k-50k, over-50k",
		},
	}

	v := newValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)

			err := v.Struct(sub)
			require.Error(t, err)

			fieldErrors := FormatValidationError(err)
			require.Len(t, fieldErrors, 1)
			assert.Equal(t, tt.wantField, fieldErrors[0].Field)
			assert.Equal(t, tt.wantMessage, fieldErrors[0].Message)
		})
	}
}

func TestHoneypotIsNotSchemaValidated(t *testing.T) {
	v := newValidator()
	sub := validSubmission()
	sub.Honeypot = "http://spam.example.com"

	assert.NoError(t, v.Struct(sub), "honeypot content is handled at orchestration level, not schema level")
	assert.True(t, sub.IsSpam())
}

func TestFormatValidationErrorIgnoresForeignErrors(t *testing.T) {
	assert.Nil(t, FormatValidationError(assert.AnError))
}
