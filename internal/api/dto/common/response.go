package common

// ErrorCode identifies the failure class in error responses
type ErrorCode string

const (
	ErrCodeInvalidJSON ErrorCode = "INVALID_JSON"
	ErrCodeValidation  ErrorCode = "VALIDATION_ERROR"
	ErrCodeRateLimited ErrorCode = "RATE_LIMIT_EXCEEDED"
	ErrCodeServer      ErrorCode = "SERVER_ERROR"
)

// FieldError describes a single failed field constraint
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SuccessResponse is the body of every 2xx answer
type SuccessResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId,omitempty"`
}

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Code    ErrorCode    `json:"code"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// NewSuccessResponse creates a success body; messageID may be empty
func NewSuccessResponse(message, messageID string) SuccessResponse {
	return SuccessResponse{
		Success:   true,
		Message:   message,
		MessageID: messageID,
	}
}

// NewErrorResponse creates an error body; fieldErrors may be nil
func NewErrorResponse(code ErrorCode, message string, fieldErrors []FieldError) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   message,
		Code:    code,
		Errors:  fieldErrors,
	}
}
