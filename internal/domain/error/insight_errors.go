package error

import "errors"

// Insight domain errors.
var (
	// ErrInsightServiceUnavailable is returned when no AI API key is configured.
	ErrInsightServiceUnavailable = errors.New("insight service is not configured")

	// ErrInsightGenerationFailed is returned when the AI call or its parsing fails.
	ErrInsightGenerationFailed = errors.New("failed to generate insight")

	// ErrInsightRateLimited is returned when the AI provider throttles the request.
	ErrInsightRateLimited = errors.New("insight service rate limit reached")
)

// InsightErrorCode defines error codes for insight errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightErrorCode string

const (
	// Availability errors (01XXXX)
	ErrCodeInsightServiceUnavailable InsightErrorCode = "INS-010001"
	ErrCodeInsightGenerationFailed   InsightErrorCode = "INS-010002"
	ErrCodeInsightRateLimited        InsightErrorCode = "INS-010003"
)

// InsightError represents an insight error with code and message.
type InsightError struct {
	Code      InsightErrorCode
	Message   string
	Retryable bool
	Err       error
}

// Error implements the error interface.
func (e *InsightError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightError) Unwrap() error {
	return e.Err
}

// NewInsightError creates a new InsightError with the given code and message.
func NewInsightError(code InsightErrorCode, message string, err error) *InsightError {
	return &InsightError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
