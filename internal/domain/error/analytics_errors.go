package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidMonth is returned when the month selector is outside 1..12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")

	// ErrInvalidYear is returned when the year selector is out of range.
	ErrInvalidYear = errors.New("year must be between 1970 and 9999")

	// ErrInvalidDateRange is returned when the range end is before its start.
	ErrInvalidDateRange = errors.New("to must not be before from")

	// ErrInvalidDateFormat is returned when a date cannot be parsed.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANA-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth      AnalyticsErrorCode = "ANA-010001"
	ErrCodeInvalidYear       AnalyticsErrorCode = "ANA-010002"
	ErrCodeInvalidDateRange  AnalyticsErrorCode = "ANA-010003"
	ErrCodeInvalidDateFormat AnalyticsErrorCode = "ANA-010004"

	// Internal errors (99XXXX)
	ErrCodeAnalyticsInternal AnalyticsErrorCode = "ANA-990001"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
