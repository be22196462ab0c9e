// Package error defines domain-specific errors for the VoltTrack application.
package error

import "errors"

// Record domain errors.
var (
	// ErrRecordNotFound is returned when a record does not exist.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidRecordKind is returned when the kind tag is not PURCHASE or SPOT_CHECK.
	ErrInvalidRecordKind = errors.New("record kind must be PURCHASE or SPOT_CHECK")

	// ErrNegativeMeterReading is returned when the meter reading is below zero.
	ErrNegativeMeterReading = errors.New("meter reading must not be negative")

	// ErrNegativeAmount is returned when price, vat or service fee is below zero.
	ErrNegativeAmount = errors.New("price, vat and service fee must not be negative")

	// ErrUnitsRequired is returned when a purchase has no units.
	ErrUnitsRequired = errors.New("purchase units must be greater than zero")

	// ErrInvalidRecordID is returned when a record ID cannot be parsed.
	ErrInvalidRecordID = errors.New("invalid record ID format")

	// ErrInvalidTimestamp is returned when a timestamp cannot be parsed.
	ErrInvalidTimestamp = errors.New("invalid timestamp, expected RFC3339 or YYYY-MM-DD")
)

// RecordErrorCode defines error codes for record errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidRecordKind    RecordErrorCode = "REC-010001"
	ErrCodeNegativeMeterReading RecordErrorCode = "REC-010002"
	ErrCodeNegativeAmount       RecordErrorCode = "REC-010003"
	ErrCodeUnitsRequired        RecordErrorCode = "REC-010004"
	ErrCodeInvalidRecordID      RecordErrorCode = "REC-010005"
	ErrCodeInvalidTimestamp     RecordErrorCode = "REC-010006"

	// Resource errors (02XXXX)
	ErrCodeRecordNotFound RecordErrorCode = "REC-020001"

	// Internal errors (99XXXX)
	ErrCodeRecordPersistence RecordErrorCode = "REC-990001"
)

// RecordError represents a record-related error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
