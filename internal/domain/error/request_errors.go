package error

import "errors"

// Request-level errors raised by the HTTP layer.
var (
	// ErrRateLimited is returned when a client exceeds the allowed request rate.
	ErrRateLimited = errors.New("too many requests")

	// ErrInvalidRequestBody is returned when a request body cannot be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")
)

// RequestErrorCode defines error codes for request errors.
// Format: REQ-XXYYYY where XX is category and YYYY is specific error.
type RequestErrorCode string

const (
	ErrCodeInvalidRequestBody RequestErrorCode = "REQ-010001"
	ErrCodeRateLimited        RequestErrorCode = "REQ-010002"
)
