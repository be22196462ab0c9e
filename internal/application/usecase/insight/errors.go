// Package insight contains the AI usage insight use case.
package insight

import (
	"context"
	"errors"
	"strings"

	domainerror "github.com/volttrack/backend/internal/domain/error"
)

// Messages returned to clients for each failure class.
const (
	msgServiceUnavailable = "The insight service is temporarily unavailable. Try again later."
	msgRateLimited        = "Insight request limit reached. Wait a few minutes and try again."
	msgAuthError          = "The insight service is misconfigured."
	msgTimeout            = "Generating the insight took longer than expected. Try again."
	msgParseError         = "The insight response could not be read. Try again."
	msgUnknownError       = "An unexpected error occurred while generating the insight."
)

// classifyError converts a provider error into an InsightError with a client
// message and a retryable flag.
func classifyError(err error) *domainerror.InsightError {
	errStr := strings.ToLower(err.Error())

	build := func(code domainerror.InsightErrorCode, sentinel error, message string, retryable bool) *domainerror.InsightError {
		insightErr := domainerror.NewInsightError(code, message, errors.Join(sentinel, err))
		insightErr.Retryable = retryable
		return insightErr
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return build(domainerror.ErrCodeInsightGenerationFailed, domainerror.ErrInsightGenerationFailed, msgTimeout, true)
	}

	if strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "quota") ||
		strings.Contains(errStr, "429") || strings.Contains(errStr, "resource exhausted") {
		return build(domainerror.ErrCodeInsightRateLimited, domainerror.ErrInsightRateLimited, msgRateLimited, true)
	}

	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "invalid api key") || strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "authentication") {
		return build(domainerror.ErrCodeInsightGenerationFailed, domainerror.ErrInsightGenerationFailed, msgAuthError, false)
	}

	if strings.Contains(errStr, "connection") || strings.Contains(errStr, "network") ||
		strings.Contains(errStr, "dial") || strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "unavailable") || strings.Contains(errStr, "503") {
		return build(domainerror.ErrCodeInsightGenerationFailed, domainerror.ErrInsightGenerationFailed, msgServiceUnavailable, true)
	}

	if strings.Contains(errStr, "parse") || strings.Contains(errStr, "json") ||
		strings.Contains(errStr, "unmarshal") || strings.Contains(errStr, "decode") {
		return build(domainerror.ErrCodeInsightGenerationFailed, domainerror.ErrInsightGenerationFailed, msgParseError, true)
	}

	return build(domainerror.ErrCodeInsightGenerationFailed, domainerror.ErrInsightGenerationFailed, msgUnknownError, true)
}
