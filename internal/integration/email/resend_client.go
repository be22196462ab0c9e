// Package email provides email sending functionality via Resend.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/resend/resend-go/v2"

	"github.com/volttrack/backend/internal/application/adapter"
	domainerror "github.com/volttrack/backend/internal/domain/error"
)

// ResendClient delivers alert emails through the Resend API.
type ResendClient struct {
	client *resend.Client
	from   string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client: resend.NewClient(apiKey),
		from:   fmt.Sprintf("%s <%s>", fromName, fromEmail),
	}
}

// SetBaseURL points the client at a different API host.
func (c *ResendClient) SetBaseURL(raw string) error {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid resend base url: %w", err)
	}
	c.client.BaseURL = u
	return nil
}

// Send delivers one alert email.
func (c *ResendClient) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	resp, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{input.To},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	})
	if err != nil {
		return nil, classifySendError(err)
	}
	return &adapter.SendEmailResult{ProviderID: resp.Id}, nil
}

// classifySendError wraps a provider error so the worker knows whether to retry.
func classifySendError(err error) error {
	if isPermanentError(err) {
		return domainerror.NewEmailError(domainerror.ErrCodePermanentEmailFailure, "permanent email failure", err)
	}
	return domainerror.NewEmailError(domainerror.ErrCodeTemporaryEmailFailure, "temporary email failure", err)
}

// Rejections Resend will repeat on every retry: auth failures and validation errors.
var permanentPatterns = []string{
	"401", "403", "422",
	"unauthorized", "forbidden", "validation", "invalid", "bad request",
}

func isPermanentError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, pattern := range permanentPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// LogSender writes alerts to the log instead of delivering them. It is used
// when no Resend API key is configured.
type LogSender struct {
	sent atomic.Int64
}

// NewLogSender creates a new log-only sender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the alert and returns a local provider id.
func (s *LogSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	n := s.sent.Add(1)
	slog.Info("alert email not delivered, no provider configured",
		"to", input.To,
		"subject", input.Subject,
	)
	return &adapter.SendEmailResult{ProviderID: fmt.Sprintf("log-%d", n)}, nil
}

var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = (*LogSender)(nil)
)
