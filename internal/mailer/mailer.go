// Package mailer delivers newsletter messages to subscribers through the
// Brevo transactional-email HTTP API, in fixed-size concurrent batches.
package mailer

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when no provider API key is configured.
// It is checked before any network call is attempted.
var ErrNotConfigured = errors.New("email provider API key is not configured")

// Message is the subject/body pair of one bulk dispatch. It is never persisted.
type Message struct {
	Subject string
	Body    string
}

// Outcome is the per-dispatch aggregate of recipient-level results.
// Errors retains every failure; callers cap what they surface to end users.
type Outcome struct {
	Success bool     `json:"success"`
	Sent    int      `json:"sent"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// Sender delivers one rendered message to one recipient.
type Sender interface {
	Send(ctx context.Context, recipient, subject, htmlContent string) error
}
