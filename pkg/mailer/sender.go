package mailer

import "context"

// Sender is implemented by email providers (Resend, SMTP).
// It receives an Email with recipients, subject and HTML already set.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// SenderFunc adapts an ordinary function to the Sender interface.
type SenderFunc func(ctx context.Context, email *Email) error

// Send calls f(ctx, email).
func (f SenderFunc) Send(ctx context.Context, email *Email) error {
	return f(ctx, email)
}
