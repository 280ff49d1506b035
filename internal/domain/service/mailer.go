package service

import "context"

// Mailer defines the interface for outbound email. Delivery is an external
// collaborator; implementations may be a real SMTP client or a log-only
// development mailer.
type Mailer interface {
	// SendPasswordReset delivers a password-reset link to the recipient.
	SendPasswordReset(ctx context.Context, to, resetURL string) error
}
