// Package mail provides Mailer implementations for outbound email.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strconv"

	"gamestore/config"
	"gamestore/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpMailer delivers mail through a plain SMTP relay.
type smtpMailer struct {
	addr   string
	auth   smtp.Auth
	from   string
	logger *slog.Logger
}

// logMailer writes the reset link to the log instead of sending mail.
// Used in development when no SMTP host is configured.
type logMailer struct {
	logger *slog.Logger
}

// New builds a Mailer from configuration. Without an SMTP host it falls back
// to the log-only mailer so local flows stay testable end to end.
func New(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		logger.Warn("No SMTP host configured, falling back to log-only mailer")

		return &logMailer{logger: logger}
	}

	var auth smtp.Auth
	if cfg.Mail.Username != "" {
		auth = smtp.PlainAuth("", cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.Host)
	}

	return &smtpMailer{
		addr:   cfg.Mail.Host + ":" + strconv.Itoa(cfg.Mail.Port),
		auth:   auth,
		from:   cfg.Mail.From,
		logger: logger,
	}
}

// SendPasswordReset delivers a password-reset link to the recipient.
func (m *smtpMailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Password reset\r\n\r\n"+
			"A password reset was requested for your account.\r\n\r\n"+
			"Follow this link within one hour to choose a new password:\r\n%s\r\n\r\n"+
			"If you did not request this, you can ignore this email.\r\n",
		m.from, to, resetURL,
	)

	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "mail delivery cancelled")
	}

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return errors.Wrap(err, "smtp delivery failed")
	}

	m.logger.Debug("Password reset mail sent", slog.String("to", to))

	return nil
}

// SendPasswordReset logs the reset link instead of delivering it.
func (m *logMailer) SendPasswordReset(_ context.Context, to, resetURL string) error {
	m.logger.Info("Password reset link (log-only mailer)",
		slog.String("to", to),
		slog.String("resetURL", resetURL),
	)

	return nil
}
