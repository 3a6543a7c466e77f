package app

import "github.com/trapham24065/api-contact-book/internal/logger"

// NoopEmailProvider is used when SMTP is not configured. Reset links are
// still issued; delivery is logged and dropped.
type NoopEmailProvider struct{}

func (m *NoopEmailProvider) SendPasswordReset(toEmail, recipientName, resetLink string) error {
	logger.Warn("email delivery disabled, dropping password reset mail", "to", toEmail)
	return nil
}
