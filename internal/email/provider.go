package email

// Provider sends transactional email. Failures are reported to the caller
// but never block the anti-enumeration 202 response of the forgot-password
// flow.
type Provider interface {
	// SendPasswordReset mails the one-time reset link to the recipient.
	SendPasswordReset(toEmail, recipientName, resetLink string) error
}
