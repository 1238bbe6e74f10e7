package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"pharmacare_backend/internal/logger"
)

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	dialer    *gomail.Dialer
	fromEmail string
	fromName  string
}

// NewSMTPProvider builds a provider from SMTP settings.
func NewSMTPProvider(host string, port int, username, password, fromEmail, fromName string) *SMTPProvider {
	return &SMTPProvider{
		dialer:    gomail.NewDialer(host, port, username, password),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// Send delivers one message. The context is checked before dialing since
// gomail itself does not take one.
func (p *SMTPProvider) Send(ctx context.Context, msg Message) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.fromEmail, p.fromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)

	if msg.Text != "" {
		m.SetBody("text/plain", msg.Text)
		if msg.HTML != "" {
			m.AddAlternative("text/html", msg.HTML)
		}
	} else {
		m.SetBody("text/html", msg.HTML)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		logger.Error("email delivery failed", "to", msg.To, "subject", msg.Subject, "error", err)
		return fmt.Errorf("send email to %s: %w", msg.To, err)
	}

	logger.Debug("email sent", "to", msg.To, "subject", msg.Subject)
	return nil
}
