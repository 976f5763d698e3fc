package notify

import (
	"gopkg.in/gomail.v2"

	"github.com/agily-hq/agily/internal/config"
)

// Sender delivers a single message. Implementations must be safe for
// concurrent use.
type Sender interface {
	Send(to []string, subject, textBody, htmlBody string) error
}

// SMTPSender delivers mail through the configured SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender() *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(config.MailHost, config.MailPort, config.MailUser, config.MailPassword),
		from:   config.MailFrom,
	}
}

func (s *SMTPSender) Send(to []string, subject, textBody, htmlBody string) error {
	// Mail is opt-in: without MAIL_HOST there is no relay to fail against.
	if s.dialer.Host == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	if htmlBody != "" {
		m.AddAlternative("text/html", htmlBody)
	}
	return s.dialer.DialAndSend(m)
}
