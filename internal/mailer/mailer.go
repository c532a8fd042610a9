// Package mailer sends the digest over Gmail SMTP.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Gmail app-password SMTP, implicit TLS.
const (
	smtpHost = "smtp.gmail.com"
	smtpPort = 465
)

type Mailer struct {
	from      string
	password  string
	recipient string
}

func New(from, password, recipient string) *Mailer {
	return &Mailer{from: from, password: password, recipient: recipient}
}

// Send delivers one HTML digest. No retry; the caller decides what a
// failure means for the run.
func (m *Mailer) Send(subject, html string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", html)

	d := gomail.NewDialer(smtpHost, smtpPort, m.from, m.password)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", m.recipient, err)
	}
	return nil
}
