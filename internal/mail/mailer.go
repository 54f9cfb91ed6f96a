package mail

import (
	"fmt"
	"log"
	"net/smtp"
)

// Mailer dispatches a single message.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through a plain SMTP relay. Send is synchronous so
// delivery failures surface to the caller instead of vanishing in a
// goroutine.
type SMTPMailer struct {
	Host         string
	Port         string
	From         string
	Username     string
	Password     string
	AuthDisabled bool
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.From, to, subject, body)

	addr := fmt.Sprintf("%s:%s", m.Host, m.Port)
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	if m.AuthDisabled {
		auth = nil
	}

	return smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg))
}

// LogMailer logs instead of sending, for local development without a relay.
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	log.Printf("📬 mail to %s: %s\n%s", to, subject, body)
	return nil
}
