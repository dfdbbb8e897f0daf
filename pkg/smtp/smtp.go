package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendContactNotification(name, email, project string) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	to   string
	host string
	addr string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	to := os.Getenv("CONTACT_INBOX_MAIL")
	if to == "" {
		to = mail
	}
	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{
		auth: auth,
		mail: mail,
		to:   to,
		host: host,
		addr: host + ":587",
	}
}

// SendContactNotification mails the site owner about a new inquiry. Callers
// treat failures as best effort; the inbox row is already persisted.
func (s *smtp) SendContactNotification(name, email, project string) error {
	to := []string{s.to}

	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: Project Inquiry: %s\r\n\r\n%s (%s) wants to discuss: %s",
		s.to, project, name, email, project))

	if err := smtpPkg.SendMail(s.addr, s.auth, s.mail, to, message); err != nil {
		return err
	}

	return nil
}
