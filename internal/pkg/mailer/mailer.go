package mailer

import (
	"interiorstudio/internal/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends notification mail through plain SMTP. A nil *Mailer is a valid
// no-op sender, so wiring stays unconditional.
type Mailer struct {
	cfg config.SMTP
}

func New(cfg config.SMTP) *Mailer {
	if cfg.Host == "" {
		return nil
	}
	return &Mailer{cfg: cfg}
}

func (m *Mailer) Send(to, subject, body string) error {
	if m == nil {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	return d.DialAndSend(msg)
}

// NotifyAddress is where inquiry notifications go; empty disables them.
func (m *Mailer) NotifyAddress() string {
	if m == nil {
		return ""
	}
	return m.cfg.NotifyTo
}
