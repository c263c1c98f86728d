package email

import (
	"fmt"
	"net/smtp"

	"github.com/dexterminal/api/internal/config"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// Enabled reports whether SMTP is configured.
func (s *Sender) Enabled() bool {
	return s.cfg.SMTPHost != ""
}

// SendWelcome sends a short welcome email to a freshly registered user.
func (s *Sender) SendWelcome(to, username string) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Welcome to DEX Terminal"
	e.Text = []byte(fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your DEX Terminal account is ready. Log in to track trending tokens\n"+
			"and build your favorites list.\n\n"+
			"The DEX Terminal team",
		username,
	))

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Welcome email sent to %s", to)
	return nil
}
