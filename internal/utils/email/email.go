package email

import (
	"fmt"
	"net/smtp"

	"github.com/finapp-cl/finance-service/internal/config"
	"github.com/finapp-cl/finance-service/internal/models"
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

// SendGoalAlert sends the goal alert digest listing every goal that needs
// the user's attention
func (s *Sender) SendGoalAlert(to, username string, alerts []models.GoalAlert) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Alerta sobre tus metas financieras"

	body := fmt.Sprintf("Hola %s,\n\n", username)
	body += "Estas metas necesitan tu atención:\n\n"
	for _, alert := range alerts {
		body += fmt.Sprintf("- %s [%s]: %s\n", alert.GoalName, alert.Status, alert.Advice)
	}
	body += "\nSaludos,\nFinApp"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
