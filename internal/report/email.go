package report

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/finwell/finance-service/internal/config"
	"github.com/finwell/finance-service/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

// Sender delivers periodic health reports via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new report sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendHealthReport sends a financial health summary email
func (s *Sender) SendHealthReport(to, username string, health models.HealthAssessment, insights []models.Insight) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Your Financial Health Report: %s (%d/100)", health.Status, health.Score)

	var body strings.Builder
	fmt.Fprintf(&body, "Dear %s,\n\n", username)
	fmt.Fprintf(&body, "Your financial health score this week is %d out of 100 (%s).\n\n", health.Score, health.Status)

	if len(health.Strengths) > 0 {
		body.WriteString("What is going well:\n")
		for _, st := range health.Strengths {
			fmt.Fprintf(&body, "  - %s\n", st)
		}
		body.WriteString("\n")
	}
	if len(health.Weaknesses) > 0 {
		body.WriteString("What needs attention:\n")
		for _, wk := range health.Weaknesses {
			fmt.Fprintf(&body, "  - %s\n", wk)
		}
		body.WriteString("\n")
	}
	if len(insights) > 0 {
		body.WriteString("Top findings:\n")
		for _, in := range insights {
			fmt.Fprintf(&body, "  - [%s] %s: %s\n", in.Impact, in.Title, in.Description)
		}
		body.WriteString("\n")
	}
	body.WriteString("Best regards,\nFinwell")
	e.Text = []byte(body.String())

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send report to %s: %v", to, err)
		return fmt.Errorf("failed to send report: %w", err)
	}

	s.logger.Infof("Report sent to %s: %s", to, e.Subject)
	return nil
}
