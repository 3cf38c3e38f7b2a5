package services

import (
	"context"
	"fmt"

	"travel-api/internal/config"
	"travel-api/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

type EmailMessage struct {
	To        string
	ToName    string
	Subject   string
	PlainText string
	HTML      string
}

type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// NewMailer returns a SendGrid mailer, or a LogMailer when no API key is set.
func NewMailer(cfg config.MailConfig) Mailer {
	if cfg.SendGridAPIKey == "" {
		return LogMailer{}
	}
	return NewSendGridMailer(cfg)
}

type SendGridMailer struct {
	client *sendgrid.Client
	from   *mail.Email
}

func NewSendGridMailer(cfg config.MailConfig) *SendGridMailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:   mail.NewEmail(cfg.FromName, cfg.FromAddress),
	}
}

func (m *SendGridMailer) Send(ctx context.Context, msg EmailMessage) error {
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(m.from, msg.Subject, to, msg.PlainText, msg.HTML)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("error sending email: status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

// LogMailer writes messages to the application log instead of sending them.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg EmailMessage) error {
	logger.Logger.WithFields(logrus.Fields{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Info("email not sent, mail delivery is not configured")
	return nil
}

// sendMail delivers msg and logs failures without returning them.
func sendMail(ctx context.Context, mailer Mailer, msg EmailMessage) {
	if mailer == nil || msg.To == "" {
		return
	}
	if err := mailer.Send(ctx, msg); err != nil {
		logger.Logger.WithError(err).WithField("to", msg.To).Error("failed to send email")
	}
}
