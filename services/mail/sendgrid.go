package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"kdexpertise/utils"
)

// SendGridMailer sends email through the SendGrid API.
type SendGridMailer struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// NewSendGridMailer builds a mailer for the given API key and sender address.
// Returns nil when no API key is configured so callers can fall back to a stub.
func NewSendGridMailer(apiKey, fromEmail, fromName string) *SendGridMailer {
	if apiKey == "" {
		return nil
	}
	if fromName == "" {
		fromName = "KD Expertise"
	}
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, msg Message) error {
	logger := utils.GetLogger()

	from := sgmail.NewEmail(m.fromName, m.fromEmail)
	to := sgmail.NewEmail(msg.ToName, msg.To)
	message := sgmail.NewSingleEmail(from, msg.Subject, to, "", msg.HTML)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		logger.Error("sendgrid send failed", zap.String("to", msg.To), zap.Error(err))
		return fmt.Errorf("mail: sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		logger.Error("sendgrid returned error status",
			zap.Int("status", resp.StatusCode), zap.String("to", msg.To))
		return fmt.Errorf("mail: sendgrid returned status %d", resp.StatusCode)
	}

	logger.Info("email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

// StubMailer logs instead of sending; used when SENDGRID_KEY is unset.
type StubMailer struct{}

func (StubMailer) Send(ctx context.Context, msg Message) error {
	utils.GetLogger().Info("stub mailer: would send email",
		zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}
