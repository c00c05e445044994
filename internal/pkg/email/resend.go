package email

import (
	"context"
	"fmt"

	"github.com/resendlabs/resend-go"
	"github.com/rs/zerolog"
)

// ResendSender delivers mail through the Resend API
type ResendSender struct {
	client  *resend.Client
	from    string
	baseURL string
	logger  zerolog.Logger
}

// NewResendSender creates a ResendSender
func NewResendSender(cfg Config, logger zerolog.Logger) *ResendSender {
	return &ResendSender{
		client:  resend.NewClient(cfg.ResendAPIKey),
		from:    cfg.FromName + " <" + cfg.FromEmail + ">",
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

// SendActivationEmail implements Sender
func (s *ResendSender) SendActivationEmail(ctx context.Context, toEmail, toName, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	html, err := renderActivation(s.baseURL, toEmail, toName, code)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: activationSubject,
		Html:    html,
	}

	resp, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error().Err(err).Str("toEmail", toEmail).Msg("Failed to send activation email")
		return fmt.Errorf("failed to send activation email: %w", err)
	}

	s.logger.Info().Str("toEmail", toEmail).Str("id", resp.Id).Msg("Activation email sent")
	return nil
}
