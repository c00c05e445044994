package email

import (
	"context"

	"github.com/rs/zerolog"
)

// LogSender writes activation codes to the log instead of sending mail
type LogSender struct {
	baseURL string
	logger  zerolog.Logger
}

// NewLogSender creates a LogSender
func NewLogSender(cfg Config, logger zerolog.Logger) *LogSender {
	return &LogSender{baseURL: cfg.BaseURL, logger: logger}
}

// SendActivationEmail implements Sender
func (s *LogSender) SendActivationEmail(_ context.Context, toEmail, toName, code string) error {
	s.logger.Warn().
		Str("toEmail", toEmail).
		Str("toName", toName).
		Str("code", code).
		Str("activationURL", activationLink(s.baseURL, toEmail, code)).
		Msg("Email provider is log - activation email not sent")
	return nil
}
