package email

import (
	"bytes"
	"context"
	"crypto/rand"
	"fmt"
	"html/template"
	"math/big"
	"net/url"

	"github.com/rs/zerolog"
)

// Sender delivers transactional mail
type Sender interface {
	SendActivationEmail(ctx context.Context, toEmail, toName, code string) error
}

// Config selects and configures the provider
type Config struct {
	Provider     string // log, smtp or resend
	FromName     string
	FromEmail    string
	BaseURL      string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPUseTLS   bool
	ResendAPIKey string
}

// NewSender builds the Sender for cfg.Provider
func NewSender(cfg Config, logger zerolog.Logger) (Sender, error) {
	switch cfg.Provider {
	case "", "log":
		return NewLogSender(cfg, logger), nil
	case "smtp":
		return NewSMTPSender(cfg, logger), nil
	case "resend":
		return NewResendSender(cfg, logger), nil
	}
	return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
}

const activationSubject = "Activate your hackathon account"

var activationTemplate = template.Must(template.New("activation").Parse(`<html>
<body>
	<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2 style="color: #333;">Welcome to the hackathon!</h2>
		<p>Hello {{.Name}},</p>
		<p>Your activation code is: <strong>{{.Code}}</strong></p>
		<p>Enter it on the activation page or follow this link:</p>
		<div style="text-align: center; margin: 30px 0;">
			<a href="{{.Link}}" style="background-color: #4a86e8; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; font-weight: bold;">Activate account</a>
		</div>
		<p>If you did not register, please ignore this email.</p>
	</div>
</body>
</html>`))

// activationLink points the frontend activation page at the code
func activationLink(baseURL, toEmail, code string) string {
	q := url.Values{}
	q.Set("email", toEmail)
	q.Set("code", code)
	return baseURL + "/activate?" + q.Encode()
}

func renderActivation(baseURL, toEmail, toName, code string) (string, error) {
	var buf bytes.Buffer
	err := activationTemplate.Execute(&buf, map[string]string{
		"Name": toName,
		"Code": code,
		"Link": activationLink(baseURL, toEmail, code),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render activation email: %w", err)
	}
	return buf.String(), nil
}

const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateActivationCode returns an 8 character code without ambiguous glyphs
func GenerateActivationCode() (string, error) {
	result := make([]byte, 8)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeAlphabet))))
		if err != nil {
			return "", fmt.Errorf("failed to generate activation code: %w", err)
		}
		result[i] = codeAlphabet[n.Int64()]
	}
	return string(result), nil
}
