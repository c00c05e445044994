package email

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateActivationCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		code, err := GenerateActivationCode()
		require.NoError(t, err)
		assert.Len(t, code, 8)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(codeAlphabet, r))
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestRenderActivationEscapesInput(t *testing.T) {
	html, err := renderActivation("http://localhost:5173", "a+b@x.com", "<script>", "ABCD2345")
	require.NoError(t, err)
	assert.Contains(t, html, "ABCD2345")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "email=a%2Bb%40x.com")
}

func TestNewSenderSelectsProvider(t *testing.T) {
	s, err := NewSender(Config{Provider: "log"}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &LogSender{}, s)
	assert.NoError(t, s.SendActivationEmail(context.Background(), "a@b.c", "A", "CODE"))

	s, err = NewSender(Config{Provider: "smtp", SMTPHost: "localhost", SMTPPort: 25}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &SMTPSender{}, s)

	s, err = NewSender(Config{Provider: "resend", ResendAPIKey: "re_test"}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &ResendSender{}, s)

	_, err = NewSender(Config{Provider: "pigeon"}, zerolog.Nop())
	assert.Error(t, err)
}

func TestSMTPMessageHeaders(t *testing.T) {
	s := NewSMTPSender(Config{FromName: "Team", FromEmail: "no-reply@x.com"}, zerolog.Nop())
	msg := string(s.buildMessage("u@x.com", "Hi", "<p>body</p>"))
	assert.True(t, strings.HasPrefix(msg, "From: Team <no-reply@x.com>\r\n"))
	assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8\r\n\r\n<p>body</p>")
}
