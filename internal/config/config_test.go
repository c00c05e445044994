package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "2h", cfg.JWT.Expiration)
	assert.Equal(t, "log", cfg.Email.Provider)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
}

func TestLoadConfigEnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, `
server:
  port: "8080"
jwt:
  secret: from-yaml
registration:
  allowed_domains: [yaml.example]
`)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ALLOWED_DOMAINS", "a.example, b.example,,")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("SMTP_TLS", "true")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "from-yaml", cfg.JWT.Secret)
	assert.Equal(t, []string{"a.example", "b.example"}, cfg.Registration.AllowedDomains)
	assert.Equal(t, 2525, cfg.Email.SMTPPort)
	assert.True(t, cfg.Email.SMTPUseTLS)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"bad expiration", map[string]string{"JWT_SECRET": "x", "JWT_EXPIRATION": "soon"}},
		{"unknown provider", map[string]string{"JWT_SECRET": "x", "EMAIL_PROVIDER": "pigeon"}},
		{"smtp without host", map[string]string{"JWT_SECRET": "x", "EMAIL_PROVIDER": "smtp"}},
		{"resend without key", map[string]string{"JWT_SECRET": "x", "EMAIL_PROVIDER": "resend"}},
		{"bad integer", map[string]string{"JWT_SECRET": "x", "SMTP_PORT": "many"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			os.Unsetenv("JWT_SECRET")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
			assert.Error(t, err)
		})
	}
}

func TestPublicOmitsSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "jwt-secret-value")
	t.Setenv("SMTP_PASSWORD", "smtp-secret-value")
	t.Setenv("RESEND_API_KEY", "resend-secret-value")
	t.Setenv("ADMIN_PASSWORD", "admin-secret-value")
	t.Setenv("ADMIN_EMAIL", "root@example.com")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	raw, err := json.Marshal(cfg.Public())
	require.NoError(t, err)
	body := string(raw)

	assert.NotContains(t, body, "jwt-secret-value")
	assert.NotContains(t, body, "smtp-secret-value")
	assert.NotContains(t, body, "resend-secret-value")
	assert.NotContains(t, body, "admin-secret-value")
	assert.Contains(t, body, "root@example.com")
	assert.Contains(t, body, `"port":"3000"`)
}
