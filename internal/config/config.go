package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port        string   `yaml:"port" env:"SERVER_PORT"`
		Mode        string   `yaml:"mode" env:"SERVER_MODE"`
		BaseURL     string   `yaml:"base_url" env:"APP_BASE_URL"`
		CORSOrigins []string `yaml:"cors_origins" env:"CORS_ORIGINS"`
		StoragePath string   `yaml:"storage_path" env:"STORAGE_PATH"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path" env:"DB_PATH"`
	} `yaml:"database"`

	JWT struct {
		Secret     string `yaml:"secret" env:"JWT_SECRET"`
		Expiration string `yaml:"expiration" env:"JWT_EXPIRATION"`
		Issuer     string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Email struct {
		Provider     string `yaml:"provider" env:"EMAIL_PROVIDER"`
		FromName     string `yaml:"from_name" env:"EMAIL_FROM_NAME"`
		FromAddress  string `yaml:"from_address" env:"SMTP_FROM"`
		SMTPHost     string `yaml:"smtp_host" env:"SMTP_HOST"`
		SMTPPort     int    `yaml:"smtp_port" env:"SMTP_PORT"`
		SMTPUser     string `yaml:"smtp_user" env:"SMTP_USER"`
		SMTPPassword string `yaml:"smtp_password" env:"SMTP_PASSWORD"`
		SMTPUseTLS   bool   `yaml:"smtp_tls" env:"SMTP_TLS"`
		ResendAPIKey string `yaml:"resend_api_key" env:"RESEND_API_KEY"`
	} `yaml:"email"`

	Registration struct {
		AllowedDomains []string `yaml:"allowed_domains" env:"ALLOWED_DOMAINS"`
		AdminEmail     string   `yaml:"admin_email" env:"ADMIN_EMAIL"`
		AdminPassword  string   `yaml:"admin_password" env:"ADMIN_PASSWORD"`
	} `yaml:"registration"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file, a .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// A missing .env file is normal outside development.
	_ = godotenv.Load()

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "3000"
	config.Server.Mode = "development"
	config.Server.BaseURL = "http://localhost:3000"
	config.Server.CORSOrigins = []string{"http://localhost:5173", "http://localhost:8100"}
	config.Server.StoragePath = "./uploads"

	config.Database.Path = "./hackathon.db"

	config.JWT.Expiration = "2h"
	config.JWT.Issuer = "hackathon-manager"

	config.Email.Provider = "log"
	config.Email.FromName = "Hackathon Team"
	config.Email.FromAddress = "no-reply@localhost"
	config.Email.SMTPPort = 587

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if config.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}
	if _, err := time.ParseDuration(config.JWT.Expiration); err != nil {
		return fmt.Errorf("invalid JWT expiration format: %w", err)
	}
	switch config.Email.Provider {
	case "log", "smtp", "resend":
	default:
		return fmt.Errorf("unknown email provider %q", config.Email.Provider)
	}
	if config.Email.Provider == "smtp" && config.Email.SMTPHost == "" {
		return fmt.Errorf("SMTP host is required for the smtp email provider")
	}
	if config.Email.Provider == "resend" && config.Email.ResendAPIKey == "" {
		return fmt.Errorf("Resend API key is required for the resend email provider")
	}
	return nil
}

// PublicView is the configuration as exposed by /api/health/config. Secrets are left out.
type PublicView struct {
	Server struct {
		Port        string   `json:"port"`
		Mode        string   `json:"mode"`
		BaseURL     string   `json:"base_url"`
		CORSOrigins []string `json:"cors_origins"`
		StoragePath string   `json:"storage_path"`
	} `json:"server"`
	Database struct {
		Path string `json:"path"`
	} `json:"database"`
	JWT struct {
		Expiration string `json:"expiration"`
		Issuer     string `json:"issuer"`
	} `json:"jwt"`
	Email struct {
		Provider    string `json:"provider"`
		FromName    string `json:"from_name"`
		FromAddress string `json:"from_address"`
		SMTPHost    string `json:"smtp_host"`
		SMTPPort    int    `json:"smtp_port"`
		SMTPUser    string `json:"smtp_user"`
		SMTPUseTLS  bool   `json:"smtp_tls"`
	} `json:"email"`
	Registration struct {
		AllowedDomains []string `json:"allowed_domains"`
		AdminEmail     string   `json:"admin_email"`
	} `json:"registration"`
	Logging struct {
		Level  string `json:"level"`
		Format string `json:"format"`
	} `json:"logging"`
}

// Public copies every non-sensitive setting into a PublicView.
func (c *Config) Public() PublicView {
	var v PublicView
	v.Server.Port = c.Server.Port
	v.Server.Mode = c.Server.Mode
	v.Server.BaseURL = c.Server.BaseURL
	v.Server.CORSOrigins = c.Server.CORSOrigins
	v.Server.StoragePath = c.Server.StoragePath
	v.Database.Path = c.Database.Path
	v.JWT.Expiration = c.JWT.Expiration
	v.JWT.Issuer = c.JWT.Issuer
	v.Email.Provider = c.Email.Provider
	v.Email.FromName = c.Email.FromName
	v.Email.FromAddress = c.Email.FromAddress
	v.Email.SMTPHost = c.Email.SMTPHost
	v.Email.SMTPPort = c.Email.SMTPPort
	v.Email.SMTPUser = c.Email.SMTPUser
	v.Email.SMTPUseTLS = c.Email.SMTPUseTLS
	v.Registration.AllowedDomains = c.Registration.AllowedDomains
	v.Registration.AdminEmail = c.Registration.AdminEmail
	v.Logging.Level = c.Logging.Level
	v.Logging.Format = c.Logging.Format
	return v
}
