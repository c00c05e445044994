package validation

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/hackathon-manager/hackathon/internal/app/models"
)

// Validation rule patterns
var (
	// PasswordMinLength applies when a password is set
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 1
	NameMaxLength = 100
)

// NormalizeEmail trims surrounding space. Case is kept; lookups compare case-insensitively.
func NormalizeEmail(s string) string {
	return strings.TrimSpace(s)
}

// EmailDomain returns the lower-cased part after the last '@'
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// DomainAllowed reports whether the email's domain is in the allow-list.
// Entries match exactly or as a parent domain ("example.com" allows "dev.example.com").
func DomainAllowed(email string, allowed []string) bool {
	domain := EmailDomain(email)
	if domain == "" {
		return false
	}
	for _, a := range allowed {
		a = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(a), "@"))
		if a == "" {
			continue
		}
		if domain == a || strings.HasSuffix(domain, "."+a) {
			return true
		}
	}
	return false
}

// RegisterCustomValidators adds the domain tags to gin's validator engine:
// role, project_status and booking_type.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

// RegisterOn adds the custom tags to v
func RegisterOn(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"role": func(fl validator.FieldLevel) bool {
			return models.Role(fl.Field().Int()).Valid()
		},
		"project_status": func(fl validator.FieldLevel) bool {
			return models.ProjectStatus(fl.Field().Int()).Valid()
		},
		"booking_type": func(fl validator.FieldLevel) bool {
			return models.BookingType(fl.Field().Int()).Valid()
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
