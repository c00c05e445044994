package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/app/repositories"
	"github.com/hackathon-manager/hackathon/internal/pkg/auth"
	"github.com/hackathon-manager/hackathon/internal/pkg/helpers"
	"github.com/hackathon-manager/hackathon/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// AdminAccount describes the bootstrap administrator
type AdminAccount struct {
	Email    string
	Password string
}

// CreateDefaultAdmin creates the administrator account when the email is
// configured and not yet registered. It is safe to call on every start.
func CreateDefaultAdmin(ctx context.Context, users *repositories.UserRepository, admin AdminAccount, lgr zerolog.Logger) error {
	addr := validation.NormalizeEmail(admin.Email)
	if addr == "" || admin.Password == "" {
		lgr.Info().Msg("No admin account configured, skipping creation")
		return nil
	}

	exists, err := users.EmailExists(ctx, addr, 0)
	if err != nil {
		return fmt.Errorf("check admin account: %w", err)
	}
	if exists {
		lgr.Info().Str("email", addr).Msg("Admin user already exists, skipping creation")
		return nil
	}

	hash, err := auth.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	user := &models.User{
		Name:           "Administrator",
		Email:          addr,
		IsPrivateEmail: true,
		PasswordHash:   hash,
		RoleID:         models.RoleAdmin,
		AvatarURL:      models.DefaultAvatarURL,
		CreatedAt:      helpers.NowUnix(),
	}
	if err := users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrAlreadyExists) {
			return nil
		}
		return fmt.Errorf("create admin account: %w", err)
	}

	lgr.Info().Int64("adminID", user.ID).Str("email", addr).Msg("Default admin user created")
	return nil
}
