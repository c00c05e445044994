package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/pkg/logger"
)

var userColumns = []string{
	"id", "name", "email", "telephone", "is_private_email", "is_private_telephone",
	"password_hash", "role_id", "avatar_url", "activation_code", "created_at",
}

// UserRepository handles user database operations
type UserRepository struct {
	db DBTX
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx returns a copy of the repository bound to tx
func (r *UserRepository) WithTx(tx DBTX) *UserRepository {
	return &UserRepository{db: tx}
}

// CreateUser inserts a user and stores the generated id on it
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	query, args, err := builder.Insert("users").
		Columns("name", "email", "telephone", "is_private_email", "is_private_telephone",
			"password_hash", "role_id", "avatar_url", "activation_code", "created_at").
		Values(user.Name, user.Email, user.Telephone, user.IsPrivateEmail, user.IsPrivateTelephone,
			user.PasswordHash, user.RoleID, user.AvatarURL, user.ActivationCode, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&user.ID); err != nil {
		if err = translateWriteError(err); err == ErrAlreadyExists {
			return err
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error creating user")
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetUserByEmail retrieves a user by email, ignoring case
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, squirrel.Expr("email = ? COLLATE NOCASE", email))
}

func (r *UserRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.User, error) {
	query, args, err := builder.Select(userColumns...).From("users").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, args...); err != nil {
		if noRows(err) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Msg("Error fetching user")
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return &user, nil
}

// ListUsers returns every user ordered by id
func (r *UserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	query, args, err := builder.Select(userColumns...).From("users").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list users query: %w", err)
	}

	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		logger.Error().Err(err).Msg("Error listing users")
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// UpdateUser writes the mutable profile columns of user
func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	query, args, err := builder.Update("users").
		SetMap(map[string]interface{}{
			"name":                 user.Name,
			"email":                user.Email,
			"telephone":            user.Telephone,
			"is_private_email":     user.IsPrivateEmail,
			"is_private_telephone": user.IsPrivateTelephone,
			"password_hash":        user.PasswordHash,
			"role_id":              user.RoleID,
			"avatar_url":           user.AvatarURL,
			"activation_code":      user.ActivationCode,
		}).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if err = translateWriteError(err); err == ErrAlreadyExists {
			return err
		}
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error updating user")
		return fmt.Errorf("error updating user: %w", err)
	}
	return requireAffected(res)
}

// UpdateAvatarURL sets only the avatar column
func (r *UserRepository) UpdateAvatarURL(ctx context.Context, userID int64, url string) error {
	query, args, err := builder.Update("users").
		Set("avatar_url", url).
		Where(squirrel.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update avatar query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error updating avatar")
		return fmt.Errorf("error updating avatar: %w", err)
	}
	return requireAffected(res)
}

// DeleteUser removes a user. Memberships, owners and bookings go with it via ON DELETE CASCADE.
func (r *UserRepository) DeleteUser(ctx context.Context, id int64) error {
	query, args, err := builder.Delete("users").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error deleting user")
		return fmt.Errorf("error deleting user: %w", err)
	}
	return requireAffected(res)
}

// EmailExists checks if an email is taken, optionally ignoring one user id
func (r *UserRepository) EmailExists(ctx context.Context, email string, exceptID int64) (bool, error) {
	query, args, err := builder.Select("COUNT(1)").
		From("users").
		Where(squirrel.Expr("email = ? COLLATE NOCASE", email)).
		Where(squirrel.NotEq{"id": exceptID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build email exists query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return count > 0, nil
}

// CountUsers returns the total number of users
func (r *UserRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(1) FROM users"); err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return count, nil
}
