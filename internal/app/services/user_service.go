package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	appAuth "github.com/hackathon-manager/hackathon/internal/app/auth"
	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/app/models/dto"
	"github.com/hackathon-manager/hackathon/internal/app/repositories"
	"github.com/hackathon-manager/hackathon/internal/pkg/apperrors"
	"github.com/hackathon-manager/hackathon/internal/pkg/auth"
	"github.com/hackathon-manager/hackathon/internal/pkg/events"
	"github.com/hackathon-manager/hackathon/internal/pkg/filestorage"
	"github.com/hackathon-manager/hackathon/internal/pkg/validation"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// UserService manages user records
type UserService interface {
	GetMe(ctx context.Context, actor *auth.Claims) (*models.User, error)
	ListUsers(ctx context.Context, actor *auth.Claims) ([]models.User, error)
	GetUser(ctx context.Context, actor *auth.Claims, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, actor *auth.Claims, id int64, req *dto.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, actor *auth.Claims, id int64) error
	UploadAvatar(ctx context.Context, actor *auth.Claims, id int64, file *multipart.FileHeader) (*models.User, error)
}

type userServiceImpl struct {
	repos     *repositories.Repositories
	tx        Transactor
	storage   filestorage.FileStorage
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(deps Deps, storage filestorage.FileStorage, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		repos:     deps.Repos,
		tx:        deps.Tx,
		storage:   storage,
		publisher: deps.publisher(),
		logger:    logger,
	}
}

// GetMe returns the caller's own record, unfiltered
func (s *userServiceImpl) GetMe(ctx context.Context, actor *auth.Claims) (*models.User, error) {
	user, err := s.repos.UserRepository.GetUserByID(ctx, actor.ID)
	if err != nil {
		return nil, notFound(err, apperrors.MsgNoUser, "get me")
	}
	return user, nil
}

// ListUsers returns all users with private fields hidden from non-managers
func (s *userServiceImpl) ListUsers(ctx context.Context, actor *auth.Claims) ([]models.User, error) {
	users, err := s.repos.UserRepository.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return appAuth.FilterUsers(users, actor.Role), nil
}

// GetUser returns one user, filtered unless the caller is looking at themselves
func (s *userServiceImpl) GetUser(ctx context.Context, actor *auth.Claims, id int64) (*models.User, error) {
	user, err := s.repos.UserRepository.GetUserByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.MsgNoUser, "get user")
	}
	if actor.ID == id {
		return user, nil
	}
	filtered := appAuth.FilterUser(*user, actor.Role)
	return &filtered, nil
}

// UpdateUser applies a partial update. Role changes need Manager+ and cannot
// exceed the caller's rank; users ranked above the caller are off limits.
func (s *userServiceImpl) UpdateUser(ctx context.Context, actor *auth.Claims, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	if err := requireSelfOrManager(actor, id); err != nil {
		return nil, err
	}

	user, err := s.repos.UserRepository.GetUserByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.MsgNoUser, "update user")
	}
	if actor.ID != id && !appAuth.CheckPermissions(actor.Role, user.RoleID) {
		return nil, apperrors.NewForbiddenError(apperrors.MsgNoPermission)
	}

	if req.Name != nil {
		if user.Name = strings.TrimSpace(*req.Name); user.Name == "" {
			return nil, apperrors.NewBadRequestError(apperrors.MsgMissingFields)
		}
	}
	if req.Email != nil {
		user.Email = validation.NormalizeEmail(*req.Email)
	}
	if req.Telephone != nil {
		user.Telephone = strings.TrimSpace(*req.Telephone)
	}
	if req.IsPrivateEmail != nil {
		user.IsPrivateEmail = *req.IsPrivateEmail
	}
	if req.IsPrivateTelephone != nil {
		user.IsPrivateTelephone = *req.IsPrivateTelephone
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
		if user.AvatarURL == "" {
			user.AvatarURL = models.DefaultAvatarURL
		}
	}
	if req.Password != nil {
		if user.PasswordHash, err = auth.HashPassword(*req.Password); err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
	}
	if req.RoleID != nil && *req.RoleID != user.RoleID {
		if !appAuth.CanAssignRole(actor.Role, *req.RoleID) {
			return nil, apperrors.NewForbiddenError(apperrors.MsgNoPermission)
		}
		user.RoleID = *req.RoleID
	}

	if err := s.repos.UserRepository.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError(apperrors.MsgNoUser)
		}
		return nil, conflict(err, "update user")
	}

	s.publisher.Publish(events.Event{Topic: events.TopicUserUpdated, Action: "updated", EntityID: id, Recipients: []int64{id}})
	return user, nil
}

// DeleteUser removes a user. Open bookings release their slots first; memberships,
// owner rows and booking history are removed by the schema cascades.
func (s *userServiceImpl) DeleteUser(ctx context.Context, actor *auth.Claims, id int64) error {
	if err := requireSelfOrManager(actor, id); err != nil {
		return err
	}

	var avatar string
	err := s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		users := s.repos.UserRepository.WithTx(tx)
		bookings := s.repos.BookingRepository.WithTx(tx)
		parking := s.repos.ParkingRepository.WithTx(tx)

		user, err := users.GetUserByID(ctx, id)
		if err != nil {
			return notFound(err, apperrors.MsgNoUser, "delete user")
		}
		if actor.ID != id && !appAuth.CheckPermissions(actor.Role, user.RoleID) {
			return apperrors.NewForbiddenError(apperrors.MsgNoPermission)
		}
		avatar = user.AvatarURL

		open, err := bookings.ListOpenBookingsByUser(ctx, id)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		for _, b := range open {
			if err := parking.SetSlotStatus(ctx, b.SlotID, models.SlotStatusFree); err != nil && !errors.Is(err, repositories.ErrNotFound) {
				return fmt.Errorf("delete user: %w", err)
			}
		}

		if err := users.DeleteUser(ctx, id); err != nil {
			return notFound(err, apperrors.MsgNoUser, "delete user")
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.storage != nil {
		_ = s.storage.DeleteFile(avatar)
	}
	s.publisher.Publish(events.Event{Topic: events.TopicUserDeleted, Action: "deleted", EntityID: id})
	s.logger.Info().Int64("userID", id).Int64("actorID", actor.ID).Msg("User deleted")
	return nil
}

// UploadAvatar stores a new avatar image and points the user at it
func (s *userServiceImpl) UploadAvatar(ctx context.Context, actor *auth.Claims, id int64, file *multipart.FileHeader) (*models.User, error) {
	if err := requireSelfOrManager(actor, id); err != nil {
		return nil, err
	}

	user, err := s.repos.UserRepository.GetUserByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.MsgNoUser, "upload avatar")
	}

	url, err := s.storage.SaveFile(file, "avatars")
	if err != nil {
		if errors.Is(err, filestorage.ErrUnsupportedType) || errors.Is(err, filestorage.ErrTooLarge) {
			return nil, apperrors.NewBadRequestError(apperrors.MsgInvalidFile)
		}
		return nil, fmt.Errorf("upload avatar: %w", err)
	}

	if err := s.repos.UserRepository.UpdateAvatarURL(ctx, id, url); err != nil {
		_ = s.storage.DeleteFile(url)
		return nil, notFound(err, apperrors.MsgNoUser, "upload avatar")
	}
	_ = s.storage.DeleteFile(user.AvatarURL)
	user.AvatarURL = url

	s.publisher.Publish(events.Event{Topic: events.TopicUserUpdated, Action: "avatar", EntityID: id, Recipients: []int64{id}})
	return user, nil
}
