package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/app/models/dto"
	"github.com/hackathon-manager/hackathon/internal/app/repositories"
	"github.com/hackathon-manager/hackathon/internal/pkg/apperrors"
	"github.com/hackathon-manager/hackathon/internal/pkg/auth"
	"github.com/hackathon-manager/hackathon/internal/pkg/email"
	"github.com/hackathon-manager/hackathon/internal/pkg/events"
	"github.com/hackathon-manager/hackathon/internal/pkg/helpers"
	"github.com/hackathon-manager/hackathon/internal/pkg/validation"
	"github.com/rs/zerolog"
)

// AuthService handles login, self-registration and account activation
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Activate(ctx context.Context, req *dto.ActivateRequest) (*models.User, error)
}

type authServiceImpl struct {
	userRepo       *repositories.UserRepository
	jwtService     *auth.JWTService
	mailer         email.Sender
	publisher      events.Publisher
	allowedDomains []string
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(deps Deps, jwtService *auth.JWTService, mailer email.Sender, allowedDomains []string, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo:       deps.Repos.UserRepository,
		jwtService:     jwtService,
		mailer:         mailer,
		publisher:      deps.publisher(),
		allowedDomains: allowedDomains,
		logger:         logger,
	}
}

// Login checks the credentials and issues an access token
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, validation.NormalizeEmail(req.Email))
	if err != nil {
		return nil, notFound(err, apperrors.MsgNoUser, "login")
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Info().Int64("userID", user.ID).Msg("Failed login attempt")
		return nil, &apperrors.CustomError{Err: apperrors.ErrInvalidCredentials, Message: apperrors.MsgInvalidCredentials}
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &dto.LoginResponse{Token: token}, nil
}

// Register creates a NEW account and mails its activation code. A failed
// mail delivery is logged and does not undo the registration.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	addr := validation.NormalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if name == "" || addr == "" {
		return nil, apperrors.NewBadRequestError(apperrors.MsgMissingFields)
	}

	code, err := email.GenerateActivationCode()
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := &models.User{
		Name:               name,
		Email:              addr,
		Telephone:          strings.TrimSpace(req.Telephone),
		IsPrivateEmail:     req.IsPrivateEmail,
		IsPrivateTelephone: req.IsPrivateTelephone,
		RoleID:             models.RoleNew,
		AvatarURL:          req.AvatarURL,
		ActivationCode:     &code,
		CreatedAt:          helpers.NowUnix(),
	}
	if user.AvatarURL == "" {
		user.AvatarURL = models.DefaultAvatarURL
	}
	if req.Password != "" {
		if user.PasswordHash, err = auth.HashPassword(req.Password); err != nil {
			return nil, fmt.Errorf("register: %w", err)
		}
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, conflict(err, "register")
	}

	if err := s.mailer.SendActivationEmail(ctx, user.Email, user.Name, code); err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Activation email could not be sent")
	}

	s.publisher.Publish(events.Event{Topic: events.TopicUserCreated, Action: "created", EntityID: user.ID})
	s.logger.Info().Int64("userID", user.ID).Msg("User registered")
	return user, nil
}

// Activate redeems the activation code. Users whose email domain is on the
// allow-list become USER, everyone else GUEST.
func (s *authServiceImpl) Activate(ctx context.Context, req *dto.ActivateRequest) (*models.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, validation.NormalizeEmail(req.Email))
	if err != nil {
		return nil, notFound(err, apperrors.MsgNoUser, "activate")
	}

	given := strings.ToUpper(strings.TrimSpace(req.ActivationCode))
	if user.ActivationCode == nil || subtle.ConstantTimeCompare([]byte(*user.ActivationCode), []byte(given)) != 1 {
		return nil, apperrors.NewBadRequestError(apperrors.MsgInvalidActivationCode)
	}

	if req.Password != "" {
		if user.PasswordHash, err = auth.HashPassword(req.Password); err != nil {
			return nil, fmt.Errorf("activate: %w", err)
		}
	}
	if user.PasswordHash == "" {
		return nil, apperrors.NewBadRequestError(apperrors.MsgMissingFields)
	}

	user.ActivationCode = nil
	user.RoleID = models.RoleGuest
	if validation.DomainAllowed(user.Email, s.allowedDomains) {
		user.RoleID = models.RoleUser
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError(apperrors.MsgNoUser)
		}
		return nil, fmt.Errorf("activate: %w", err)
	}

	s.publisher.Publish(events.Event{Topic: events.TopicUserUpdated, Action: "activated", EntityID: user.ID, Recipients: []int64{user.ID}})
	s.logger.Info().Int64("userID", user.ID).Str("role", user.RoleID.String()).Msg("User activated")
	return user, nil
}
