package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/app/repositories"
	"github.com/hackathon-manager/hackathon/internal/pkg/apperrors"
	"github.com/hackathon-manager/hackathon/internal/pkg/events"
	"github.com/rs/zerolog"
)

// OwnerService manages event organisers
type OwnerService interface {
	ListOwners(ctx context.Context, eventID int64) ([]models.Owner, error)
	AddOwner(ctx context.Context, eventID, userID int64) (*models.Owner, error)
	RemoveOwner(ctx context.Context, eventID, userID int64) error
}

type ownerServiceImpl struct {
	repos     *repositories.Repositories
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewOwnerService creates a new OwnerService
func NewOwnerService(deps Deps, logger zerolog.Logger) OwnerService {
	return &ownerServiceImpl{repos: deps.Repos, publisher: deps.publisher(), logger: logger}
}

func (s *ownerServiceImpl) ListOwners(ctx context.Context, eventID int64) ([]models.Owner, error) {
	owners, err := s.repos.OwnerRepository.ListOwners(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list owners: %w", err)
	}
	return owners, nil
}

func (s *ownerServiceImpl) AddOwner(ctx context.Context, eventID, userID int64) (*models.Owner, error) {
	if _, err := s.repos.EventRepository.GetEventByID(ctx, eventID); err != nil {
		return nil, notFound(err, apperrors.MsgNoEvent, "add owner")
	}
	if _, err := s.repos.UserRepository.GetUserByID(ctx, userID); err != nil {
		return nil, notFound(err, apperrors.MsgNoUser, "add owner")
	}

	owner, err := s.repos.OwnerRepository.AddOwner(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidReference) {
			return nil, apperrors.NewResourceNotFoundError(apperrors.MsgNoEvent)
		}
		return nil, conflict(err, "add owner")
	}

	s.publisher.Publish(events.Event{Topic: events.TopicEventChanged, Action: "owner_added", EntityID: eventID, Recipients: []int64{userID}})
	return owner, nil
}

func (s *ownerServiceImpl) RemoveOwner(ctx context.Context, eventID, userID int64) error {
	if err := s.repos.OwnerRepository.RemoveOwner(ctx, eventID, userID); err != nil {
		return notFound(err, apperrors.MsgNoOwner, "remove owner")
	}
	s.publisher.Publish(events.Event{Topic: events.TopicEventChanged, Action: "owner_removed", EntityID: eventID, Recipients: []int64{userID}})
	return nil
}
