package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/app/models/dto"
	"github.com/hackathon-manager/hackathon/internal/app/repositories"
	"github.com/hackathon-manager/hackathon/internal/pkg/apperrors"
	"github.com/hackathon-manager/hackathon/internal/pkg/events"
	"github.com/rs/zerolog"
)

// EventService manages hackathon events
type EventService interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, id int64) (*models.Event, error)
	CreateEvent(ctx context.Context, req *dto.EventRequest) (*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, req *dto.EventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type eventServiceImpl struct {
	eventRepo *repositories.EventRepository
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(deps Deps, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		eventRepo: deps.Repos.EventRepository,
		publisher: deps.publisher(),
		logger:    logger,
	}
}

func eventFromRequest(req *dto.EventRequest) (*models.Event, error) {
	event := &models.Event{
		Name:      strings.TrimSpace(req.Name),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if event.Name == "" {
		return nil, apperrors.NewBadRequestError(apperrors.MsgMissingFields)
	}
	if event.EndTime < event.StartTime {
		return nil, apperrors.NewBadRequestError(apperrors.MsgInvalidTimeRange)
	}
	return event, nil
}

// ListEvents returns every event. An empty table is reported as 404.
func (s *eventServiceImpl) ListEvents(ctx context.Context) ([]models.Event, error) {
	list, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if len(list) == 0 {
		return nil, apperrors.NewResourceNotFoundError(apperrors.MsgNoEvents)
	}
	return list, nil
}

// GetEvent retrieves one event
func (s *eventServiceImpl) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	event, err := s.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.MsgNoEvent, "get event")
	}
	return event, nil
}

// CreateEvent inserts an event; names are unique ignoring case
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.EventRequest) (*models.Event, error) {
	event, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.CreateEvent(ctx, event); err != nil {
		return nil, conflict(err, "create event")
	}

	s.publisher.Publish(events.Event{Topic: events.TopicEventChanged, Action: "created", EntityID: event.ID, Data: event})
	s.logger.Info().Int64("eventID", event.ID).Str("name", event.Name).Msg("Event created")
	return event, nil
}

// UpdateEvent replaces name and times
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id int64, req *dto.EventRequest) (*models.Event, error) {
	event, err := eventFromRequest(req)
	if err != nil {
		return nil, err
	}
	event.ID = id

	if err := s.eventRepo.UpdateEvent(ctx, event); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError(apperrors.MsgNoEvent)
		}
		return nil, conflict(err, "update event")
	}

	s.publisher.Publish(events.Event{Topic: events.TopicEventChanged, Action: "updated", EntityID: id, Data: event})
	return event, nil
}

// DeleteEvent removes an event with its projects, memberships and owners
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.eventRepo.DeleteEvent(ctx, id); err != nil {
		return notFound(err, apperrors.MsgNoEvent, "delete event")
	}

	s.publisher.Publish(events.Event{Topic: events.TopicEventChanged, Action: "deleted", EntityID: id})
	s.logger.Info().Int64("eventID", id).Msg("Event deleted")
	return nil
}
