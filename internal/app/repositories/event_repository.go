package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/pkg/logger"
)

// EventRepository handles event database operations
type EventRepository struct {
	db DBTX
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db DBTX) *EventRepository {
	return &EventRepository{db: db}
}

// WithTx returns a copy of the repository bound to tx
func (r *EventRepository) WithTx(tx DBTX) *EventRepository {
	return &EventRepository{db: tx}
}

// CreateEvent inserts an event and stores the generated id on it
func (r *EventRepository) CreateEvent(ctx context.Context, event *models.Event) error {
	query, args, err := builder.Insert("events").
		Columns("name", "start_time", "end_time").
		Values(event.Name, event.StartTime, event.EndTime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create event query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&event.ID); err != nil {
		if translateWriteError(err) == ErrAlreadyExists {
			return ErrAlreadyExists
		}
		logger.Error().Err(err).Str("name", event.Name).Msg("Error creating event")
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// GetEventByID retrieves an event by ID
func (r *EventRepository) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	query, args, err := builder.Select("id", "name", "start_time", "end_time").
		From("events").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	var event models.Event
	if err := r.db.GetContext(ctx, &event, query, args...); err != nil {
		if noRows(err) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error fetching event")
		return nil, fmt.Errorf("error getting event: %w", err)
	}
	return &event, nil
}

// ListEvents returns all events, earliest start first
func (r *EventRepository) ListEvents(ctx context.Context) ([]models.Event, error) {
	query, args, err := builder.Select("id", "name", "start_time", "end_time").
		From("events").
		OrderBy("start_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	events := []models.Event{}
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		logger.Error().Err(err).Msg("Error listing events")
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	return events, nil
}

// UpdateEvent overwrites name and times
func (r *EventRepository) UpdateEvent(ctx context.Context, event *models.Event) error {
	query, args, err := builder.Update("events").
		SetMap(map[string]interface{}{
			"name":       event.Name,
			"start_time": event.StartTime,
			"end_time":   event.EndTime,
		}).
		Where(squirrel.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if translateWriteError(err) == ErrAlreadyExists {
			return ErrAlreadyExists
		}
		logger.Error().Err(err).Int64("eventID", event.ID).Msg("Error updating event")
		return fmt.Errorf("error updating event: %w", err)
	}
	return requireAffected(res)
}

// DeleteEvent removes an event; its projects, memberships and owners cascade
func (r *EventRepository) DeleteEvent(ctx context.Context, id int64) error {
	query, args, err := builder.Delete("events").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", id).Msg("Error deleting event")
		return fmt.Errorf("error deleting event: %w", err)
	}
	return requireAffected(res)
}
