package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/pkg/logger"
)

// OwnerRepository handles event organiser rows
type OwnerRepository struct {
	db DBTX
}

// NewOwnerRepository creates a new OwnerRepository
func NewOwnerRepository(db DBTX) *OwnerRepository {
	return &OwnerRepository{db: db}
}

// AddOwner inserts an (event, user) organiser row
func (r *OwnerRepository) AddOwner(ctx context.Context, eventID, userID int64) (*models.Owner, error) {
	query, args, err := builder.Insert("owners").
		Columns("event_id", "user_id").
		Values(eventID, userID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build add owner query: %w", err)
	}

	owner := &models.Owner{EventID: eventID, UserID: userID}
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&owner.ID); err != nil {
		switch translateWriteError(err) {
		case ErrAlreadyExists:
			return nil, ErrAlreadyExists
		case ErrInvalidReference:
			return nil, ErrInvalidReference
		}
		logger.Error().Err(err).Int64("eventID", eventID).Int64("userID", userID).Msg("Error adding owner")
		return nil, fmt.Errorf("error adding owner: %w", err)
	}
	return owner, nil
}

// RemoveOwner deletes the (event, user) row, ErrNotFound if absent
func (r *OwnerRepository) RemoveOwner(ctx context.Context, eventID, userID int64) error {
	query, args, err := builder.Delete("owners").
		Where(squirrel.Eq{"event_id": eventID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove owner query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", eventID).Int64("userID", userID).Msg("Error removing owner")
		return fmt.Errorf("error removing owner: %w", err)
	}
	return requireAffected(res)
}

// ListOwners returns organiser rows, restricted to one event when eventID > 0
func (r *OwnerRepository) ListOwners(ctx context.Context, eventID int64) ([]models.Owner, error) {
	qb := builder.Select("id", "event_id", "user_id").From("owners").OrderBy("id ASC")
	if eventID > 0 {
		qb = qb.Where(squirrel.Eq{"event_id": eventID})
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list owners query: %w", err)
	}

	owners := []models.Owner{}
	if err := r.db.SelectContext(ctx, &owners, query, args...); err != nil {
		logger.Error().Err(err).Int64("eventID", eventID).Msg("Error listing owners")
		return nil, fmt.Errorf("error listing owners: %w", err)
	}
	return owners, nil
}
