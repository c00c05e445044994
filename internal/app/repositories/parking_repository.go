package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/pkg/logger"
)

// ParkingRepository handles parking lots and their slots
type ParkingRepository struct {
	db DBTX
}

// NewParkingRepository creates a new ParkingRepository
func NewParkingRepository(db DBTX) *ParkingRepository {
	return &ParkingRepository{db: db}
}

// WithTx returns a copy of the repository bound to tx
func (r *ParkingRepository) WithTx(tx DBTX) *ParkingRepository {
	return &ParkingRepository{db: tx}
}

// CreateLot inserts a parking lot and stores the generated id on it
func (r *ParkingRepository) CreateLot(ctx context.Context, lot *models.ParkingLot) error {
	query, args, err := builder.Insert("parking_lots").
		Columns("name").
		Values(lot.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create lot query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&lot.ID); err != nil {
		if translateWriteError(err) == ErrAlreadyExists {
			return ErrAlreadyExists
		}
		logger.Error().Err(err).Str("name", lot.Name).Msg("Error creating parking lot")
		return fmt.Errorf("error creating parking lot: %w", err)
	}
	return nil
}

// CreateSlot inserts a slot into an existing lot
func (r *ParkingRepository) CreateSlot(ctx context.Context, slot *models.ParkingSlot) error {
	query, args, err := builder.Insert("parking_slots").
		Columns("lot_id", "name", "status_id").
		Values(slot.LotID, slot.Name, slot.StatusID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create slot query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&slot.ID); err != nil {
		if e := translateWriteError(err); e == ErrAlreadyExists || e == ErrInvalidReference {
			return e
		}
		logger.Error().Err(err).Int64("lotID", slot.LotID).Msg("Error creating parking slot")
		return fmt.Errorf("error creating parking slot: %w", err)
	}
	return nil
}

// ListLots returns every lot with its slots
func (r *ParkingRepository) ListLots(ctx context.Context) ([]models.ParkingLot, error) {
	lots := []models.ParkingLot{}
	if err := r.db.SelectContext(ctx, &lots, "SELECT id, name FROM parking_lots ORDER BY id ASC"); err != nil {
		logger.Error().Err(err).Msg("Error listing parking lots")
		return nil, fmt.Errorf("error listing parking lots: %w", err)
	}

	slots := []models.ParkingSlot{}
	if err := r.db.SelectContext(ctx, &slots, "SELECT id, lot_id, name, status_id FROM parking_slots ORDER BY lot_id ASC, id ASC"); err != nil {
		logger.Error().Err(err).Msg("Error listing parking slots")
		return nil, fmt.Errorf("error listing parking slots: %w", err)
	}

	byLot := make(map[int64][]models.ParkingSlot, len(lots))
	for _, s := range slots {
		byLot[s.LotID] = append(byLot[s.LotID], s)
	}
	for i := range lots {
		lots[i].Slots = byLot[lots[i].ID]
		if lots[i].Slots == nil {
			lots[i].Slots = []models.ParkingSlot{}
		}
	}
	return lots, nil
}

// GetSlotByID retrieves a single slot
func (r *ParkingRepository) GetSlotByID(ctx context.Context, id int64) (*models.ParkingSlot, error) {
	query, args, err := builder.Select("id", "lot_id", "name", "status_id").
		From("parking_slots").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get slot query: %w", err)
	}

	var slot models.ParkingSlot
	if err := r.db.GetContext(ctx, &slot, query, args...); err != nil {
		if noRows(err) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("slotID", id).Msg("Error fetching parking slot")
		return nil, fmt.Errorf("error getting parking slot: %w", err)
	}
	return &slot, nil
}

// SetSlotStatus updates the occupancy of a slot
func (r *ParkingRepository) SetSlotStatus(ctx context.Context, id int64, status models.SlotStatus) error {
	query, args, err := builder.Update("parking_slots").
		Set("status_id", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build set slot status query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("slotID", id).Msg("Error updating parking slot")
		return fmt.Errorf("error updating parking slot: %w", err)
	}
	return requireAffected(res)
}
