package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/app/models/dto"
	"github.com/hackathon-manager/hackathon/internal/app/repositories"
	"github.com/hackathon-manager/hackathon/internal/pkg/apperrors"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// ParkingService manages parking lots and slots
type ParkingService interface {
	ListLots(ctx context.Context) ([]models.ParkingLot, error)
	CreateLot(ctx context.Context, req *dto.CreateLotRequest) (*models.ParkingLot, error)
}

type parkingServiceImpl struct {
	repos  *repositories.Repositories
	tx     Transactor
	logger zerolog.Logger
}

// NewParkingService creates a new ParkingService
func NewParkingService(deps Deps, logger zerolog.Logger) ParkingService {
	return &parkingServiceImpl{repos: deps.Repos, tx: deps.Tx, logger: logger}
}

func (s *parkingServiceImpl) ListLots(ctx context.Context) ([]models.ParkingLot, error) {
	lots, err := s.repos.ParkingRepository.ListLots(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	return lots, nil
}

// CreateLot inserts a lot with slots named 1..n in one transaction
func (s *parkingServiceImpl) CreateLot(ctx context.Context, req *dto.CreateLotRequest) (*models.ParkingLot, error) {
	lot := &models.ParkingLot{Name: strings.TrimSpace(req.Name)}
	if lot.Name == "" || req.Slots < 1 {
		return nil, apperrors.NewBadRequestError(apperrors.MsgMissingFields)
	}

	err := s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		parking := s.repos.ParkingRepository.WithTx(tx)
		if err := parking.CreateLot(ctx, lot); err != nil {
			return conflict(err, "create lot")
		}
		lot.Slots = make([]models.ParkingSlot, 0, req.Slots)
		for i := 1; i <= req.Slots; i++ {
			slot := models.ParkingSlot{LotID: lot.ID, Name: fmt.Sprintf("%d", i), StatusID: models.SlotStatusFree}
			if err := parking.CreateSlot(ctx, &slot); err != nil {
				return fmt.Errorf("create lot: %w", err)
			}
			lot.Slots = append(lot.Slots, slot)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("lotID", lot.ID).Int("slots", req.Slots).Msg("Parking lot created")
	return lot, nil
}
