package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/app/models/dto"
	"github.com/hackathon-manager/hackathon/internal/app/repositories"
	"github.com/hackathon-manager/hackathon/internal/pkg/apperrors"
	"github.com/hackathon-manager/hackathon/internal/pkg/auth"
	"github.com/hackathon-manager/hackathon/internal/pkg/events"
	"github.com/hackathon-manager/hackathon/internal/pkg/helpers"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// BookingService manages slot bookings
type BookingService interface {
	ListBookings(ctx context.Context, actor *auth.Claims, userID int64) ([]models.Booking, error)
	CreateBooking(ctx context.Context, actor *auth.Claims, req *dto.CreateBookingRequest) (*models.Booking, error)
	CloseBooking(ctx context.Context, actor *auth.Claims, id int64) (*models.Booking, error)
}

type bookingServiceImpl struct {
	repos     *repositories.Repositories
	tx        Transactor
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewBookingService creates a new BookingService
func NewBookingService(deps Deps, logger zerolog.Logger) BookingService {
	return &bookingServiceImpl{repos: deps.Repos, tx: deps.Tx, publisher: deps.publisher(), logger: logger}
}

// ListBookings returns the caller's bookings. Managers see everyone's, or one
// user's when userID is set.
func (s *bookingServiceImpl) ListBookings(ctx context.Context, actor *auth.Claims, userID int64) ([]models.Booking, error) {
	if !isManager(actor) {
		userID = actor.ID
	}
	bookings, err := s.repos.BookingRepository.ListBookings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookings, nil
}

// CreateBooking reserves a free slot. The booking starts active when its
// start time has been reached, inactive otherwise.
func (s *bookingServiceImpl) CreateBooking(ctx context.Context, actor *auth.Claims, req *dto.CreateBookingRequest) (*models.Booking, error) {
	userID := actor.ID
	if req.UserID != nil {
		userID = *req.UserID
	}
	if err := requireSelfOrManager(actor, userID); err != nil {
		return nil, err
	}
	if !req.TypeID.Valid() {
		return nil, apperrors.NewBadRequestError(apperrors.MsgMissingFields)
	}

	now := helpers.NowUnix()
	booking := &models.Booking{
		SlotID:    req.SlotID,
		UserID:    userID,
		TypeID:    req.TypeID,
		StatusID:  models.BookingStatusActive,
		StartTime: now,
	}
	if req.StartTime != nil && *req.StartTime > 0 {
		booking.StartTime = *req.StartTime
	}
	if booking.StartTime > now {
		booking.StatusID = models.BookingStatusInactive
	}

	err := s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		parking := s.repos.ParkingRepository.WithTx(tx)
		bookings := s.repos.BookingRepository.WithTx(tx)

		if _, err := s.repos.UserRepository.WithTx(tx).GetUserByID(ctx, userID); err != nil {
			return notFound(err, apperrors.MsgNoUser, "create booking")
		}
		slot, err := parking.GetSlotByID(ctx, booking.SlotID)
		if err != nil {
			return notFound(err, apperrors.MsgNoSlot, "create booking")
		}
		if slot.StatusID != models.SlotStatusFree {
			return apperrors.NewConflictError(apperrors.MsgSlotOccupied)
		}
		held, err := bookings.SlotHasOpenBooking(ctx, slot.ID)
		if err != nil {
			return fmt.Errorf("create booking: %w", err)
		}
		if held {
			return apperrors.NewConflictError(apperrors.MsgSlotOccupied)
		}

		if err := bookings.CreateBooking(ctx, booking); err != nil {
			if errors.Is(err, repositories.ErrInvalidReference) {
				return apperrors.NewResourceNotFoundError(apperrors.MsgNoSlot)
			}
			return fmt.Errorf("create booking: %w", err)
		}
		return parking.SetSlotStatus(ctx, slot.ID, models.SlotStatusOccupied)
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.Event{Topic: events.TopicBookingChanged, Action: "created", EntityID: booking.ID, Recipients: []int64{userID}})
	return booking, nil
}

// CloseBooking marks the booking completed, stamps its end time and frees the
// slot. The row is kept. Closing an already closed booking returns it unchanged.
func (s *bookingServiceImpl) CloseBooking(ctx context.Context, actor *auth.Claims, id int64) (*models.Booking, error) {
	var booking *models.Booking
	err := s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		bookings := s.repos.BookingRepository.WithTx(tx)

		var err error
		booking, err = bookings.GetBookingByID(ctx, id)
		if err != nil {
			return notFound(err, apperrors.MsgNoBooking, "close booking")
		}
		if err := requireSelfOrManager(actor, booking.UserID); err != nil {
			return err
		}
		if !booking.StatusID.Open() {
			return nil
		}

		end := helpers.NowUnix()
		if err := bookings.CloseBooking(ctx, id, models.BookingStatusCompleted, end); err != nil {
			return notFound(err, apperrors.MsgNoBooking, "close booking")
		}
		if err := s.repos.ParkingRepository.WithTx(tx).SetSlotStatus(ctx, booking.SlotID, models.SlotStatusFree); err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("close booking: %w", err)
		}
		booking.StatusID = models.BookingStatusCompleted
		booking.EndTime = &end
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.Event{Topic: events.TopicBookingChanged, Action: "closed", EntityID: id, Recipients: []int64{booking.UserID}})
	return booking, nil
}
