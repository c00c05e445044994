package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/pkg/logger"
)

var bookingColumns = []string{"id", "slot_id", "user_id", "type_id", "status_id", "start_time", "end_time"}

var openBookingStatuses = []models.BookingStatus{models.BookingStatusInactive, models.BookingStatusActive}

// BookingRepository handles bookings of the parking subsystem
type BookingRepository struct {
	db DBTX
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

// WithTx returns a copy of the repository bound to tx
func (r *BookingRepository) WithTx(tx DBTX) *BookingRepository {
	return &BookingRepository{db: tx}
}

// CreateBooking inserts a booking and stores the generated id on it
func (r *BookingRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	query, args, err := builder.Insert("bookings").
		Columns("slot_id", "user_id", "type_id", "status_id", "start_time", "end_time").
		Values(b.SlotID, b.UserID, b.TypeID, b.StatusID, b.StartTime, b.EndTime).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create booking query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&b.ID); err != nil {
		if translateWriteError(err) == ErrInvalidReference {
			return ErrInvalidReference
		}
		logger.Error().Err(err).Int64("slotID", b.SlotID).Int64("userID", b.UserID).Msg("Error creating booking")
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// GetBookingByID retrieves a booking
func (r *BookingRepository) GetBookingByID(ctx context.Context, id int64) (*models.Booking, error) {
	query, args, err := builder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get booking query: %w", err)
	}

	var b models.Booking
	if err := r.db.GetContext(ctx, &b, query, args...); err != nil {
		if noRows(err) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("bookingID", id).Msg("Error fetching booking")
		return nil, fmt.Errorf("error getting booking: %w", err)
	}
	return &b, nil
}

// ListBookings returns bookings, restricted to one user when userID > 0
func (r *BookingRepository) ListBookings(ctx context.Context, userID int64) ([]models.Booking, error) {
	qb := builder.Select(bookingColumns...).From("bookings").OrderBy("start_time DESC", "id DESC")
	if userID > 0 {
		qb = qb.Where(squirrel.Eq{"user_id": userID})
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list bookings query: %w", err)
	}

	bookings := []models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error listing bookings")
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	return bookings, nil
}

// ListOpenBookingsByUser returns the user's bookings that still hold a slot
func (r *BookingRepository) ListOpenBookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	query, args, err := builder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID, "status_id": openBookingStatuses}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list open bookings query: %w", err)
	}

	bookings := []models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error listing open bookings")
		return nil, fmt.Errorf("error listing open bookings: %w", err)
	}
	return bookings, nil
}

// SlotHasOpenBooking reports whether the slot is held by an open booking
func (r *BookingRepository) SlotHasOpenBooking(ctx context.Context, slotID int64) (bool, error) {
	query, args, err := builder.Select("COUNT(1)").
		From("bookings").
		Where(squirrel.Eq{"slot_id": slotID, "status_id": openBookingStatuses}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build slot booking query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("error checking slot bookings: %w", err)
	}
	return count > 0, nil
}

// CloseBooking stamps status and end time. The row is kept.
func (r *BookingRepository) CloseBooking(ctx context.Context, id int64, status models.BookingStatus, endTime int64) error {
	query, args, err := builder.Update("bookings").
		Set("status_id", status).
		Set("end_time", endTime).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build close booking query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("bookingID", id).Msg("Error closing booking")
		return fmt.Errorf("error closing booking: %w", err)
	}
	return requireAffected(res)
}
