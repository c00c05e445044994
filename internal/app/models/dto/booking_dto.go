package dto

import "github.com/hackathon-manager/hackathon/internal/app/models"

// CreateLotRequest creates a parking lot with numbered slots
type CreateLotRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Slots int    `json:"slots" binding:"required,min=1,max=500"`
}

// CreateBookingRequest books a slot. StartTime defaults to now; UserID
// defaults to the caller and may only differ for Manager+.
type CreateBookingRequest struct {
	SlotID    int64              `json:"slot_id" binding:"required,gt=0"`
	TypeID    models.BookingType `json:"type_id" binding:"required,booking_type"`
	StartTime *int64             `json:"start_time"`
	UserID    *int64             `json:"user_id" binding:"omitempty,gt=0"`
}
