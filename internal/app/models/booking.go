package models

// BookingStatus follows inactive → active → ended → completed|cancelled.
type BookingStatus int64

const (
	BookingStatusInactive  BookingStatus = 1
	BookingStatusActive    BookingStatus = 2
	BookingStatusEnded     BookingStatus = 3
	BookingStatusCompleted BookingStatus = 4
	BookingStatusCancelled BookingStatus = 5
)

// Open reports whether the booking still holds its slot.
func (s BookingStatus) Open() bool {
	return s == BookingStatusInactive || s == BookingStatusActive
}

// BookingType distinguishes plain parking from charging bookings.
type BookingType int64

const (
	BookingTypeParking  BookingType = 1
	BookingTypeCharging BookingType = 2
)

// Valid reports whether t is a known booking type.
func (t BookingType) Valid() bool {
	return t == BookingTypeParking || t == BookingTypeCharging
}

// SlotStatus is the occupancy state of a parking slot.
type SlotStatus int64

const (
	SlotStatusFree     SlotStatus = 1
	SlotStatusOccupied SlotStatus = 2
	SlotStatusDisabled SlotStatus = 3
)

// ParkingLot groups parking slots.
type ParkingLot struct {
	ID    int64         `json:"id" db:"id"`
	Name  string        `json:"name" db:"name"`
	Slots []ParkingSlot `json:"slots" db:"-"`
}

// ParkingSlot is a single bookable space.
type ParkingSlot struct {
	ID       int64      `json:"id" db:"id"`
	LotID    int64      `json:"lot_id" db:"lot_id"`
	Name     string     `json:"name" db:"name"`
	StatusID SlotStatus `json:"status_id" db:"status_id"`
}

// Booking reserves a slot for a period. Closed bookings keep their row.
type Booking struct {
	ID        int64         `json:"id" db:"id"`
	SlotID    int64         `json:"slot_id" db:"slot_id"`
	UserID    int64         `json:"user_id" db:"user_id"`
	TypeID    BookingType   `json:"type_id" db:"type_id"`
	StatusID  BookingStatus `json:"status_id" db:"status_id"`
	StartTime int64         `json:"start_time" db:"start_time"`
	EndTime   *int64        `json:"end_time" db:"end_time"`
}
