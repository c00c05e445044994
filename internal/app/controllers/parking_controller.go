package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackathon-manager/hackathon/internal/app/models/dto"
	"github.com/hackathon-manager/hackathon/internal/app/services"
	"github.com/hackathon-manager/hackathon/internal/middleware"
	"github.com/rs/zerolog"
)

// ParkingController handles parking lots and slot bookings
type ParkingController struct {
	parkingService services.ParkingService
	bookingService services.BookingService
	logger         zerolog.Logger
}

// NewParkingController creates a new ParkingController
func NewParkingController(parkingService services.ParkingService, bookingService services.BookingService, logger zerolog.Logger) *ParkingController {
	return &ParkingController{
		parkingService: parkingService,
		bookingService: bookingService,
		logger:         logger,
	}
}

// ListLots returns parking lots with their slots
// @Summary List parking lots
// @Tags parking
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ParkingLot
// @Router /parking/lots [get]
func (c *ParkingController) ListLots(ctx *gin.Context) {
	lots, err := c.parkingService.ListLots(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lots)
}

// CreateLot creates a lot with numbered slots
// @Summary Create parking lot
// @Tags parking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateLotRequest true "Lot name and slot count"
// @Success 201 {object} models.ParkingLot
// @Failure 409 {string} string "Already exists"
// @Router /parking/lots [post]
func (c *ParkingController) CreateLot(ctx *gin.Context) {
	var req dto.CreateLotRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	lot, err := c.parkingService.CreateLot(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.logger.Info().Int64("lotID", lot.ID).Int("slots", len(lot.Slots)).Msg("Parking lot created")
	ctx.JSON(http.StatusCreated, lot)
}

// ListBookings returns bookings visible to the caller
// @Summary List bookings
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "User ID (Manager+)"
// @Success 200 {array} models.Booking
// @Router /booking/list [get]
func (c *ParkingController) ListBookings(ctx *gin.Context) {
	userID, ok := idQuery(ctx, "user_id")
	if !ok {
		return
	}
	bookings, err := c.bookingService.ListBookings(ctx.Request.Context(), middleware.ClaimsFromContext(ctx), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, bookings)
}

// CreateBooking books a slot
// @Summary Create booking
// @Tags booking
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookingRequest true "Booking data"
// @Success 201 {object} models.Booking
// @Failure 404 {string} string "No slot found"
// @Failure 409 {string} string "Slot occupied"
// @Router /booking [post]
func (c *ParkingController) CreateBooking(ctx *gin.Context) {
	var req dto.CreateBookingRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	booking, err := c.bookingService.CreateBooking(ctx.Request.Context(), middleware.ClaimsFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.logger.Info().Int64("bookingID", booking.ID).Int64("slotID", booking.SlotID).Msg("Booking created")
	ctx.JSON(http.StatusCreated, booking)
}

// CloseBooking ends a booking and frees its slot
// @Summary Close booking
// @Tags booking
// @Produce json
// @Security BearerAuth
// @Param id path int true "Booking ID"
// @Success 200 {object} models.Booking
// @Failure 403 {string} string "No permission"
// @Failure 404 {string} string "No booking found"
// @Router /booking/{id} [delete]
func (c *ParkingController) CloseBooking(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	booking, err := c.bookingService.CloseBooking(ctx.Request.Context(), middleware.ClaimsFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, booking)
}
