package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackathon-manager/hackathon/internal/app/models/dto"
	"github.com/hackathon-manager/hackathon/internal/app/services"
	"github.com/hackathon-manager/hackathon/internal/middleware"
	"github.com/rs/zerolog"
)

// OwnerController handles event organisers
type OwnerController struct {
	ownerService services.OwnerService
	logger       zerolog.Logger
}

// NewOwnerController creates a new OwnerController
func NewOwnerController(ownerService services.OwnerService, logger zerolog.Logger) *OwnerController {
	return &OwnerController{
		ownerService: ownerService,
		logger:       logger,
	}
}

// ListOwners returns organisers, optionally of one event
// @Summary List owners
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param event_id query int false "Event ID"
// @Success 200 {array} models.Owner
// @Router /owner/list [get]
func (c *OwnerController) ListOwners(ctx *gin.Context) {
	eventID, ok := idQuery(ctx, "event_id")
	if !ok {
		return
	}
	owners, err := c.ownerService.ListOwners(ctx.Request.Context(), eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, owners)
}

// AddOwner makes a user an organiser of an event
// @Summary Add owner
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.OwnerRequest true "Event and user"
// @Success 201 {object} models.Owner
// @Failure 404 {string} string "No event found"
// @Failure 409 {string} string "Already exists"
// @Router /owner [post]
func (c *OwnerController) AddOwner(ctx *gin.Context) {
	var req dto.OwnerRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	owner, err := c.ownerService.AddOwner(ctx.Request.Context(), req.EventID, req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, owner)
}

// RemoveOwner removes an organiser
// @Summary Remove owner
// @Tags owner
// @Accept json
// @Produce plain
// @Security BearerAuth
// @Param request body dto.OwnerRequest true "Event and user"
// @Success 200 {string} string "Owner deleted"
// @Failure 404 {string} string "No owner found"
// @Router /owner [delete]
func (c *OwnerController) RemoveOwner(ctx *gin.Context) {
	var req dto.OwnerRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	if err := c.ownerService.RemoveOwner(ctx.Request.Context(), req.EventID, req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.String(http.StatusOK, "Owner deleted")
}
