package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/app/models/dto"
	"github.com/hackathon-manager/hackathon/internal/app/services"
	"github.com/hackathon-manager/hackathon/internal/middleware"
	"github.com/rs/zerolog"
)

// MembershipController serves both /participant and /initiator; the kind is
// fixed by the service it wraps.
type MembershipController struct {
	service services.MembershipService
	logger  zerolog.Logger
}

// NewMembershipController creates a new MembershipController
func NewMembershipController(service services.MembershipService, logger zerolog.Logger) *MembershipController {
	return &MembershipController{
		service: service,
		logger:  logger.With().Str("kind", string(service.Kind())).Logger(),
	}
}

// deletedMessage is the plain-text body of a successful removal
func (c *MembershipController) deletedMessage() string {
	if c.service.Kind() == models.KindInitiator {
		return "Initiator deleted"
	}
	return "Participant deleted"
}

// List returns memberships, optionally of one project
// @Summary List participants or initiators
// @Tags membership
// @Produce json
// @Security BearerAuth
// @Param project_id query int false "Project ID"
// @Success 200 {array} models.Membership
// @Router /participant/list [get]
// @Router /initiator/list [get]
func (c *MembershipController) List(ctx *gin.Context) {
	projectID, ok := idQuery(ctx, "project_id")
	if !ok {
		return
	}
	rows, err := c.service.ListMemberships(ctx.Request.Context(), projectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// Add joins a user to a project
// @Summary Add participant or initiator
// @Description A user may belong to at most one project per event, as participant or initiator
// @Tags membership
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MembershipRequest true "Project and user"
// @Success 201 {object} models.Membership
// @Failure 400 {string} string "Missing fields"
// @Failure 403 {string} string "No permission"
// @Failure 404 {string} string "No project found"
// @Failure 409 {string} string "Already exists"
// @Router /participant [post]
// @Router /initiator [post]
func (c *MembershipController) Add(ctx *gin.Context) {
	var req dto.MembershipRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	row, err := c.service.AddMember(ctx.Request.Context(), middleware.ClaimsFromContext(ctx), req.ProjectID, req.UserID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.logger.Info().Int64("projectID", req.ProjectID).Int64("userID", req.UserID).Msg("Membership added")
	ctx.JSON(http.StatusCreated, row)
}

// Remove takes a user off a project
// @Summary Remove participant or initiator
// @Tags membership
// @Accept json
// @Produce plain
// @Security BearerAuth
// @Param request body dto.MembershipRequest true "Project and user"
// @Success 200 {string} string "Participant deleted"
// @Failure 403 {string} string "No permission"
// @Failure 404 {string} string "No participant found"
// @Router /participant [delete]
// @Router /initiator [delete]
func (c *MembershipController) Remove(ctx *gin.Context) {
	var req dto.MembershipRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	if err := c.service.RemoveMember(ctx.Request.Context(), middleware.ClaimsFromContext(ctx), req.ProjectID, req.UserID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.logger.Info().Int64("projectID", req.ProjectID).Int64("userID", req.UserID).Msg("Membership removed")
	ctx.String(http.StatusOK, c.deletedMessage())
}
