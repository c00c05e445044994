package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackathon-manager/hackathon/internal/app/models/dto"
	"github.com/hackathon-manager/hackathon/internal/app/services"
	"github.com/hackathon-manager/hackathon/internal/middleware"
	"github.com/rs/zerolog"
)

// EventController handles hackathon events
type EventController struct {
	eventService   services.EventService
	projectService services.ProjectService
	logger         zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, projectService services.ProjectService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService:   eventService,
		projectService: projectService,
		logger:         logger,
	}
}

// ListEvents returns all events
// @Summary List events
// @Tags event
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Event
// @Failure 404 {string} string "No events found"
// @Router /event/list [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	events, err := c.eventService.ListEvents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, events)
}

// GetEvent returns one event
// @Summary Get event by ID
// @Tags event
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {string} string "No event found"
// @Router /event/{id} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	event, err := c.eventService.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, event)
}

// ListEventProjects returns the projects of one event
// @Summary List projects of an event
// @Tags event
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {array} models.Project
// @Failure 404 {string} string "No event found"
// @Router /event/{id}/projects [get]
func (c *EventController) ListEventProjects(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	projects, err := c.projectService.ListEventProjects(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, projects)
}

// CreateEvent creates an event
// @Summary Create event
// @Tags event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EventRequest true "Event data"
// @Success 201 {object} models.Event
// @Failure 400 {string} string "Missing fields"
// @Failure 409 {string} string "Already exists"
// @Router /event [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req dto.EventRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	event, err := c.eventService.CreateEvent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.logger.Info().Int64("eventID", event.ID).Str("name", event.Name).Msg("Event created")
	ctx.JSON(http.StatusCreated, event)
}

// UpdateEvent replaces an event's fields
// @Summary Update event
// @Tags event
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Param request body dto.EventRequest true "Event data"
// @Success 200 {object} models.Event
// @Failure 400 {string} string "Missing fields"
// @Failure 404 {string} string "No event found"
// @Failure 409 {string} string "Already exists"
// @Router /event/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.EventRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	event, err := c.eventService.UpdateEvent(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, event)
}

// DeleteEvent removes an event with its projects
// @Summary Delete event
// @Tags event
// @Produce plain
// @Security BearerAuth
// @Param id path int true "Event ID"
// @Success 200 {string} string "Event deleted"
// @Failure 404 {string} string "No event found"
// @Router /event/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.eventService.DeleteEvent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.logger.Info().Int64("eventID", id).Msg("Event deleted")
	ctx.String(http.StatusOK, "Event deleted")
}
