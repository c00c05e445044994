package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackathon-manager/hackathon/internal/app/models/dto"
	"github.com/hackathon-manager/hackathon/internal/app/services"
	"github.com/hackathon-manager/hackathon/internal/middleware"
	"github.com/rs/zerolog"
)

// ProjectController handles hackathon projects
type ProjectController struct {
	projectService services.ProjectService
	logger         zerolog.Logger
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService services.ProjectService, logger zerolog.Logger) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		logger:         logger,
	}
}

// ListProjects returns projects, optionally of one event
// @Summary List projects
// @Tags project
// @Produce json
// @Security BearerAuth
// @Param event_id query int false "Event ID"
// @Success 200 {array} models.Project
// @Router /project/list [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	eventID, ok := idQuery(ctx, "event_id")
	if !ok {
		return
	}
	projects, err := c.projectService.ListProjects(ctx.Request.Context(), eventID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, projects)
}

// GetProject returns a project with its initiators and participants
// @Summary Get project by ID
// @Tags project
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {string} string "No project found"
// @Router /project/{id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	project, err := c.projectService.GetProject(ctx.Request.Context(), middleware.ClaimsFromContext(ctx), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, project)
}

// CreateProject creates a project and its initiators in one transaction
// @Summary Create project
// @Tags project
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateProjectRequest true "Project data"
// @Success 201 {object} models.Project
// @Failure 400 {string} string "Missing fields"
// @Failure 404 {string} string "No event found"
// @Failure 409 {string} string "Already exists"
// @Router /project [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	project, err := c.projectService.CreateProject(ctx.Request.Context(), middleware.ClaimsFromContext(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.logger.Info().Int64("projectID", project.ID).Int64("eventID", project.EventID).Msg("Project created")
	ctx.JSON(http.StatusCreated, project)
}

// UpdateProject applies a partial update
// @Summary Update project
// @Tags project
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Param request body dto.UpdateProjectRequest true "Fields to change"
// @Success 200 {object} models.Project
// @Failure 400 {string} string "Invalid status"
// @Failure 404 {string} string "No project found"
// @Failure 409 {string} string "Already exists"
// @Router /project/{id} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	var req dto.UpdateProjectRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	project, err := c.projectService.UpdateProject(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, project)
}

// DeleteProject removes a project
// @Summary Delete project
// @Tags project
// @Produce plain
// @Security BearerAuth
// @Param id path int true "Project ID"
// @Success 200 {string} string "Project deleted"
// @Failure 404 {string} string "No project found"
// @Router /project/{id} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.projectService.DeleteProject(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	c.logger.Info().Int64("projectID", id).Msg("Project deleted")
	ctx.String(http.StatusOK, "Project deleted")
}
