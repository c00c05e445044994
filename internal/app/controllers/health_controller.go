package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hackathon-manager/hackathon/internal/app/services"
)

// HealthController reports service health and configuration
type HealthController struct {
	healthService services.HealthService
}

// NewHealthController creates a new HealthController
func NewHealthController(healthService services.HealthService) *HealthController {
	return &HealthController{healthService: healthService}
}

// Health reports liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.healthService.Health(ctx.Request.Context()))
}

// Config returns the configuration with secrets removed
// @Summary Public configuration
// @Tags health
// @Produce json
// @Success 200 {object} config.PublicView
// @Router /health/config [get]
func (c *HealthController) Config(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.healthService.PublicConfig())
}
