package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"studyhub/internal/app/services"
	"studyhub/internal/middleware"
)

// AdminController serves administrator-only aggregates
type AdminController struct {
	statsService *services.StatsService
}

// NewAdminController creates a new AdminController
func NewAdminController(statsService *services.StatsService) *AdminController {
	return &AdminController{
		statsService: statsService,
	}
}

// GetSystemStats reports platform-wide activity numbers
// @Summary System statistics
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.SystemStats
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /admin/stats [get]
func (c *AdminController) GetSystemStats(ctx *gin.Context) {
	stats, err := c.statsService.SystemStats(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
