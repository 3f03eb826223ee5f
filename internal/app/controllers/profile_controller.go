package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"studyhub/internal/app/models/dto"
	"studyhub/internal/app/services"
	"studyhub/internal/middleware"
)

// ProfileController handles the caller's profile and statistics
type ProfileController struct {
	profileService *services.ProfileService
	logger         zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService, logger zerolog.Logger) *ProfileController {
	return &ProfileController{
		profileService: profileService,
		logger:         logger,
	}
}

// UpdateProfile updates the caller's mutable profile fields
// @Summary Update grade, avatar or password
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UpdateProfileResponse
// @Router /my/profile [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.profileService.UpdateProfile(ctx.Request.Context(), user, &req)
	if err != nil {
		c.logger.Error().Err(err).Int64("userID", user.ID).Msg("Profile update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetHeatmap returns the caller's per-day activity counts
// @Summary Per-day answered-question counts
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]int
// @Router /my/heatmap [get]
func (c *ProfileController) GetHeatmap(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	heatmap, err := c.profileService.Heatmap(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, heatmap)
}

// GetMistakes returns the caller's wrong-answer log as questions
// @Summary Questions the caller answered incorrectly
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Question
// @Router /my/mistakes [get]
func (c *ProfileController) GetMistakes(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	mistakes, err := c.profileService.Mistakes(ctx.Request.Context(), user.ID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, mistakes)
}
