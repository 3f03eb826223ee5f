package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"studyhub/internal/app/models/dto"
	"studyhub/internal/app/services"
	"studyhub/internal/middleware"
)

// AssessmentController handles answer submissions
type AssessmentController struct {
	assessmentService *services.AssessmentService
	logger            zerolog.Logger
}

// NewAssessmentController creates a new AssessmentController
func NewAssessmentController(assessmentService *services.AssessmentService, logger zerolog.Logger) *AssessmentController {
	return &AssessmentController{
		assessmentService: assessmentService,
		logger:            logger,
	}
}

// SubmitAnswer grades a submission and records its side effects
// @Summary Submit an answer for grading
// @Tags assessment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SubmitAnswerRequest true "Submission"
// @Success 200 {object} dto.SubmitAnswerResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/submit [post]
func (c *AssessmentController) SubmitAnswer(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.SubmitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request payload")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.assessmentService.SubmitAnswer(ctx.Request.Context(), user.ID, &req)
	if err != nil {
		c.logger.Warn().Err(err).Int64("questionID", req.QuestionID).Msg("Submission failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
