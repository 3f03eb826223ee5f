package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"studyhub/internal/app/services"
	"studyhub/internal/middleware"
)

// ContentController serves the course catalog and question listings
type ContentController struct {
	contentService *services.ContentService
}

// NewContentController creates a new ContentController
func NewContentController(contentService *services.ContentService) *ContentController {
	return &ContentController{
		contentService: contentService,
	}
}

// GetCourses lists the course videos for a subject
// @Summary List courses by subject
// @Tags content
// @Produce json
// @Param subject path string true "Subject label"
// @Success 200 {array} models.Course
// @Router /courses/{subject} [get]
func (c *ContentController) GetCourses(ctx *gin.Context) {
	subject := ctx.Param("subject")

	courses, err := c.contentService.ListCourses(ctx.Request.Context(), subject)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, courses)
}

// GetQuestions lists the quiz questions for a subject
// @Summary List questions by subject
// @Tags content
// @Produce json
// @Param subject path string true "Subject label"
// @Success 200 {array} models.Question
// @Router /questions/{subject} [get]
func (c *ContentController) GetQuestions(ctx *gin.Context) {
	subject := ctx.Param("subject")

	questions, err := c.contentService.ListQuestions(ctx.Request.Context(), subject)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, questions)
}
