package routes

import (
	"github.com/gin-gonic/gin"
	"studyhub/internal/app/controllers"
	"studyhub/internal/app/models"
	"studyhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	contentController *controllers.ContentController,
	assessmentController *controllers.AssessmentController,
	profileController *controllers.ProfileController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)

	router.GET("/courses/:subject", contentController.GetCourses)
	router.GET("/questions/:subject", contentController.GetQuestions)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/questions/submit", assessmentController.SubmitAnswer)

		my := authenticated.Group("/my")
		{
			my.PUT("/profile", profileController.UpdateProfile)
			my.GET("/heatmap", profileController.GetHeatmap)
			my.GET("/mistakes", profileController.GetMistakes)
		}

		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/stats", adminController.GetSystemStats)
		}
	}
}
