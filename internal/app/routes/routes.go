package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/haca/placement/internal/app/controllers"
	"github.com/haca/placement/internal/app/models"
	"github.com/haca/placement/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	searchController *controllers.SearchController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.RegisterStudent)
		auth.POST("/register-recruiter", authController.RegisterRecruiter)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// Skill catalog backs the registration form, so it stays public
	v1.GET("/skills", searchController.ListSkills)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/profile", authController.GetProfile)

		// Recruiter-facing candidate search; admins get it too
		candidates := authenticated.Group("/candidates")
		candidates.Use(authMiddleware.RoleRequired(string(models.RoleRecruiter), string(models.RoleAdmin)))
		{
			candidates.GET("", searchController.SearchCandidates)
		}

		// Skill analysis is open to any authenticated user
		authenticated.POST("/skills/analyze", searchController.AnalyzeSkills)

		students := authenticated.Group("/students")
		{
			// Student self-service
			studentsSelf := students.Group("/me")
			studentsSelf.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
			{
				studentsSelf.POST("/resume", studentController.UploadResume)
			}

			// Admin review workflow
			studentsAdmin := students.Group("")
			studentsAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				studentsAdmin.GET("", studentController.ListStudents)
				studentsAdmin.GET("/counts", studentController.GetCounts)
				studentsAdmin.GET("/:id", studentController.GetStudent)
				studentsAdmin.PATCH("/:id/status", studentController.UpdateStatus)
			}
		}
	}
}
