package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tpcell/placement-portal/internal/app/controllers"
	"github.com/tpcell/placement-portal/internal/app/models"
	"github.com/tpcell/placement-portal/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	placementController *controllers.PlacementController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}
	v1.POST("/admin/auth/login", authController.AdminLogin)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/profile", authController.GetProfile)

		// Student placement routes. Role gating is deliberate: admin tokens
		// carry no student identity to list or submit with.
		placement := authenticated.Group("/placement")
		{
			student := placement.Group("")
			student.Use(authMiddleware.RoleRequired(models.RoleStudent))
			{
				student.GET("/get-drives", placementController.GetDrives)
				student.POST("/update-status", placementController.UpdateStatus)
				student.GET("/past-drives", placementController.PastDrives)
			}

			admin := placement.Group("")
			admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
			{
				admin.POST("/create-drive", adminController.CreateDrive)
				admin.GET("/admin/all-drives", adminController.GetAllDrives)
				admin.GET("/admin/drive/:driveId", adminController.GetDrive)
				admin.PUT("/admin/update-drive/:driveId", adminController.UpdateDrive)
				admin.DELETE("/admin/delete-drive/:driveId", adminController.DeleteDrive)
			}
		}

		// Admin student directory routes
		adminOnly := authenticated.Group("/admin")
		adminOnly.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			adminOnly.GET("/college-stats", adminController.CollegeStats)
			adminOnly.GET("/students-by-college/:college", adminController.StudentsByCollege)
		}
	}
}
