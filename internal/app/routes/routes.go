package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arsenal-school/crm-backend/internal/app/controllers"
	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/middleware"
	"github.com/arsenal-school/crm-backend/internal/pkg/auth"
)

// SetupRoutes registers all API routes
func SetupRoutes(router *gin.Engine, ctrl *controllers.Controllers, jwtService *auth.JWTService) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public auth endpoints
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", ctrl.AuthController.Login)
		authGroup.POST("/refresh", ctrl.AuthController.RefreshToken)
		authGroup.POST("/logout", ctrl.AuthController.Logout)
	}

	// Everything below requires a valid token
	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(jwtService))

	managerOnly := middleware.RoleRequired(models.RoleManager)
	staffOnly := middleware.RoleRequired(models.RoleManager, models.RoleTrainer)

	protected.GET("/auth/me", ctrl.AuthController.Me)

	users := protected.Group("/users")
	{
		users.GET("", managerOnly, ctrl.UserController.ListUsers)
		users.POST("", managerOnly, ctrl.UserController.CreateUser)
		users.GET("/:id", ctrl.UserController.GetUser)
		users.PUT("/:id", managerOnly, ctrl.UserController.UpdateUser)
		users.DELETE("/:id", managerOnly, ctrl.UserController.DeleteUser)
	}

	parents := protected.Group("/parents")
	{
		parents.GET("", staffOnly, ctrl.ParentController.ListParents)
		parents.POST("", managerOnly, ctrl.ParentController.CreateParent)
		parents.PUT("/:id", managerOnly, ctrl.ParentController.UpdateParent)
		parents.DELETE("/:id", managerOnly, ctrl.ParentController.DeleteParent)
	}

	protected.GET("/trainers", staffOnly, ctrl.TrainerController.ListTrainers)

	branches := protected.Group("/branches")
	{
		branches.GET("", ctrl.BranchController.ListBranches)
		branches.GET("/:id", ctrl.BranchController.GetBranch)
		branches.POST("", managerOnly, ctrl.BranchController.CreateBranch)
		branches.PUT("/:id", managerOnly, ctrl.BranchController.UpdateBranch)
		branches.DELETE("/:id", managerOnly, ctrl.BranchController.DeleteBranch)
	}

	children := protected.Group("/children")
	{
		children.GET("", ctrl.ChildController.ListChildren)
		children.GET("/:id", ctrl.ChildController.GetChild)
		children.POST("", staffOnly, ctrl.ChildController.CreateChild)
		children.PUT("/:id", staffOnly, ctrl.ChildController.UpdateChild)
		children.DELETE("/:id", managerOnly, ctrl.ChildController.DeleteChild)
	}

	trainings := protected.Group("/trainings")
	{
		trainings.GET("", ctrl.TrainingController.ListTrainings)
		trainings.GET("/:id", ctrl.TrainingController.GetTraining)
		trainings.POST("", managerOnly, ctrl.TrainingController.CreateTraining)
		trainings.PUT("/:id", managerOnly, ctrl.TrainingController.UpdateTraining)
		trainings.DELETE("/:id", managerOnly, ctrl.TrainingController.DeleteTraining)

		// Attendance ledger
		trainings.GET("/:id/attendees", ctrl.AttendanceController.ListAttendees)
		trainings.POST("/:id/attendance", staffOnly, ctrl.AttendanceController.MarkAttendance)
		trainings.POST("/:id/enroll", ctrl.AttendanceController.EnrollChild)
	}

	protected.GET("/attendance", ctrl.AttendanceController.AttendanceHistory)

	disciplines := protected.Group("/disciplines")
	{
		disciplines.GET("", ctrl.DisciplineController.ListDisciplines)
		disciplines.POST("", managerOnly, ctrl.DisciplineController.CreateDiscipline)
		disciplines.PUT("/:id", managerOnly, ctrl.DisciplineController.UpdateDiscipline)
		disciplines.DELETE("/:id", managerOnly, ctrl.DisciplineController.DeleteDiscipline)
	}

	progress := protected.Group("/progress")
	{
		progress.GET("", ctrl.ProgressController.ListProgress)
		progress.POST("", staffOnly, ctrl.ProgressController.CreateProgress)
		progress.PUT("/:id", staffOnly, ctrl.ProgressController.UpdateProgress)
		progress.DELETE("/:id", staffOnly, ctrl.ProgressController.DeleteProgress)
	}

	subscriptions := protected.Group("/subscriptions")
	{
		subscriptions.GET("", ctrl.SubscriptionController.ListSubscriptions)
		subscriptions.POST("", managerOnly, ctrl.SubscriptionController.CreateSubscription)
		subscriptions.PUT("/:id", managerOnly, ctrl.SubscriptionController.UpdateSubscription)
		subscriptions.DELETE("/:id", managerOnly, ctrl.SubscriptionController.DeleteSubscription)
	}
}
