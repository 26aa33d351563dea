package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arsenal-school/crm-backend/internal/app/services"
	"github.com/arsenal-school/crm-backend/internal/pkg/apperrors"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController         *AuthController
	UserController         *UserController
	ParentController       *ParentController
	TrainerController      *TrainerController
	BranchController       *BranchController
	ChildController        *ChildController
	TrainingController     *TrainingController
	DisciplineController   *DisciplineController
	ProgressController     *ProgressController
	SubscriptionController *SubscriptionController
	AttendanceController   *AttendanceController
}

// NewControllers initializes all controllers
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		AuthController:         NewAuthController(svc.AuthService),
		UserController:         NewUserController(svc.UserService),
		ParentController:       NewParentController(svc.UserService),
		TrainerController:      NewTrainerController(svc.UserService),
		BranchController:       NewBranchController(svc.BranchService),
		ChildController:        NewChildController(svc.ChildService),
		TrainingController:     NewTrainingController(svc.TrainingService),
		DisciplineController:   NewDisciplineController(svc.DisciplineService),
		ProgressController:     NewProgressController(svc.ProgressService),
		SubscriptionController: NewSubscriptionController(svc.SubscriptionService),
		AttendanceController:   NewAttendanceController(svc.AttendanceService),
	}
}

// parseIDParam parses a positive integer path parameter
func parseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid " + name + " parameter")
	}
	return id, nil
}

// parseOptionalIDQuery parses an optional integer query parameter
func parseOptionalIDQuery(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, apperrors.NewValidationError("invalid " + name + " parameter")
	}
	return &id, nil
}
