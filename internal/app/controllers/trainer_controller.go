package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/services"
	"github.com/arsenal-school/crm-backend/internal/middleware"
)

// TrainerController lists trainer accounts. Trainer creation goes through
// the generic users endpoint with role 'trainer'.
type TrainerController struct {
	userService *services.UserService
}

// NewTrainerController creates a new trainer controller
func NewTrainerController(userService *services.UserService) *TrainerController {
	return &TrainerController{userService: userService}
}

// ListTrainers returns all trainer accounts with their branch assignments
func (ctrl *TrainerController) ListTrainers(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	trainers, err := ctrl.userService.ListByRole(c.Request.Context(), identity, models.RoleTrainer)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(trainers))
}
