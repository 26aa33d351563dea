package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/repositories"
	"github.com/arsenal-school/crm-backend/internal/app/services"
	"github.com/arsenal-school/crm-backend/internal/middleware"
)

// TrainingController handles training schedule endpoints
type TrainingController struct {
	trainingService *services.TrainingService
}

// NewTrainingController creates a new training controller
func NewTrainingController(trainingService *services.TrainingService) *TrainingController {
	return &TrainingController{trainingService: trainingService}
}

// ListTrainings returns trainings, optionally filtered by child (sessions the
// child attended), trainer, or branch.
// @Summary List trainings
// @Tags trainings
// @Produce json
// @Security BearerAuth
// @Param childId query int false "Sessions the child attended"
// @Param trainerId query int false "Sessions run by the trainer"
// @Param branchId query int false "Sessions at the branch"
// @Success 200 {object} dto.APIResponse{data=[]models.Training}
// @Router /trainings [get]
func (ctrl *TrainingController) ListTrainings(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	childID, err := parseOptionalIDQuery(c, "childId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	trainerID, err := parseOptionalIDQuery(c, "trainerId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	branchID, err := parseOptionalIDQuery(c, "branchId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	filter := repositories.TrainingFilter{
		ChildID:       childID,
		TrainerUserID: trainerID,
		BranchID:      branchID,
	}

	trainings, err := ctrl.trainingService.List(c.Request.Context(), identity, filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(trainings))
}

// GetTraining returns one training
func (ctrl *TrainingController) GetTraining(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	training, err := ctrl.trainingService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(training))
}

// CreateTraining schedules a training
func (ctrl *TrainingController) CreateTraining(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	var req dto.CreateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	training, err := ctrl.trainingService.Create(c.Request.Context(), identity, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(training))
}

// UpdateTraining reschedules a training
func (ctrl *TrainingController) UpdateTraining(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	training, err := ctrl.trainingService.Update(c.Request.Context(), identity, id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(training))
}

// DeleteTraining removes a training
func (ctrl *TrainingController) DeleteTraining(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.trainingService.Delete(c.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "deleted"}))
}
