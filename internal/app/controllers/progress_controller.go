package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/services"
	"github.com/arsenal-school/crm-backend/internal/middleware"
)

// ProgressController handles measurement endpoints
type ProgressController struct {
	progressService *services.ProgressService
}

// NewProgressController creates a new progress controller
func NewProgressController(progressService *services.ProgressService) *ProgressController {
	return &ProgressController{progressService: progressService}
}

// ListProgress returns measurements visible to the caller, optionally
// filtered by child.
func (ctrl *ProgressController) ListProgress(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	childID, err := parseOptionalIDQuery(c, "childId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	records, err := ctrl.progressService.List(c.Request.Context(), identity, childID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(records))
}

// CreateProgress records a measurement
func (ctrl *ProgressController) CreateProgress(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	var req dto.CreateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	record, err := ctrl.progressService.Create(c.Request.Context(), identity, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(record))
}

// UpdateProgress changes a measurement
func (ctrl *ProgressController) UpdateProgress(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	record, err := ctrl.progressService.Update(c.Request.Context(), identity, id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(record))
}

// DeleteProgress removes a measurement
func (ctrl *ProgressController) DeleteProgress(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.progressService.Delete(c.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "deleted"}))
}
