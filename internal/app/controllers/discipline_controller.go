package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/services"
	"github.com/arsenal-school/crm-backend/internal/middleware"
)

// DisciplineController handles discipline catalog endpoints
type DisciplineController struct {
	disciplineService *services.DisciplineService
}

// NewDisciplineController creates a new discipline controller
func NewDisciplineController(disciplineService *services.DisciplineService) *DisciplineController {
	return &DisciplineController{disciplineService: disciplineService}
}

// ListDisciplines returns all disciplines
func (ctrl *DisciplineController) ListDisciplines(c *gin.Context) {
	disciplines, err := ctrl.disciplineService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(disciplines))
}

// CreateDiscipline adds a discipline
func (ctrl *DisciplineController) CreateDiscipline(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	var req dto.CreateDisciplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	discipline, err := ctrl.disciplineService.Create(c.Request.Context(), identity, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(discipline))
}

// UpdateDiscipline changes a discipline
func (ctrl *DisciplineController) UpdateDiscipline(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateDisciplineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	discipline, err := ctrl.disciplineService.Update(c.Request.Context(), identity, id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(discipline))
}

// DeleteDiscipline removes a discipline
func (ctrl *DisciplineController) DeleteDiscipline(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.disciplineService.Delete(c.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "deleted"}))
}
