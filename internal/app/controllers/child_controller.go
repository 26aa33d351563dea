package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/services"
	"github.com/arsenal-school/crm-backend/internal/middleware"
)

// ChildController handles child endpoints
type ChildController struct {
	childService *services.ChildService
}

// NewChildController creates a new child controller
func NewChildController(childService *services.ChildService) *ChildController {
	return &ChildController{childService: childService}
}

// ListChildren returns children visible to the caller: staff see all,
// parents only their own.
func (ctrl *ChildController) ListChildren(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	children, err := ctrl.childService.List(c.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(children))
}

// GetChild returns one child
func (ctrl *ChildController) GetChild(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	child, err := ctrl.childService.Get(c.Request.Context(), identity, id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(child))
}

// CreateChild registers a child
func (ctrl *ChildController) CreateChild(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	var req dto.CreateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	child, err := ctrl.childService.Create(c.Request.Context(), identity, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(child))
}

// UpdateChild changes a child
func (ctrl *ChildController) UpdateChild(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateChildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	child, err := ctrl.childService.Update(c.Request.Context(), identity, id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(child))
}

// DeleteChild removes a child
func (ctrl *ChildController) DeleteChild(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.childService.Delete(c.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "deleted"}))
}
