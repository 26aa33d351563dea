package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/services"
	"github.com/arsenal-school/crm-backend/internal/middleware"
)

// ParentController handles the parent-account endpoints. Listing is open to
// staff, writes to managers; the role is fixed to 'parent' server-side.
type ParentController struct {
	userService *services.UserService
}

// NewParentController creates a new parent controller
func NewParentController(userService *services.UserService) *ParentController {
	return &ParentController{userService: userService}
}

// ListParents returns all parent accounts
func (ctrl *ParentController) ListParents(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	parents, err := ctrl.userService.ListByRole(c.Request.Context(), identity, models.RoleParent)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(parents))
}

// CreateParent registers a parent account
func (ctrl *ParentController) CreateParent(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	var req dto.CreateParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	parent, err := ctrl.userService.CreateParent(c.Request.Context(), identity, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(parent))
}

// UpdateParent changes a parent account
func (ctrl *ParentController) UpdateParent(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	parent, err := ctrl.userService.UpdateParent(c.Request.Context(), identity, id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(parent))
}

// DeleteParent removes a parent account
func (ctrl *ParentController) DeleteParent(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.userService.DeleteParent(c.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "deleted"}))
}
