package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/services"
	"github.com/arsenal-school/crm-backend/internal/middleware"
)

// BranchController handles branch endpoints
type BranchController struct {
	branchService *services.BranchService
}

// NewBranchController creates a new branch controller
func NewBranchController(branchService *services.BranchService) *BranchController {
	return &BranchController{branchService: branchService}
}

// ListBranches returns all branches
func (ctrl *BranchController) ListBranches(c *gin.Context) {
	branches, err := ctrl.branchService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(branches))
}

// GetBranch returns one branch
func (ctrl *BranchController) GetBranch(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	branch, err := ctrl.branchService.Get(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(branch))
}

// CreateBranch adds a branch
func (ctrl *BranchController) CreateBranch(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	branch, err := ctrl.branchService.Create(c.Request.Context(), identity, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(branch))
}

// UpdateBranch changes a branch
func (ctrl *BranchController) UpdateBranch(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	branch, err := ctrl.branchService.Update(c.Request.Context(), identity, id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(branch))
}

// DeleteBranch removes a branch
// @Summary Delete branch
// @Tags branches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Branch ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 409 {object} dto.ErrorResponse "Branch still referenced"
// @Router /branches/{id} [delete]
func (ctrl *BranchController) DeleteBranch(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.branchService.Delete(c.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "deleted"}))
}
