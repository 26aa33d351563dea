package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/services"
	"github.com/arsenal-school/crm-backend/internal/middleware"
)

// SubscriptionController handles training-pack endpoints
type SubscriptionController struct {
	subscriptionService *services.SubscriptionService
}

// NewSubscriptionController creates a new subscription controller
func NewSubscriptionController(subscriptionService *services.SubscriptionService) *SubscriptionController {
	return &SubscriptionController{subscriptionService: subscriptionService}
}

// ListSubscriptions returns packs visible to the caller, optionally filtered
// by child.
func (ctrl *SubscriptionController) ListSubscriptions(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	childID, err := parseOptionalIDQuery(c, "childId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	subs, err := ctrl.subscriptionService.List(c.Request.Context(), identity, childID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(subs))
}

// CreateSubscription sells a pack to a child
// @Summary Create subscription
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubscriptionRequest true "Pack"
// @Success 201 {object} dto.APIResponse{data=models.Subscription}
// @Router /subscriptions [post]
func (ctrl *SubscriptionController) CreateSubscription(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	sub, err := ctrl.subscriptionService.Create(c.Request.Context(), identity, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(sub))
}

// UpdateSubscription adjusts a pack
func (ctrl *SubscriptionController) UpdateSubscription(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	sub, err := ctrl.subscriptionService.Update(c.Request.Context(), identity, id, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(sub))
}

// DeleteSubscription removes a pack
func (ctrl *SubscriptionController) DeleteSubscription(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	id, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.subscriptionService.Delete(c.Request.Context(), identity, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "deleted"}))
}
