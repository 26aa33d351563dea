package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/services"
	"github.com/arsenal-school/crm-backend/internal/middleware"
)

// AttendanceController handles the attendance ledger endpoints
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new attendance controller
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// MarkAttendance applies a batch of status changes to one training. The batch
// is atomic: a child whose present-transition cannot be paid for aborts the
// whole request with 422 and nothing is recorded.
// @Summary Mark attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Training ID"
// @Param request body dto.MarkAttendanceRequest true "Batch of status changes"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse}
// @Failure 404 {object} dto.ErrorResponse "Training not found"
// @Failure 422 {object} dto.ErrorResponse "No active subscription"
// @Router /trainings/{id}/attendance [post]
func (ctrl *AttendanceController) MarkAttendance(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	trainingID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.attendanceService.MarkBatch(c.Request.Context(), identity, trainingID, req.Entries); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "attendance recorded"}))
}

// EnrollChild lets a parent enroll their child into a training. Enrolling
// twice is a no-op and never overwrites a recorded status.
func (ctrl *AttendanceController) EnrollChild(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	trainingID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	var req dto.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := ctrl.attendanceService.Enroll(c.Request.Context(), identity, trainingID, req.ChildID); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MessageResponse{Message: "enrolled"}))
}

// ListAttendees returns the attendee sheet of a training
func (ctrl *AttendanceController) ListAttendees(c *gin.Context) {
	trainingID, err := parseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	attendees, err := ctrl.attendanceService.ListAttendees(c.Request.Context(), trainingID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(attendees))
}

// AttendanceHistory returns the attendance of a parent's children. Parents
// get their own history by default; managers pass parentUserId explicitly.
func (ctrl *AttendanceController) AttendanceHistory(c *gin.Context) {
	identity, _ := middleware.IdentityFromContext(c)

	parentUserID, err := parseOptionalIDQuery(c, "parentUserId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	target := identity.UserID
	if parentUserID != nil {
		target = *parentUserID
	}

	records, err := ctrl.attendanceService.History(c.Request.Context(), identity, target)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(records))
}
