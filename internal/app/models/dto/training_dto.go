package dto

import "time"

// CreateTrainingRequest defines the payload for scheduling a training
type CreateTrainingRequest struct {
	Title         string    `json:"title" binding:"required" example:"U-10 evening practice"`
	BranchID      int64     `json:"branchId" binding:"required"`
	TrainerUserID int64     `json:"trainerUserId" binding:"required"`
	StartTime     time.Time `json:"startTime" binding:"required"`
	EndTime       time.Time `json:"endTime" binding:"required,gtfield=StartTime"`
	MaxAttendees  *int      `json:"maxAttendees,omitempty" binding:"omitempty,min=1"`
}

// UpdateTrainingRequest defines the payload for rescheduling a training
type UpdateTrainingRequest struct {
	Title         string    `json:"title" binding:"required"`
	BranchID      int64     `json:"branchId" binding:"required"`
	TrainerUserID int64     `json:"trainerUserId" binding:"required"`
	StartTime     time.Time `json:"startTime" binding:"required"`
	EndTime       time.Time `json:"endTime" binding:"required,gtfield=StartTime"`
	MaxAttendees  *int      `json:"maxAttendees,omitempty" binding:"omitempty,min=1"`
}
