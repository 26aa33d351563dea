package dto

// CreateProgressRequest defines the payload for recording a measurement
type CreateProgressRequest struct {
	ChildID      int64    `json:"childId" binding:"required"`
	DisciplineID int64    `json:"disciplineId" binding:"required"`
	TrainingID   int64    `json:"trainingId" binding:"required"`
	Date         string   `json:"date" binding:"required,datetime=2006-01-02" example:"2026-08-28"`
	Value        *float64 `json:"value" binding:"required"`
	Notes        *string  `json:"notes,omitempty"`
}

// UpdateProgressRequest defines the payload for updating a measurement
type UpdateProgressRequest struct {
	ChildID      int64    `json:"childId" binding:"required"`
	DisciplineID int64    `json:"disciplineId" binding:"required"`
	TrainingID   int64    `json:"trainingId" binding:"required"`
	Date         string   `json:"date" binding:"required,datetime=2006-01-02"`
	Value        *float64 `json:"value" binding:"required"`
	Notes        *string  `json:"notes,omitempty"`
}
