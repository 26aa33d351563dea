package dto

// AttendanceEntry is one (child, status) pair of a batch
type AttendanceEntry struct {
	ChildID int64  `json:"childId" binding:"required" example:"1"`
	Status  string `json:"status" binding:"required,oneof=enrolled present absent excused" example:"present"`
}

// MarkAttendanceRequest defines the batch attendance payload for one training.
// The whole batch is applied in a single transaction.
type MarkAttendanceRequest struct {
	Entries []AttendanceEntry `json:"entries" binding:"required,min=1,dive"`
}

// EnrollRequest defines the payload for enrolling a child into a training
type EnrollRequest struct {
	ChildID int64 `json:"childId" binding:"required" example:"1"`
}
