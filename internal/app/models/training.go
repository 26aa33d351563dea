package models

import "time"

// Training defines a scheduled training session based on the 'trainings' table
type Training struct {
	ID            int64     `json:"id" db:"id" example:"1"`
	Title         string    `json:"title" db:"title" example:"U-10 evening practice"`
	BranchID      int64     `json:"branchId" db:"branch_id"`
	TrainerUserID int64     `json:"trainerUserId" db:"trainer_user_id"`
	StartTime     time.Time `json:"startTime" db:"start_time"`
	EndTime       time.Time `json:"endTime" db:"end_time"`
	MaxAttendees  *int      `json:"maxAttendees,omitempty" db:"max_attendees"`

	// Joined fields
	BranchName  string `json:"branchName,omitempty"`
	TrainerName string `json:"trainerName,omitempty"`
}
