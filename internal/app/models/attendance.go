package models

import "time"

// AttendanceStatus is the closed status vocabulary for a training attendance row
type AttendanceStatus string

const (
	StatusEnrolled AttendanceStatus = "enrolled"
	StatusPresent  AttendanceStatus = "present"
	StatusAbsent   AttendanceStatus = "absent"
	StatusExcused  AttendanceStatus = "excused"
)

// Valid reports whether the status is one of the closed enum values
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusEnrolled, StatusPresent, StatusAbsent, StatusExcused:
		return true
	}
	return false
}

// TrainingAttendance defines one attendance row, keyed by (training, child)
type TrainingAttendance struct {
	TrainingID int64            `json:"trainingId" db:"training_id"`
	ChildID    int64            `json:"childId" db:"child_id"`
	Status     AttendanceStatus `json:"status" db:"status" example:"present"`
}

// TrainingAttendee is the read model for the attendee list of one training:
// every child of the training's branch, with the recorded status or the
// display-only default "absent" when no row exists.
type TrainingAttendee struct {
	ChildID   int64            `json:"childId"`
	ChildName string           `json:"childName"`
	Status    AttendanceStatus `json:"status" example:"absent"`
}

// AttendanceRecord is the read model for a parent's attendance history
type AttendanceRecord struct {
	TrainingID     int64            `json:"trainingId"`
	ChildID        int64            `json:"childId"`
	Status         AttendanceStatus `json:"status"`
	TrainingTitle  string           `json:"trainingTitle"`
	StartTime      time.Time        `json:"startTime"`
	ChildFirstName string           `json:"childFirstName"`
	ChildLastName  string           `json:"childLastName"`
}
