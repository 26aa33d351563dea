package models

import "time"

// Progress defines one recorded measurement based on the 'progress' table
type Progress struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	ChildID      int64     `json:"childId" db:"child_id"`
	DisciplineID int64     `json:"disciplineId" db:"discipline_id"`
	TrainingID   int64     `json:"trainingId" db:"training_id"`
	Date         time.Time `json:"date" db:"date"`
	Value        float64   `json:"value" db:"value" example:"5.2"`
	Notes        *string   `json:"notes,omitempty" db:"notes"`

	// Joined fields
	ChildFirstName  string `json:"childFirstName,omitempty"`
	ChildLastName   string `json:"childLastName,omitempty"`
	DisciplineName  string `json:"disciplineName,omitempty"`
	MeasurementType string `json:"measurementType,omitempty"`
}
