package models

// Discipline defines a measurable skill based on the 'disciplines' table
type Discipline struct {
	ID              int64  `json:"id" db:"id" example:"1"`
	Name            string `json:"name" db:"name" example:"30m sprint"`
	MeasurementType string `json:"measurementType" db:"measurement_type" example:"seconds"`
}
