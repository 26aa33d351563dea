package dto

// CreateDisciplineRequest defines the payload for creating a discipline
type CreateDisciplineRequest struct {
	Name            string `json:"name" binding:"required" example:"30m sprint"`
	MeasurementType string `json:"measurementType" binding:"required" example:"seconds"`
}

// UpdateDisciplineRequest defines the payload for updating a discipline
type UpdateDisciplineRequest struct {
	Name            string `json:"name" binding:"required"`
	MeasurementType string `json:"measurementType" binding:"required"`
}
