package dto

// CreateBranchRequest defines the payload for creating a branch
type CreateBranchRequest struct {
	Name    string `json:"name" binding:"required" example:"Sokolniki"`
	Address string `json:"address" example:"Sokolnicheskaya sq. 1"`
}

// UpdateBranchRequest defines the payload for updating a branch
type UpdateBranchRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}
