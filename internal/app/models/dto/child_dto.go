package dto

// CreateChildRequest defines the payload for registering a child
type CreateChildRequest struct {
	FirstName    string  `json:"firstName" binding:"required"`
	LastName     string  `json:"lastName" binding:"required"`
	DateOfBirth  string  `json:"dateOfBirth" binding:"required,datetime=2006-01-02" example:"2016-05-20"`
	ParentUserID *int64  `json:"parentUserId,omitempty"`
	BranchIDs    []int64 `json:"branchIds,omitempty"`
}

// UpdateChildRequest defines the payload for updating a child. BranchIDs
// replaces the current branch assignments.
type UpdateChildRequest struct {
	FirstName    string  `json:"firstName" binding:"required"`
	LastName     string  `json:"lastName" binding:"required"`
	DateOfBirth  string  `json:"dateOfBirth" binding:"required,datetime=2006-01-02"`
	ParentUserID *int64  `json:"parentUserId,omitempty"`
	BranchIDs    []int64 `json:"branchIds,omitempty"`
}
