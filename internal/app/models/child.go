package models

import "time"

// Child defines the child model based on the 'children' table
type Child struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	FirstName    string    `json:"firstName" db:"first_name" example:"Artem"`
	LastName     string    `json:"lastName" db:"last_name" example:"Sokolov"`
	DateOfBirth  time.Time `json:"dateOfBirth" db:"date_of_birth"`
	ParentUserID *int64    `json:"parentUserId,omitempty" db:"parent_user_id"`

	// Joined/aggregated fields
	ParentEmail *string  `json:"parentEmail,omitempty"`
	BranchIDs   []int64  `json:"branchIds,omitempty"`
	BranchNames []string `json:"branchNames,omitempty"`
}
