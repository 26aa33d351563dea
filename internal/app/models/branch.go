package models

// Branch defines a school branch based on the 'branches' table
type Branch struct {
	ID      int64  `json:"id" db:"id" example:"1"`
	Name    string `json:"name" db:"name" example:"Sokolniki"`
	Address string `json:"address" db:"address" example:"Sokolnicheskaya sq. 1"`
}
