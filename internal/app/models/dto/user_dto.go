package dto

import (
	"time"

	"github.com/arsenal-school/crm-backend/internal/app/models"
)

// CreateUserRequest defines the payload for creating a staff or parent account
type CreateUserRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	Role        string  `json:"role" binding:"required,oneof=manager trainer parent"`
	BranchIDs   []int64 `json:"branchIds,omitempty"`
}

// UpdateUserRequest defines the payload for updating an account. Empty email
// leaves the current one in place.
type UpdateUserRequest struct {
	Email       string  `json:"email,omitempty" binding:"omitempty,email"`
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
	BranchIDs   []int64 `json:"branchIds,omitempty"`
}

// CreateParentRequest defines the payload for the parents endpoint; the role
// is fixed server-side.
type CreateParentRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// UpdateParentRequest defines the payload for updating a parent
type UpdateParentRequest struct {
	Email       string  `json:"email,omitempty" binding:"omitempty,email"`
	FirstName   string  `json:"firstName" binding:"required"`
	LastName    string  `json:"lastName" binding:"required"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// UserResponse is the public view of an account; it never exposes the hash
type UserResponse struct {
	ID          int64     `json:"id" example:"1"`
	Email       string    `json:"email"`
	Role        string    `json:"role" example:"trainer"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	BranchIDs   []int64   `json:"branchIds,omitempty"`
	BranchNames []string  `json:"branchNames,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToUserResponse maps a user model to its public view
func ToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Role:        string(user.Role),
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		BranchIDs:   user.BranchIDs,
		BranchNames: user.BranchNames,
		CreatedAt:   user.CreatedAt,
	}
}

// ToUserResponses maps a slice of user models
func ToUserResponses(users []*models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToUserResponse(user))
	}
	return responses
}
