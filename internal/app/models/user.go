package models

import (
	"time"
)

// Role defines the caller's role within the school
type Role string

const (
	RoleManager Role = "manager"
	RoleTrainer Role = "trainer"
	RoleParent  Role = "parent"
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleTrainer, RoleParent:
		return true
	}
	return false
}

// Identity is the request-scoped caller identity extracted from the JWT.
// It replaces any process-wide session state: every service call that needs
// authorization receives one explicitly.
type Identity struct {
	UserID int64
	Role   Role
}

// IsStaff reports whether the identity may use the staff write paths
func (i Identity) IsStaff() bool {
	return i.Role == RoleManager || i.Role == RoleTrainer
}

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Email        string    `json:"email" db:"email" example:"coach@arsenal-school.ru"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         Role      `json:"role" db:"role" example:"trainer"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`

	// Profile fields joined from 'user_profiles'
	FirstName   string  `json:"firstName" db:"first_name" example:"Denis"`
	LastName    string  `json:"lastName" db:"last_name" example:"Kotov"`
	PhoneNumber *string `json:"phoneNumber,omitempty" db:"phone_number"`

	// Branch assignments (trainers only), aggregated from 'user_branch_assignments'
	BranchIDs   []int64  `json:"branchIds,omitempty"`
	BranchNames []string `json:"branchNames,omitempty"`
}

// RefreshToken defines a persisted refresh token based on the 'refresh_tokens' table
type RefreshToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Token     string    `json:"token" db:"token"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	Revoked   bool      `json:"revoked" db:"revoked"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
