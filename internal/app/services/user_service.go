package services

import (
	"context"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/repositories"
	"github.com/arsenal-school/crm-backend/internal/pkg/apperrors"
	"github.com/arsenal-school/crm-backend/internal/pkg/auth"
	"github.com/arsenal-school/crm-backend/internal/pkg/logger"
)

// UserService manages accounts. All account writes are manager-only; the
// parents and trainers listings are open to staff.
type UserService struct {
	users *repositories.UserRepository
}

// NewUserService creates a new user service
func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns all accounts (manager only)
func (s *UserService) List(ctx context.Context, identity models.Identity) ([]dto.UserResponse, error) {
	if identity.Role != models.RoleManager {
		return nil, apperrors.ErrPermissionDenied
	}

	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponses(users), nil
}

// ListByRole returns accounts with a given role (staff only). Backs the
// parents and trainers listings.
func (s *UserService) ListByRole(ctx context.Context, identity models.Identity, role models.Role) ([]dto.UserResponse, error) {
	if !identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	users, err := s.users.GetAllByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	return dto.ToUserResponses(users), nil
}

// Get returns one account. Managers can read anyone; everyone else only
// themselves.
func (s *UserService) Get(ctx context.Context, identity models.Identity, id int64) (*dto.UserResponse, error) {
	if identity.Role != models.RoleManager && identity.UserID != id {
		return nil, apperrors.ErrPermissionDenied
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// Create registers a new account with the given role (manager only).
// Branch assignments only apply to trainers.
func (s *UserService) Create(ctx context.Context, identity models.Identity, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if identity.Role != models.RoleManager {
		return nil, apperrors.ErrPermissionDenied
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, apperrors.NewValidationError("unknown role: " + req.Role)
	}

	return s.create(ctx, req.Email, req.Password, req.FirstName, req.LastName, req.PhoneNumber, role, req.BranchIDs)
}

// CreateParent registers a parent account (manager only)
func (s *UserService) CreateParent(ctx context.Context, identity models.Identity, req dto.CreateParentRequest) (*dto.UserResponse, error) {
	if identity.Role != models.RoleManager {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.create(ctx, req.Email, req.Password, req.FirstName, req.LastName, req.PhoneNumber, models.RoleParent, nil)
}

func (s *UserService) create(ctx context.Context, email, password, firstName, lastName string, phone *string, role models.Role, branchIDs []int64) (*dto.UserResponse, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		FirstName:    firstName,
		LastName:     lastName,
		PhoneNumber:  phone,
	}

	if role != models.RoleTrainer {
		branchIDs = nil
	}
	if err := s.users.Create(ctx, user, branchIDs); err != nil {
		return nil, err
	}

	logger.Info().Int64("userId", user.ID).Str("role", string(role)).Msg("User created")

	created, err := s.users.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(created)
	return &resp, nil
}

// Update changes an account's profile, email, and trainer branch assignments
// (manager only)
func (s *UserService) Update(ctx context.Context, identity models.Identity, id int64, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if identity.Role != models.RoleManager {
		return nil, apperrors.ErrPermissionDenied
	}

	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:          id,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}

	replaceBranches := existing.Role == models.RoleTrainer
	if err := s.users.Update(ctx, user, req.BranchIDs, replaceBranches); err != nil {
		return nil, err
	}

	updated, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(updated)
	return &resp, nil
}

// UpdateParent changes a parent account (manager only). It refuses to touch
// accounts with any other role.
func (s *UserService) UpdateParent(ctx context.Context, identity models.Identity, id int64, req dto.UpdateParentRequest) (*dto.UserResponse, error) {
	if identity.Role != models.RoleManager {
		return nil, apperrors.ErrPermissionDenied
	}

	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Role != models.RoleParent {
		return nil, apperrors.ErrUserNotFound
	}

	user := &models.User{
		ID:          id,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	}
	if err := s.users.Update(ctx, user, nil, false); err != nil {
		return nil, err
	}

	updated, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.ToUserResponse(updated)
	return &resp, nil
}

// Delete removes an account (manager only)
func (s *UserService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	if identity.Role != models.RoleManager {
		return apperrors.ErrPermissionDenied
	}
	if identity.UserID == id {
		return apperrors.NewValidationError("cannot delete your own account")
	}
	return s.users.Delete(ctx, id)
}

// DeleteParent removes a parent account (manager only); it cannot touch
// staff accounts.
func (s *UserService) DeleteParent(ctx context.Context, identity models.Identity, id int64) error {
	if identity.Role != models.RoleManager {
		return apperrors.ErrPermissionDenied
	}
	return s.users.DeleteByRole(ctx, id, models.RoleParent)
}
