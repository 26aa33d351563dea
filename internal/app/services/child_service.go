package services

import (
	"context"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/repositories"
	"github.com/arsenal-school/crm-backend/internal/pkg/apperrors"
	"github.com/arsenal-school/crm-backend/internal/pkg/helpers"
)

// ChildService manages child records. Staff see everything and may write,
// parents only read their own children.
type ChildService struct {
	children *repositories.ChildRepository
}

// NewChildService creates a new child service
func NewChildService(children *repositories.ChildRepository) *ChildService {
	return &ChildService{children: children}
}

// List returns children visible to the caller
func (s *ChildService) List(ctx context.Context, identity models.Identity) ([]*models.Child, error) {
	switch identity.Role {
	case models.RoleManager, models.RoleTrainer:
		return s.children.GetAll(ctx)
	case models.RoleParent:
		return s.children.GetAllByParent(ctx, identity.UserID)
	}
	return nil, apperrors.ErrPermissionDenied
}

// Get returns one child. Parents can only read their own children.
func (s *ChildService) Get(ctx context.Context, identity models.Identity, id int64) (*models.Child, error) {
	child, err := s.children.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if identity.Role == models.RoleParent {
		if child.ParentUserID == nil || *child.ParentUserID != identity.UserID {
			return nil, apperrors.ErrChildNotFound
		}
	}

	return child, nil
}

// Create registers a child (staff only)
func (s *ChildService) Create(ctx context.Context, identity models.Identity, req dto.CreateChildRequest) (*models.Child, error) {
	if !identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	dob, err := helpers.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date of birth")
	}

	child := &models.Child{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateOfBirth:  dob,
		ParentUserID: req.ParentUserID,
	}
	if err := s.children.Create(ctx, child, req.BranchIDs); err != nil {
		return nil, err
	}

	return s.children.GetByID(ctx, child.ID)
}

// Update changes a child and replaces its branch assignments (staff only)
func (s *ChildService) Update(ctx context.Context, identity models.Identity, id int64, req dto.UpdateChildRequest) (*models.Child, error) {
	if !identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	dob, err := helpers.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date of birth")
	}

	child := &models.Child{
		ID:           id,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateOfBirth:  dob,
		ParentUserID: req.ParentUserID,
	}
	if err := s.children.Update(ctx, child, req.BranchIDs); err != nil {
		return nil, err
	}

	return s.children.GetByID(ctx, id)
}

// Delete removes a child (manager only)
func (s *ChildService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	if identity.Role != models.RoleManager {
		return apperrors.ErrPermissionDenied
	}
	return s.children.Delete(ctx, id)
}
