package services

import (
	"context"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/repositories"
	"github.com/arsenal-school/crm-backend/internal/pkg/apperrors"
)

// BranchService manages branches. Every role may read; only managers write.
type BranchService struct {
	branches *repositories.BranchRepository
}

// NewBranchService creates a new branch service
func NewBranchService(branches *repositories.BranchRepository) *BranchService {
	return &BranchService{branches: branches}
}

// List returns all branches
func (s *BranchService) List(ctx context.Context) ([]*models.Branch, error) {
	return s.branches.GetAll(ctx)
}

// Get returns one branch
func (s *BranchService) Get(ctx context.Context, id int64) (*models.Branch, error) {
	return s.branches.GetByID(ctx, id)
}

// Create adds a branch (manager only)
func (s *BranchService) Create(ctx context.Context, identity models.Identity, req dto.CreateBranchRequest) (*models.Branch, error) {
	if identity.Role != models.RoleManager {
		return nil, apperrors.ErrPermissionDenied
	}

	branch := &models.Branch{Name: req.Name, Address: req.Address}
	if err := s.branches.Create(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// Update changes a branch (manager only)
func (s *BranchService) Update(ctx context.Context, identity models.Identity, id int64, req dto.UpdateBranchRequest) (*models.Branch, error) {
	if identity.Role != models.RoleManager {
		return nil, apperrors.ErrPermissionDenied
	}

	branch := &models.Branch{ID: id, Name: req.Name, Address: req.Address}
	if err := s.branches.Update(ctx, branch); err != nil {
		return nil, err
	}
	return branch, nil
}

// Delete removes a branch (manager only). Branches still referenced by
// trainings, children, or trainers are refused.
func (s *BranchService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	if identity.Role != models.RoleManager {
		return apperrors.ErrPermissionDenied
	}
	return s.branches.Delete(ctx, id)
}
