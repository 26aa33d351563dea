package services

import (
	"context"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/repositories"
	"github.com/arsenal-school/crm-backend/internal/pkg/apperrors"
	"github.com/arsenal-school/crm-backend/internal/pkg/helpers"
)

// ProgressService manages recorded measurements. Managers see everything,
// trainers the children of their branches, parents their own children.
// Writes are staff-only.
type ProgressService struct {
	progress *repositories.ProgressRepository
}

// NewProgressService creates a new progress service
func NewProgressService(progress *repositories.ProgressRepository) *ProgressService {
	return &ProgressService{progress: progress}
}

// List returns measurements visible to the caller, newest first
func (s *ProgressService) List(ctx context.Context, identity models.Identity, childID *int64) ([]*models.Progress, error) {
	filter := repositories.ProgressFilter{ChildID: childID}

	switch identity.Role {
	case models.RoleManager:
	case models.RoleTrainer:
		filter.TrainerUserID = &identity.UserID
	case models.RoleParent:
		filter.ParentUserID = &identity.UserID
	default:
		return nil, apperrors.ErrPermissionDenied
	}

	return s.progress.GetAll(ctx, filter)
}

// Create records a measurement (staff only)
func (s *ProgressService) Create(ctx context.Context, identity models.Identity, req dto.CreateProgressRequest) (*models.Progress, error) {
	if !identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date")
	}

	record := &models.Progress{
		ChildID:      req.ChildID,
		DisciplineID: req.DisciplineID,
		TrainingID:   req.TrainingID,
		Date:         date,
		Value:        *req.Value,
		Notes:        req.Notes,
	}
	if err := s.progress.Create(ctx, record); err != nil {
		return nil, err
	}

	return s.progress.GetByID(ctx, record.ID)
}

// Update changes a measurement (staff only)
func (s *ProgressService) Update(ctx context.Context, identity models.Identity, id int64, req dto.UpdateProgressRequest) (*models.Progress, error) {
	if !identity.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	date, err := helpers.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date")
	}

	record := &models.Progress{
		ID:           id,
		ChildID:      req.ChildID,
		DisciplineID: req.DisciplineID,
		TrainingID:   req.TrainingID,
		Date:         date,
		Value:        *req.Value,
		Notes:        req.Notes,
	}
	if err := s.progress.Update(ctx, record); err != nil {
		return nil, err
	}

	return s.progress.GetByID(ctx, id)
}

// Delete removes a measurement (staff only)
func (s *ProgressService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	if !identity.IsStaff() {
		return apperrors.ErrPermissionDenied
	}
	return s.progress.Delete(ctx, id)
}
