package services

import (
	"context"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/repositories"
	"github.com/arsenal-school/crm-backend/internal/pkg/apperrors"
)

// TrainingService manages scheduled sessions. Every role may read (parents
// typically filter by child); writes are manager-only.
type TrainingService struct {
	trainings *repositories.TrainingRepository
	children  ChildFinder
}

// NewTrainingService creates a new training service
func NewTrainingService(trainings *repositories.TrainingRepository, children ChildFinder) *TrainingService {
	return &TrainingService{trainings: trainings, children: children}
}

// List returns trainings matching the filter, newest first. Parents may only
// filter by their own children.
func (s *TrainingService) List(ctx context.Context, identity models.Identity, filter repositories.TrainingFilter) ([]*models.Training, error) {
	if identity.Role == models.RoleParent && filter.ChildID != nil {
		child, err := s.children.GetByID(ctx, *filter.ChildID)
		if err != nil {
			return nil, err
		}
		if child.ParentUserID == nil || *child.ParentUserID != identity.UserID {
			return nil, apperrors.ErrChildNotFound
		}
	}

	return s.trainings.GetAll(ctx, filter)
}

// Get returns one training
func (s *TrainingService) Get(ctx context.Context, id int64) (*models.Training, error) {
	return s.trainings.GetByID(ctx, id)
}

// Create schedules a training (manager only)
func (s *TrainingService) Create(ctx context.Context, identity models.Identity, req dto.CreateTrainingRequest) (*models.Training, error) {
	if identity.Role != models.RoleManager {
		return nil, apperrors.ErrPermissionDenied
	}

	training := &models.Training{
		Title:         req.Title,
		BranchID:      req.BranchID,
		TrainerUserID: req.TrainerUserID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		MaxAttendees:  req.MaxAttendees,
	}
	if err := s.trainings.Create(ctx, training); err != nil {
		return nil, err
	}

	return s.trainings.GetByID(ctx, training.ID)
}

// Update reschedules a training (manager only)
func (s *TrainingService) Update(ctx context.Context, identity models.Identity, id int64, req dto.UpdateTrainingRequest) (*models.Training, error) {
	if identity.Role != models.RoleManager {
		return nil, apperrors.ErrPermissionDenied
	}

	training := &models.Training{
		ID:            id,
		Title:         req.Title,
		BranchID:      req.BranchID,
		TrainerUserID: req.TrainerUserID,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		MaxAttendees:  req.MaxAttendees,
	}
	if err := s.trainings.Update(ctx, training); err != nil {
		return nil, err
	}

	return s.trainings.GetByID(ctx, id)
}

// Delete removes a training (manager only); its attendance rows go with it
func (s *TrainingService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	if identity.Role != models.RoleManager {
		return apperrors.ErrPermissionDenied
	}
	return s.trainings.Delete(ctx, id)
}
