package services

import (
	"context"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/repositories"
	"github.com/arsenal-school/crm-backend/internal/pkg/apperrors"
)

// DisciplineService manages the measurable-skill catalog. Every role may
// read; writes are manager-only.
type DisciplineService struct {
	disciplines *repositories.DisciplineRepository
}

// NewDisciplineService creates a new discipline service
func NewDisciplineService(disciplines *repositories.DisciplineRepository) *DisciplineService {
	return &DisciplineService{disciplines: disciplines}
}

// List returns all disciplines
func (s *DisciplineService) List(ctx context.Context) ([]*models.Discipline, error) {
	return s.disciplines.GetAll(ctx)
}

// Create adds a discipline (manager only)
func (s *DisciplineService) Create(ctx context.Context, identity models.Identity, req dto.CreateDisciplineRequest) (*models.Discipline, error) {
	if identity.Role != models.RoleManager {
		return nil, apperrors.ErrPermissionDenied
	}

	discipline := &models.Discipline{Name: req.Name, MeasurementType: req.MeasurementType}
	if err := s.disciplines.Create(ctx, discipline); err != nil {
		return nil, err
	}
	return discipline, nil
}

// Update changes a discipline (manager only)
func (s *DisciplineService) Update(ctx context.Context, identity models.Identity, id int64, req dto.UpdateDisciplineRequest) (*models.Discipline, error) {
	if identity.Role != models.RoleManager {
		return nil, apperrors.ErrPermissionDenied
	}

	discipline := &models.Discipline{ID: id, Name: req.Name, MeasurementType: req.MeasurementType}
	if err := s.disciplines.Update(ctx, discipline); err != nil {
		return nil, err
	}
	return discipline, nil
}

// Delete removes a discipline (manager only)
func (s *DisciplineService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	if identity.Role != models.RoleManager {
		return apperrors.ErrPermissionDenied
	}
	return s.disciplines.Delete(ctx, id)
}
