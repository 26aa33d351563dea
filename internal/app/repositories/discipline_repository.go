package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/pkg/apperrors"
)

// DisciplineRepository handles database operations for disciplines
type DisciplineRepository struct {
	db *pgxpool.Pool
}

// NewDisciplineRepository creates a new discipline repository
func NewDisciplineRepository(db *pgxpool.Pool) *DisciplineRepository {
	return &DisciplineRepository{db: db}
}

// GetAll retrieves all disciplines ordered by name
func (r *DisciplineRepository) GetAll(ctx context.Context) ([]*models.Discipline, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, measurement_type FROM disciplines ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing disciplines: %w", err)
	}
	defer rows.Close()

	var disciplines []*models.Discipline
	for rows.Next() {
		var d models.Discipline
		if err := rows.Scan(&d.ID, &d.Name, &d.MeasurementType); err != nil {
			return nil, err
		}
		disciplines = append(disciplines, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return disciplines, nil
}

// GetByID retrieves a single discipline
func (r *DisciplineRepository) GetByID(ctx context.Context, id int64) (*models.Discipline, error) {
	var d models.Discipline
	err := r.db.QueryRow(ctx,
		`SELECT id, name, measurement_type FROM disciplines WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name, &d.MeasurementType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDisciplineNotFound
		}
		return nil, fmt.Errorf("error retrieving discipline: %w", err)
	}
	return &d, nil
}

// Create inserts a new discipline
func (r *DisciplineRepository) Create(ctx context.Context, discipline *models.Discipline) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO disciplines (name, measurement_type) VALUES ($1, $2) RETURNING id`,
		discipline.Name, discipline.MeasurementType,
	).Scan(&discipline.ID)
	if err != nil {
		return fmt.Errorf("error creating discipline: %w", err)
	}
	return nil
}

// Update updates a discipline
func (r *DisciplineRepository) Update(ctx context.Context, discipline *models.Discipline) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE disciplines SET name = $1, measurement_type = $2 WHERE id = $3`,
		discipline.Name, discipline.MeasurementType, discipline.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating discipline: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDisciplineNotFound
	}
	return nil
}

// Delete removes a discipline
func (r *DisciplineRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM disciplines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting discipline: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDisciplineNotFound
	}
	return nil
}
