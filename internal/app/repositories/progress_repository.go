package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/pkg/apperrors"
)

// ProgressFilter narrows the progress listing. ParentUserID limits rows to
// that parent's children; TrainerUserID to children assigned to the trainer's
// branches.
type ProgressFilter struct {
	ChildID       *int64
	ParentUserID  *int64
	TrainerUserID *int64
}

// ProgressRepository handles database operations for progress records
type ProgressRepository struct {
	db *pgxpool.Pool
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{db: db}
}

const progressSelect = `
	SELECT
		p.id, p.child_id, p.discipline_id, p.training_id, p.date, p.value, p.notes,
		c.first_name, c.last_name, d.name, d.measurement_type
	FROM progress p
	JOIN children c ON p.child_id = c.id
	JOIN disciplines d ON p.discipline_id = d.id
`

func scanProgress(row pgx.Row) (*models.Progress, error) {
	var p models.Progress
	err := row.Scan(
		&p.ID,
		&p.ChildID,
		&p.DisciplineID,
		&p.TrainingID,
		&p.Date,
		&p.Value,
		&p.Notes,
		&p.ChildFirstName,
		&p.ChildLastName,
		&p.DisciplineName,
		&p.MeasurementType,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetAll retrieves progress records matching the filter, newest first
func (r *ProgressRepository) GetAll(ctx context.Context, filter ProgressFilter) ([]*models.Progress, error) {
	var conditions []string
	var args []any

	if filter.ChildID != nil {
		args = append(args, *filter.ChildID)
		conditions = append(conditions, fmt.Sprintf(`p.child_id = $%d`, len(args)))
	}
	if filter.ParentUserID != nil {
		args = append(args, *filter.ParentUserID)
		conditions = append(conditions, fmt.Sprintf(`c.parent_user_id = $%d`, len(args)))
	}
	if filter.TrainerUserID != nil {
		args = append(args, *filter.TrainerUserID)
		conditions = append(conditions, fmt.Sprintf(
			`p.child_id IN (
				SELECT cba.child_id FROM child_branch_assignments cba
				JOIN user_branch_assignments uba ON cba.branch_id = uba.branch_id
				WHERE uba.user_id = $%d
			)`, len(args)))
	}

	query := progressSelect
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	query += ` ORDER BY p.date DESC, p.id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing progress: %w", err)
	}
	defer rows.Close()

	var records []*models.Progress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetByID retrieves a single progress record
func (r *ProgressRepository) GetByID(ctx context.Context, id int64) (*models.Progress, error) {
	p, err := scanProgress(r.db.QueryRow(ctx, progressSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgressNotFound
		}
		return nil, fmt.Errorf("error retrieving progress: %w", err)
	}
	return p, nil
}

// Create inserts a new progress record
func (r *ProgressRepository) Create(ctx context.Context, progress *models.Progress) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO progress (child_id, discipline_id, training_id, date, value, notes)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		progress.ChildID, progress.DisciplineID, progress.TrainingID,
		progress.Date, progress.Value, progress.Notes,
	).Scan(&progress.ID)
	if err != nil {
		return fmt.Errorf("error creating progress: %w", err)
	}
	return nil
}

// Update updates a progress record
func (r *ProgressRepository) Update(ctx context.Context, progress *models.Progress) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE progress SET child_id = $1, discipline_id = $2, training_id = $3,
		 date = $4, value = $5, notes = $6 WHERE id = $7`,
		progress.ChildID, progress.DisciplineID, progress.TrainingID,
		progress.Date, progress.Value, progress.Notes, progress.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating progress: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgressNotFound
	}
	return nil
}

// Delete removes a progress record
func (r *ProgressRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM progress WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting progress: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrProgressNotFound
	}
	return nil
}
