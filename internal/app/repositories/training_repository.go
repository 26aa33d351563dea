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

// TrainingFilter narrows the training listing. ChildID limits the result to
// sessions the child attended (status 'present'); TrainerUserID to sessions
// run by that trainer.
type TrainingFilter struct {
	ChildID       *int64
	TrainerUserID *int64
	BranchID      *int64
}

// TrainingRepository handles database operations for trainings
type TrainingRepository struct {
	db *pgxpool.Pool
}

// NewTrainingRepository creates a new training repository
func NewTrainingRepository(db *pgxpool.Pool) *TrainingRepository {
	return &TrainingRepository{db: db}
}

const trainingSelect = `
	SELECT
		t.id, t.title, t.branch_id, t.trainer_user_id, t.start_time, t.end_time, t.max_attendees,
		b.name,
		COALESCE(up.first_name || ' ' || up.last_name, '')
	FROM trainings t
	JOIN branches b ON t.branch_id = b.id
	LEFT JOIN user_profiles up ON t.trainer_user_id = up.user_id
`

func scanTraining(row pgx.Row) (*models.Training, error) {
	var t models.Training
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.BranchID,
		&t.TrainerUserID,
		&t.StartTime,
		&t.EndTime,
		&t.MaxAttendees,
		&t.BranchName,
		&t.TrainerName,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetAll retrieves trainings matching the filter, newest first
func (r *TrainingRepository) GetAll(ctx context.Context, filter TrainingFilter) ([]*models.Training, error) {
	var conditions []string
	var args []any

	if filter.ChildID != nil {
		args = append(args, *filter.ChildID)
		conditions = append(conditions, fmt.Sprintf(
			`t.id IN (SELECT training_id FROM training_attendance WHERE child_id = $%d AND status = 'present')`,
			len(args)))
	}
	if filter.TrainerUserID != nil {
		args = append(args, *filter.TrainerUserID)
		conditions = append(conditions, fmt.Sprintf(`t.trainer_user_id = $%d`, len(args)))
	}
	if filter.BranchID != nil {
		args = append(args, *filter.BranchID)
		conditions = append(conditions, fmt.Sprintf(`t.branch_id = $%d`, len(args)))
	}

	query := trainingSelect
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	query += ` ORDER BY t.start_time DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing trainings: %w", err)
	}
	defer rows.Close()

	var trainings []*models.Training
	for rows.Next() {
		t, err := scanTraining(rows)
		if err != nil {
			return nil, err
		}
		trainings = append(trainings, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return trainings, nil
}

// GetByID retrieves a single training
func (r *TrainingRepository) GetByID(ctx context.Context, id int64) (*models.Training, error) {
	t, err := scanTraining(r.db.QueryRow(ctx, trainingSelect+` WHERE t.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTrainingNotFound
		}
		return nil, fmt.Errorf("error retrieving training: %w", err)
	}
	return t, nil
}

// Exists reports whether a training row exists
func (r *TrainingRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM trainings WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking training: %w", err)
	}
	return exists, nil
}

// Create inserts a new training
func (r *TrainingRepository) Create(ctx context.Context, training *models.Training) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO trainings (title, branch_id, trainer_user_id, start_time, end_time, max_attendees)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		training.Title, training.BranchID, training.TrainerUserID,
		training.StartTime, training.EndTime, training.MaxAttendees,
	).Scan(&training.ID)
	if err != nil {
		return fmt.Errorf("error creating training: %w", err)
	}
	return nil
}

// Update updates a training
func (r *TrainingRepository) Update(ctx context.Context, training *models.Training) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE trainings SET title = $1, branch_id = $2, trainer_user_id = $3,
		 start_time = $4, end_time = $5, max_attendees = $6 WHERE id = $7`,
		training.Title, training.BranchID, training.TrainerUserID,
		training.StartTime, training.EndTime, training.MaxAttendees, training.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating training: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTrainingNotFound
	}
	return nil
}

// Delete removes a training; its attendance rows cascade
func (r *TrainingRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM trainings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting training: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTrainingNotFound
	}
	return nil
}
