package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/pkg/apperrors"
	"github.com/arsenal-school/crm-backend/internal/pkg/dberrors"
)

// BranchRepository handles database operations for branches
type BranchRepository struct {
	db *pgxpool.Pool
}

// NewBranchRepository creates a new branch repository
func NewBranchRepository(db *pgxpool.Pool) *BranchRepository {
	return &BranchRepository{db: db}
}

// GetAll retrieves all branches ordered by name
func (r *BranchRepository) GetAll(ctx context.Context) ([]*models.Branch, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, address FROM branches ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing branches: %w", err)
	}
	defer rows.Close()

	var branches []*models.Branch
	for rows.Next() {
		var b models.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Address); err != nil {
			return nil, err
		}
		branches = append(branches, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return branches, nil
}

// GetByID retrieves a single branch
func (r *BranchRepository) GetByID(ctx context.Context, id int64) (*models.Branch, error) {
	var b models.Branch
	err := r.db.QueryRow(ctx,
		`SELECT id, name, address FROM branches WHERE id = $1`, id,
	).Scan(&b.ID, &b.Name, &b.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBranchNotFound
		}
		return nil, fmt.Errorf("error retrieving branch: %w", err)
	}
	return &b, nil
}

// Create inserts a new branch
func (r *BranchRepository) Create(ctx context.Context, branch *models.Branch) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO branches (name, address) VALUES ($1, $2) RETURNING id`,
		branch.Name, branch.Address,
	).Scan(&branch.ID)
	if err != nil {
		return fmt.Errorf("error creating branch: %w", err)
	}
	return nil
}

// Update updates a branch's name and address
func (r *BranchRepository) Update(ctx context.Context, branch *models.Branch) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE branches SET name = $1, address = $2 WHERE id = $3`,
		branch.Name, branch.Address, branch.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating branch: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}
	return nil
}

// Delete removes a branch. Branches referenced by trainings, children, or
// trainer assignments cannot be deleted; the FK violation maps to ErrBranchInUse.
func (r *BranchRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM branches WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrBranchInUse
		}
		return fmt.Errorf("error deleting branch: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBranchNotFound
	}
	return nil
}
