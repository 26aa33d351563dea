package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/db"
	"github.com/arsenal-school/crm-backend/internal/pkg/apperrors"
)

// ChildRepository handles database operations for children and their branch
// assignments.
type ChildRepository struct {
	db *db.PostgresDB
}

// NewChildRepository creates a new child repository
func NewChildRepository(database *db.PostgresDB) *ChildRepository {
	return &ChildRepository{db: database}
}

const childSelect = `
	SELECT
		c.id, c.first_name, c.last_name, c.date_of_birth, c.parent_user_id,
		u.email,
		COALESCE(array_agg(b.id) FILTER (WHERE b.id IS NOT NULL), '{}'),
		COALESCE(array_agg(b.name) FILTER (WHERE b.name IS NOT NULL), '{}')
	FROM children c
	LEFT JOIN users u ON c.parent_user_id = u.id
	LEFT JOIN child_branch_assignments cba ON c.id = cba.child_id
	LEFT JOIN branches b ON cba.branch_id = b.id
`

const childGroupBy = ` GROUP BY c.id, u.email`

func scanChild(row pgx.Row) (*models.Child, error) {
	var child models.Child
	err := row.Scan(
		&child.ID,
		&child.FirstName,
		&child.LastName,
		&child.DateOfBirth,
		&child.ParentUserID,
		&child.ParentEmail,
		&child.BranchIDs,
		&child.BranchNames,
	)
	if err != nil {
		return nil, err
	}
	return &child, nil
}

// GetAll retrieves all children with parent and branch info
func (r *ChildRepository) GetAll(ctx context.Context) ([]*models.Child, error) {
	query := childSelect + childGroupBy + ` ORDER BY c.last_name, c.first_name`
	return r.queryChildren(ctx, query)
}

// GetAllByParent retrieves the children of one parent
func (r *ChildRepository) GetAllByParent(ctx context.Context, parentUserID int64) ([]*models.Child, error) {
	query := childSelect + ` WHERE c.parent_user_id = $1` + childGroupBy + ` ORDER BY c.last_name, c.first_name`
	return r.queryChildren(ctx, query, parentUserID)
}

// GetAllByBranch retrieves the children assigned to one branch
func (r *ChildRepository) GetAllByBranch(ctx context.Context, branchID int64) ([]*models.Child, error) {
	query := childSelect + ` WHERE c.id IN (SELECT child_id FROM child_branch_assignments WHERE branch_id = $1)` +
		childGroupBy + ` ORDER BY c.last_name, c.first_name`
	return r.queryChildren(ctx, query, branchID)
}

func (r *ChildRepository) queryChildren(ctx context.Context, query string, args ...any) ([]*models.Child, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing children: %w", err)
	}
	defer rows.Close()

	var children []*models.Child
	for rows.Next() {
		child, err := scanChild(rows)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return children, nil
}

// GetByID retrieves a single child with parent and branch info
func (r *ChildRepository) GetByID(ctx context.Context, id int64) (*models.Child, error) {
	query := childSelect + ` WHERE c.id = $1` + childGroupBy

	child, err := scanChild(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrChildNotFound
		}
		return nil, fmt.Errorf("error retrieving child: %w", err)
	}
	return child, nil
}

// Create inserts a child and its branch assignments in one transaction
func (r *ChildRepository) Create(ctx context.Context, child *models.Child, branchIDs []int64) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO children (first_name, last_name, date_of_birth, parent_user_id)
			 VALUES ($1, $2, $3, $4) RETURNING id`,
			child.FirstName, child.LastName, child.DateOfBirth, child.ParentUserID,
		).Scan(&child.ID)
		if err != nil {
			return err
		}

		for _, branchID := range branchIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO child_branch_assignments (child_id, branch_id) VALUES ($1, $2)`,
				child.ID, branchID,
			); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("error creating child: %w", err)
	}
	return nil
}

// Update updates a child and replaces its branch assignments in one transaction
func (r *ChildRepository) Update(ctx context.Context, child *models.Child, branchIDs []int64) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx,
			`UPDATE children SET first_name = $1, last_name = $2, date_of_birth = $3, parent_user_id = $4
			 WHERE id = $5`,
			child.FirstName, child.LastName, child.DateOfBirth, child.ParentUserID, child.ID,
		)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrChildNotFound
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM child_branch_assignments WHERE child_id = $1`, child.ID); err != nil {
			return err
		}
		for _, branchID := range branchIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO child_branch_assignments (child_id, branch_id) VALUES ($1, $2)`,
				child.ID, branchID,
			); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, apperrors.ErrChildNotFound) {
			return err
		}
		return fmt.Errorf("error updating child: %w", err)
	}
	return nil
}

// Delete removes a child; assignments, attendance, progress, and subscriptions cascade
func (r *ChildRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM children WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting child: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrChildNotFound
	}
	return nil
}
