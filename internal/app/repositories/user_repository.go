package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/db"
	"github.com/arsenal-school/crm-backend/internal/pkg/apperrors"
	"github.com/arsenal-school/crm-backend/internal/pkg/dberrors"
)

// UserRepository handles database operations for users, their profiles,
// and trainer/branch assignments.
type UserRepository struct {
	db *db.PostgresDB
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *db.PostgresDB) *UserRepository {
	return &UserRepository{db: database}
}

const userSelectColumns = `
	u.id, u.email, u.password_hash, u.role, u.created_at,
	COALESCE(up.first_name, ''), COALESCE(up.last_name, ''), up.phone_number,
	COALESCE(array_agg(b.id) FILTER (WHERE b.id IS NOT NULL), '{}'),
	COALESCE(array_agg(b.name) FILTER (WHERE b.name IS NOT NULL), '{}')
`

const userSelectJoins = `
	FROM users u
	LEFT JOIN user_profiles up ON u.id = up.user_id
	LEFT JOIN user_branch_assignments uba ON u.id = uba.user_id
	LEFT JOIN branches b ON uba.branch_id = b.id
`

const userGroupBy = ` GROUP BY u.id, up.first_name, up.last_name, up.phone_number`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.FirstName,
		&user.LastName,
		&user.PhoneNumber,
		&user.BranchIDs,
		&user.BranchNames,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a user with profile and branch assignments
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT` + userSelectColumns + userSelectJoins + ` WHERE u.id = $1` + userGroupBy

	user, err := scanUser(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}

// GetByEmail retrieves a user by email for the login path
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT` + userSelectColumns + userSelectJoins + ` WHERE u.email = $1` + userGroupBy

	user, err := scanUser(r.db.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}
	return user, nil
}

// GetAll retrieves all users with profiles and assignments
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := `SELECT` + userSelectColumns + userSelectJoins + userGroupBy + ` ORDER BY u.id`
	return r.queryUsers(ctx, query)
}

// GetAllByRole retrieves all users with the given role, ordered by name.
// Used for the parents and trainers listings.
func (r *UserRepository) GetAllByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	query := `SELECT` + userSelectColumns + userSelectJoins +
		` WHERE u.role = $1` + userGroupBy + ` ORDER BY up.last_name, up.first_name`
	return r.queryUsers(ctx, query, role)
}

func (r *UserRepository) queryUsers(ctx context.Context, query string, args ...any) ([]*models.User, error) {
	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// Create inserts a user, its profile, and optional branch assignments in one
// transaction.
func (r *UserRepository) Create(ctx context.Context, user *models.User, branchIDs []int64) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3) RETURNING id, created_at`,
			user.Email, user.PasswordHash, user.Role,
		).Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO user_profiles (user_id, first_name, last_name, phone_number) VALUES ($1, $2, $3, $4)`,
			user.ID, user.FirstName, user.LastName, user.PhoneNumber,
		)
		if err != nil {
			return err
		}

		for _, branchID := range branchIDs {
			if _, err := tx.Exec(ctx,
				`INSERT INTO user_branch_assignments (user_id, branch_id) VALUES ($1, $2)`,
				user.ID, branchID,
			); err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") || dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}
	return nil
}

// Update updates a user's profile, optionally its email, and replaces branch
// assignments when replaceBranches is set (trainers only), in one transaction.
func (r *UserRepository) Update(ctx context.Context, user *models.User, branchIDs []int64, replaceBranches bool) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if user.Email != "" {
			if _, err := tx.Exec(ctx,
				`UPDATE users SET email = $1 WHERE id = $2`, user.Email, user.ID); err != nil {
				return err
			}
		}

		cmdTag, err := tx.Exec(ctx,
			`UPDATE user_profiles SET first_name = $1, last_name = $2, phone_number = $3 WHERE user_id = $4`,
			user.FirstName, user.LastName, user.PhoneNumber, user.ID,
		)
		if err != nil {
			return err
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrUserNotFound
		}

		if replaceBranches {
			if _, err := tx.Exec(ctx,
				`DELETE FROM user_branch_assignments WHERE user_id = $1`, user.ID); err != nil {
				return err
			}
			for _, branchID := range branchIDs {
				if _, err := tx.Exec(ctx,
					`INSERT INTO user_branch_assignments (user_id, branch_id) VALUES ($1, $2)`,
					user.ID, branchID,
				); err != nil {
					return err
				}
			}
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return err
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}
	return nil
}

// Delete deletes a user; profile, assignments, and tokens cascade
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// DeleteByRole deletes a user only if it has the given role. The parents
// endpoint uses this so it cannot remove managers or trainers.
func (r *UserRepository) DeleteByRole(ctx context.Context, id int64, role models.Role) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1 AND role = $2`, id, role)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
