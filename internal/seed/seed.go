package seed

import (
	"context"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/db"
	"github.com/arsenal-school/crm-backend/internal/pkg/auth"
	"github.com/arsenal-school/crm-backend/internal/pkg/logger"
)

const (
	defaultManagerEmail    = "manager@arsenal-school.local"
	defaultManagerPassword = "ChangeMe123!"
)

// Run seeds the default manager account and a first branch on an empty
// database. It is idempotent: an existing manager means nothing to do.
func Run(ctx context.Context, database *db.PostgresDB) error {
	var managerCount int
	err := database.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1`, models.RoleManager).Scan(&managerCount)
	if err != nil {
		return err
	}
	if managerCount > 0 {
		return nil
	}

	hash, err := auth.HashPassword(defaultManagerPassword)
	if err != nil {
		return err
	}

	var managerID int64
	err = database.Pool.QueryRow(ctx,
		`INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3) RETURNING id`,
		defaultManagerEmail, hash, models.RoleManager,
	).Scan(&managerID)
	if err != nil {
		return err
	}

	_, err = database.Pool.Exec(ctx,
		`INSERT INTO user_profiles (user_id, first_name, last_name) VALUES ($1, $2, $3)`,
		managerID, "Default", "Manager")
	if err != nil {
		return err
	}

	_, err = database.Pool.Exec(ctx,
		`INSERT INTO branches (name, address) VALUES ($1, $2)`,
		"Main", "")
	if err != nil {
		return err
	}

	logger.Warn().
		Str("email", defaultManagerEmail).
		Msg("Seeded default manager account, change its password immediately")

	return nil
}
