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

// SubscriptionFilter narrows the subscription listing. ParentUserID limits
// the result to subscriptions of that parent's children.
type SubscriptionFilter struct {
	ChildID      *int64
	ParentUserID *int64
}

// SubscriptionRepository handles database operations for subscriptions.
// Unit consumption is not done here; that is the attendance ledger's job.
type SubscriptionRepository struct {
	db *pgxpool.Pool
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

const subscriptionSelect = `
	SELECT
		s.id, s.child_id, s.manager_id, s.trainings_total, s.trainings_remaining,
		s.purchase_date, s.expiry_date,
		c.first_name || ' ' || c.last_name
	FROM subscriptions s
	JOIN children c ON s.child_id = c.id
`

func scanSubscription(row pgx.Row) (*models.Subscription, error) {
	var s models.Subscription
	err := row.Scan(
		&s.ID,
		&s.ChildID,
		&s.ManagerID,
		&s.TrainingsTotal,
		&s.TrainingsRemaining,
		&s.PurchaseDate,
		&s.ExpiryDate,
		&s.ChildName,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetAll retrieves subscriptions matching the filter, newest purchase first
func (r *SubscriptionRepository) GetAll(ctx context.Context, filter SubscriptionFilter) ([]*models.Subscription, error) {
	var conditions []string
	var args []any

	if filter.ChildID != nil {
		args = append(args, *filter.ChildID)
		conditions = append(conditions, fmt.Sprintf(`s.child_id = $%d`, len(args)))
	}
	if filter.ParentUserID != nil {
		args = append(args, *filter.ParentUserID)
		conditions = append(conditions, fmt.Sprintf(`c.parent_user_id = $%d`, len(args)))
	}

	query := subscriptionSelect
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, ` AND `)
	}
	query += ` ORDER BY s.purchase_date DESC, s.id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing subscriptions: %w", err)
	}
	defer rows.Close()

	var subs []*models.Subscription
	for rows.Next() {
		s, err := scanSubscription(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subs, nil
}

// GetByID retrieves a single subscription
func (r *SubscriptionRepository) GetByID(ctx context.Context, id int64) (*models.Subscription, error) {
	s, err := scanSubscription(r.db.QueryRow(ctx, subscriptionSelect+` WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("error retrieving subscription: %w", err)
	}
	return s, nil
}

// Create inserts a new subscription
func (r *SubscriptionRepository) Create(ctx context.Context, sub *models.Subscription) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO subscriptions (child_id, manager_id, trainings_total, trainings_remaining, purchase_date, expiry_date)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		sub.ChildID, sub.ManagerID, sub.TrainingsTotal, sub.TrainingsRemaining,
		sub.PurchaseDate, sub.ExpiryDate,
	).Scan(&sub.ID)
	if err != nil {
		return fmt.Errorf("error creating subscription: %w", err)
	}
	return nil
}

// Update updates a subscription's pack size, remaining units, and expiry
func (r *SubscriptionRepository) Update(ctx context.Context, sub *models.Subscription) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE subscriptions SET trainings_total = $1, trainings_remaining = $2, expiry_date = $3
		 WHERE id = $4`,
		sub.TrainingsTotal, sub.TrainingsRemaining, sub.ExpiryDate, sub.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating subscription: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubscriptionNotFound
	}
	return nil
}

// Delete removes a subscription
func (r *SubscriptionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subscriptions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting subscription: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubscriptionNotFound
	}
	return nil
}
