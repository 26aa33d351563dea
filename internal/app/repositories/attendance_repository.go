package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/db"
)

// LedgerTx is the per-transaction view of the attendance ledger. Every method
// runs on the same database transaction, so a batch of status changes and the
// subscription decrements they trigger commit or roll back as one unit.
type LedgerTx interface {
	// AttendanceStatus returns the recorded status for (training, child) and
	// whether a row exists at all.
	AttendanceStatus(ctx context.Context, trainingID, childID int64) (models.AttendanceStatus, bool, error)
	// ActiveSubscriptionForUpdate locks and returns the child's oldest
	// consumable subscription on the given date, or nil when there is none.
	ActiveSubscriptionForUpdate(ctx context.Context, childID int64, onDate time.Time) (*models.Subscription, error)
	// ConsumeSubscription decrements one unit from the subscription.
	ConsumeSubscription(ctx context.Context, subscriptionID int64) error
	// UpsertAttendance writes the status for (training, child), inserting or
	// overwriting the row.
	UpsertAttendance(ctx context.Context, trainingID, childID int64, status models.AttendanceStatus) error
}

// LedgerStore is the attendance ledger's storage boundary
type LedgerStore interface {
	// InTx runs fn inside one database transaction. Any error from fn rolls
	// everything back.
	InTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
	// EnrollIfAbsent creates an 'enrolled' row for (training, child) unless a
	// row already exists; existing rows are never overwritten.
	EnrollIfAbsent(ctx context.Context, trainingID, childID int64) error
	// ListAttendees returns every child of the training's branch with the
	// recorded status, defaulting to 'absent' where no row exists.
	ListAttendees(ctx context.Context, trainingID int64) ([]*models.TrainingAttendee, error)
	// HistoryByParent returns the attendance rows of the parent's children,
	// newest training first.
	HistoryByParent(ctx context.Context, parentUserID int64) ([]*models.AttendanceRecord, error)
}

// AttendanceRepository implements LedgerStore on Postgres
type AttendanceRepository struct {
	db *db.PostgresDB
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(database *db.PostgresDB) *AttendanceRepository {
	return &AttendanceRepository{db: database}
}

// InTx runs fn in a single database transaction
func (r *AttendanceRepository) InTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(ctx, &ledgerTx{tx: tx})
	})
}

// ledgerTx wraps one pgx transaction as a LedgerTx
type ledgerTx struct {
	tx pgx.Tx
}

func (l *ledgerTx) AttendanceStatus(ctx context.Context, trainingID, childID int64) (models.AttendanceStatus, bool, error) {
	var status models.AttendanceStatus
	err := l.tx.QueryRow(ctx,
		`SELECT status FROM training_attendance WHERE training_id = $1 AND child_id = $2`,
		trainingID, childID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("error reading attendance status: %w", err)
	}
	return status, true, nil
}

// ActiveSubscriptionForUpdate picks the oldest active subscription and takes a
// row lock so concurrent batches cannot consume the same unit twice.
func (l *ledgerTx) ActiveSubscriptionForUpdate(ctx context.Context, childID int64, onDate time.Time) (*models.Subscription, error) {
	var s models.Subscription
	err := l.tx.QueryRow(ctx,
		`SELECT id, child_id, manager_id, trainings_total, trainings_remaining, purchase_date, expiry_date
		 FROM subscriptions
		 WHERE child_id = $1
		   AND trainings_remaining > 0
		   AND (expiry_date IS NULL OR expiry_date >= $2)
		 ORDER BY purchase_date ASC, id ASC
		 LIMIT 1
		 FOR UPDATE`,
		childID, onDate,
	).Scan(&s.ID, &s.ChildID, &s.ManagerID, &s.TrainingsTotal, &s.TrainingsRemaining, &s.PurchaseDate, &s.ExpiryDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error locking subscription: %w", err)
	}
	return &s, nil
}

func (l *ledgerTx) ConsumeSubscription(ctx context.Context, subscriptionID int64) error {
	cmdTag, err := l.tx.Exec(ctx,
		`UPDATE subscriptions SET trainings_remaining = trainings_remaining - 1
		 WHERE id = $1 AND trainings_remaining > 0`,
		subscriptionID,
	)
	if err != nil {
		return fmt.Errorf("error consuming subscription unit: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("subscription %d has no units left", subscriptionID)
	}
	return nil
}

func (l *ledgerTx) UpsertAttendance(ctx context.Context, trainingID, childID int64, status models.AttendanceStatus) error {
	_, err := l.tx.Exec(ctx,
		`INSERT INTO training_attendance (training_id, child_id, status)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (training_id, child_id) DO UPDATE SET status = EXCLUDED.status`,
		trainingID, childID, status,
	)
	if err != nil {
		return fmt.Errorf("error writing attendance: %w", err)
	}
	return nil
}

// EnrollIfAbsent inserts an 'enrolled' row only when no row exists yet, so a
// repeated enroll never downgrades a recorded 'present'.
func (r *AttendanceRepository) EnrollIfAbsent(ctx context.Context, trainingID, childID int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO training_attendance (training_id, child_id, status)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (training_id, child_id) DO NOTHING`,
		trainingID, childID, models.StatusEnrolled,
	)
	if err != nil {
		return fmt.Errorf("error enrolling child: %w", err)
	}
	return nil
}

// ListAttendees lists every child assigned to the training's branch, left
// joined against the attendance rows. Children without a row show as 'absent';
// that default is display only and is never written back.
func (r *AttendanceRepository) ListAttendees(ctx context.Context, trainingID int64) ([]*models.TrainingAttendee, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT c.id, c.first_name || ' ' || c.last_name, COALESCE(ta.status, 'absent')
		 FROM children c
		 JOIN child_branch_assignments cba ON c.id = cba.child_id
		 JOIN trainings t ON t.branch_id = cba.branch_id AND t.id = $1
		 LEFT JOIN training_attendance ta ON ta.training_id = t.id AND ta.child_id = c.id
		 ORDER BY c.last_name, c.first_name`,
		trainingID,
	)
	if err != nil {
		return nil, fmt.Errorf("error listing attendees: %w", err)
	}
	defer rows.Close()

	var attendees []*models.TrainingAttendee
	for rows.Next() {
		var a models.TrainingAttendee
		if err := rows.Scan(&a.ChildID, &a.ChildName, &a.Status); err != nil {
			return nil, err
		}
		attendees = append(attendees, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return attendees, nil
}

// HistoryByParent returns the recorded attendance of all the parent's
// children, most recent training first.
func (r *AttendanceRepository) HistoryByParent(ctx context.Context, parentUserID int64) ([]*models.AttendanceRecord, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT ta.training_id, ta.child_id, ta.status, t.title, t.start_time, c.first_name, c.last_name
		 FROM training_attendance ta
		 JOIN trainings t ON ta.training_id = t.id
		 JOIN children c ON ta.child_id = c.id
		 WHERE c.parent_user_id = $1
		 ORDER BY t.start_time DESC`,
		parentUserID,
	)
	if err != nil {
		return nil, fmt.Errorf("error listing attendance history: %w", err)
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		var rec models.AttendanceRecord
		if err := rows.Scan(&rec.TrainingID, &rec.ChildID, &rec.Status, &rec.TrainingTitle,
			&rec.StartTime, &rec.ChildFirstName, &rec.ChildLastName); err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
