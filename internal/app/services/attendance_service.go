package services

import (
	"context"
	"time"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/repositories"
	"github.com/arsenal-school/crm-backend/internal/pkg/apperrors"
	"github.com/arsenal-school/crm-backend/internal/pkg/helpers"
	"github.com/arsenal-school/crm-backend/internal/pkg/logger"
)

// TrainingFinder checks training existence for the ledger
type TrainingFinder interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ChildFinder loads children for ownership checks
type ChildFinder interface {
	GetByID(ctx context.Context, id int64) (*models.Child, error)
}

// AttendanceService is the attendance ledger. Marking a batch of statuses for
// a training and consuming subscription units for present-transitions happen
// in one transaction; any failure rolls the whole batch back.
type AttendanceService struct {
	store     repositories.LedgerStore
	trainings TrainingFinder
	children  ChildFinder
	now       func() time.Time
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(store repositories.LedgerStore, trainings TrainingFinder, children ChildFinder) *AttendanceService {
	return &AttendanceService{
		store:     store,
		trainings: trainings,
		children:  children,
		now:       time.Now,
	}
}

// MarkBatch applies a batch of (child, status) pairs to one training.
//
// A transition into 'present' from any other state (or from no row) consumes
// one unit from the child's oldest active subscription. A child without an
// active subscription aborts the batch with a NoActiveSubscriptionError and
// nothing is written. Transitions away from 'present' never refund units.
func (s *AttendanceService) MarkBatch(ctx context.Context, identity models.Identity, trainingID int64, entries []dto.AttendanceEntry) error {
	if !identity.IsStaff() {
		return apperrors.ErrPermissionDenied
	}

	for _, entry := range entries {
		if !models.AttendanceStatus(entry.Status).Valid() {
			return apperrors.NewValidationError("unknown attendance status: " + entry.Status)
		}
	}

	exists, err := s.trainings.Exists(ctx, trainingID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrTrainingNotFound
	}

	today := helpers.Today(s.now())

	err = s.store.InTx(ctx, func(ctx context.Context, tx repositories.LedgerTx) error {
		for _, entry := range entries {
			newStatus := models.AttendanceStatus(entry.Status)

			oldStatus, hadRow, err := tx.AttendanceStatus(ctx, trainingID, entry.ChildID)
			if err != nil {
				return err
			}

			// Only the transition into 'present' costs a unit. Re-marking an
			// already present child is free.
			if newStatus == models.StatusPresent && (!hadRow || oldStatus != models.StatusPresent) {
				sub, err := tx.ActiveSubscriptionForUpdate(ctx, entry.ChildID, today)
				if err != nil {
					return err
				}
				if sub == nil {
					return apperrors.NewNoActiveSubscriptionError(entry.ChildID)
				}
				if err := tx.ConsumeSubscription(ctx, sub.ID); err != nil {
					return err
				}
			}

			if err := tx.UpsertAttendance(ctx, trainingID, entry.ChildID, newStatus); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().
		Int64("trainingId", trainingID).
		Int("entries", len(entries)).
		Int64("markedBy", identity.UserID).
		Msg("Attendance batch applied")

	return nil
}

// Enroll records a parent's child as 'enrolled' for a training. Parents can
// only enroll their own children. Enrolling is idempotent and never
// overwrites an existing status.
func (s *AttendanceService) Enroll(ctx context.Context, identity models.Identity, trainingID, childID int64) error {
	if identity.Role != models.RoleParent {
		return apperrors.ErrPermissionDenied
	}

	exists, err := s.trainings.Exists(ctx, trainingID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrTrainingNotFound
	}

	child, err := s.children.GetByID(ctx, childID)
	if err != nil {
		return err
	}
	if child.ParentUserID == nil || *child.ParentUserID != identity.UserID {
		return apperrors.ErrChildNotFound
	}

	return s.store.EnrollIfAbsent(ctx, trainingID, childID)
}

// ListAttendees returns the attendee sheet of a training: every child of the
// training's branch with the recorded status, or 'absent' where nothing was
// recorded yet.
func (s *AttendanceService) ListAttendees(ctx context.Context, trainingID int64) ([]*models.TrainingAttendee, error) {
	exists, err := s.trainings.Exists(ctx, trainingID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrTrainingNotFound
	}

	return s.store.ListAttendees(ctx, trainingID)
}

// History returns the attendance of a parent's children, newest training
// first. Managers may read any parent's history; parents only their own.
func (s *AttendanceService) History(ctx context.Context, identity models.Identity, parentUserID int64) ([]*models.AttendanceRecord, error) {
	if identity.Role != models.RoleManager && identity.UserID != parentUserID {
		return nil, apperrors.ErrPermissionDenied
	}
	return s.store.HistoryByParent(ctx, parentUserID)
}
