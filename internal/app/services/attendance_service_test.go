package services

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/repositories"
	"github.com/arsenal-school/crm-backend/internal/pkg/apperrors"
)

type attendanceKey struct {
	trainingID int64
	childID    int64
}

// fakeLedger is an in-memory LedgerStore. InTx stages all mutations on copies
// and only commits them when the callback succeeds, mirroring the rollback
// behavior of a real database transaction.
type fakeLedger struct {
	attendance    map[attendanceKey]models.AttendanceStatus
	subscriptions []*models.Subscription
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{attendance: make(map[attendanceKey]models.AttendanceStatus)}
}

func (f *fakeLedger) InTx(ctx context.Context, fn func(ctx context.Context, tx repositories.LedgerTx) error) error {
	staged := &fakeLedgerTx{
		attendance:    make(map[attendanceKey]models.AttendanceStatus, len(f.attendance)),
		subscriptions: make([]*models.Subscription, 0, len(f.subscriptions)),
	}
	for k, v := range f.attendance {
		staged.attendance[k] = v
	}
	for _, s := range f.subscriptions {
		copied := *s
		staged.subscriptions = append(staged.subscriptions, &copied)
	}

	if err := fn(ctx, staged); err != nil {
		return err
	}

	f.attendance = staged.attendance
	f.subscriptions = staged.subscriptions
	return nil
}

func (f *fakeLedger) EnrollIfAbsent(ctx context.Context, trainingID, childID int64) error {
	key := attendanceKey{trainingID, childID}
	if _, ok := f.attendance[key]; !ok {
		f.attendance[key] = models.StatusEnrolled
	}
	return nil
}

func (f *fakeLedger) ListAttendees(ctx context.Context, trainingID int64) ([]*models.TrainingAttendee, error) {
	return nil, nil
}

func (f *fakeLedger) HistoryByParent(ctx context.Context, parentUserID int64) ([]*models.AttendanceRecord, error) {
	return nil, nil
}

type fakeLedgerTx struct {
	attendance    map[attendanceKey]models.AttendanceStatus
	subscriptions []*models.Subscription
}

func (t *fakeLedgerTx) AttendanceStatus(ctx context.Context, trainingID, childID int64) (models.AttendanceStatus, bool, error) {
	status, ok := t.attendance[attendanceKey{trainingID, childID}]
	return status, ok, nil
}

func (t *fakeLedgerTx) ActiveSubscriptionForUpdate(ctx context.Context, childID int64, onDate time.Time) (*models.Subscription, error) {
	var candidates []*models.Subscription
	for _, s := range t.subscriptions {
		if s.ChildID == childID && s.ActiveOn(onDate) {
			candidates = append(candidates, s)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].PurchaseDate.Equal(candidates[j].PurchaseDate) {
			return candidates[i].ID < candidates[j].ID
		}
		return candidates[i].PurchaseDate.Before(candidates[j].PurchaseDate)
	})
	return candidates[0], nil
}

func (t *fakeLedgerTx) ConsumeSubscription(ctx context.Context, subscriptionID int64) error {
	for _, s := range t.subscriptions {
		if s.ID == subscriptionID {
			if s.TrainingsRemaining <= 0 {
				return errors.New("no units left")
			}
			s.TrainingsRemaining--
			return nil
		}
	}
	return errors.New("subscription not found")
}

func (t *fakeLedgerTx) UpsertAttendance(ctx context.Context, trainingID, childID int64, status models.AttendanceStatus) error {
	t.attendance[attendanceKey{trainingID, childID}] = status
	return nil
}

type stubTrainings struct {
	existing map[int64]bool
}

func (s *stubTrainings) Exists(ctx context.Context, id int64) (bool, error) {
	return s.existing[id], nil
}

type stubChildren struct {
	children map[int64]*models.Child
}

func (s *stubChildren) GetByID(ctx context.Context, id int64) (*models.Child, error) {
	child, ok := s.children[id]
	if !ok {
		return nil, apperrors.ErrChildNotFound
	}
	return child, nil
}

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func newTestAttendanceService(ledger *fakeLedger, trainingIDs ...int64) *AttendanceService {
	existing := make(map[int64]bool)
	for _, id := range trainingIDs {
		existing[id] = true
	}
	parentID := parentIdentity.UserID
	svc := NewAttendanceService(ledger, &stubTrainings{existing: existing}, &stubChildren{children: map[int64]*models.Child{
		1: {ID: 1, ParentUserID: &parentID},
		2: {ID: 2},
	}})
	svc.now = func() time.Time { return date("2026-08-28") }
	return svc
}

var (
	trainerIdentity = models.Identity{UserID: 10, Role: models.RoleTrainer}
	parentIdentity  = models.Identity{UserID: 20, Role: models.RoleParent}
)

func TestMarkBatchConsumesUnitOnPresentTransition(t *testing.T) {
	ledger := newFakeLedger()
	ledger.subscriptions = []*models.Subscription{
		{ID: 1, ChildID: 1, TrainingsTotal: 8, TrainingsRemaining: 3, PurchaseDate: date("2026-08-01")},
	}
	svc := newTestAttendanceService(ledger, 100)

	err := svc.MarkBatch(context.Background(), trainerIdentity, 100, []dto.AttendanceEntry{
		{ChildID: 1, Status: "present"},
	})
	if err != nil {
		t.Fatalf("MarkBatch failed: %v", err)
	}

	if got := ledger.attendance[attendanceKey{100, 1}]; got != models.StatusPresent {
		t.Errorf("status = %q, want present", got)
	}
	if got := ledger.subscriptions[0].TrainingsRemaining; got != 2 {
		t.Errorf("remaining = %d, want 2", got)
	}
}

func TestMarkBatchRollsBackWholeBatchOnMissingSubscription(t *testing.T) {
	ledger := newFakeLedger()
	ledger.subscriptions = []*models.Subscription{
		{ID: 1, ChildID: 1, TrainingsTotal: 8, TrainingsRemaining: 3, PurchaseDate: date("2026-08-01")},
	}
	svc := newTestAttendanceService(ledger, 100)

	// Child 2 has no subscription; child 1's successful entry must not survive
	err := svc.MarkBatch(context.Background(), trainerIdentity, 100, []dto.AttendanceEntry{
		{ChildID: 1, Status: "present"},
		{ChildID: 2, Status: "present"},
	})

	var noSub *apperrors.NoActiveSubscriptionError
	if !errors.As(err, &noSub) {
		t.Fatalf("error = %v, want NoActiveSubscriptionError", err)
	}
	if noSub.ChildID != 2 {
		t.Errorf("offending child = %d, want 2", noSub.ChildID)
	}

	if _, ok := ledger.attendance[attendanceKey{100, 1}]; ok {
		t.Error("child 1's status was written despite the rollback")
	}
	if got := ledger.subscriptions[0].TrainingsRemaining; got != 3 {
		t.Errorf("remaining = %d, want 3 after rollback", got)
	}
}

func TestMarkBatchRemarkingPresentIsFree(t *testing.T) {
	ledger := newFakeLedger()
	ledger.attendance[attendanceKey{100, 1}] = models.StatusPresent
	ledger.subscriptions = []*models.Subscription{
		{ID: 1, ChildID: 1, TrainingsTotal: 8, TrainingsRemaining: 3, PurchaseDate: date("2026-08-01")},
	}
	svc := newTestAttendanceService(ledger, 100)

	err := svc.MarkBatch(context.Background(), trainerIdentity, 100, []dto.AttendanceEntry{
		{ChildID: 1, Status: "present"},
	})
	if err != nil {
		t.Fatalf("MarkBatch failed: %v", err)
	}

	if got := ledger.subscriptions[0].TrainingsRemaining; got != 3 {
		t.Errorf("remaining = %d, want 3 (re-marking present must not consume)", got)
	}
}

func TestMarkBatchLeavingPresentNeverRefunds(t *testing.T) {
	ledger := newFakeLedger()
	ledger.attendance[attendanceKey{100, 1}] = models.StatusPresent
	ledger.subscriptions = []*models.Subscription{
		{ID: 1, ChildID: 1, TrainingsTotal: 8, TrainingsRemaining: 3, PurchaseDate: date("2026-08-01")},
	}
	svc := newTestAttendanceService(ledger, 100)

	err := svc.MarkBatch(context.Background(), trainerIdentity, 100, []dto.AttendanceEntry{
		{ChildID: 1, Status: "absent"},
	})
	if err != nil {
		t.Fatalf("MarkBatch failed: %v", err)
	}

	if got := ledger.attendance[attendanceKey{100, 1}]; got != models.StatusAbsent {
		t.Errorf("status = %q, want absent", got)
	}
	if got := ledger.subscriptions[0].TrainingsRemaining; got != 3 {
		t.Errorf("remaining = %d, want 3 (no refund)", got)
	}
}

func TestMarkBatchConsumesOldestSubscriptionFirst(t *testing.T) {
	ledger := newFakeLedger()
	ledger.subscriptions = []*models.Subscription{
		{ID: 2, ChildID: 1, TrainingsTotal: 8, TrainingsRemaining: 8, PurchaseDate: date("2026-08-20")},
		{ID: 1, ChildID: 1, TrainingsTotal: 8, TrainingsRemaining: 1, PurchaseDate: date("2026-07-01")},
	}
	svc := newTestAttendanceService(ledger, 100)

	err := svc.MarkBatch(context.Background(), trainerIdentity, 100, []dto.AttendanceEntry{
		{ChildID: 1, Status: "present"},
	})
	if err != nil {
		t.Fatalf("MarkBatch failed: %v", err)
	}

	for _, s := range ledger.subscriptions {
		switch s.ID {
		case 1:
			if s.TrainingsRemaining != 0 {
				t.Errorf("oldest pack remaining = %d, want 0", s.TrainingsRemaining)
			}
		case 2:
			if s.TrainingsRemaining != 8 {
				t.Errorf("newer pack remaining = %d, want 8 (untouched)", s.TrainingsRemaining)
			}
		}
	}
}

func TestMarkBatchIgnoresExpiredSubscriptions(t *testing.T) {
	expired := date("2026-08-01")
	ledger := newFakeLedger()
	ledger.subscriptions = []*models.Subscription{
		{ID: 1, ChildID: 1, TrainingsTotal: 8, TrainingsRemaining: 5, PurchaseDate: date("2026-06-01"), ExpiryDate: &expired},
	}
	svc := newTestAttendanceService(ledger, 100)

	err := svc.MarkBatch(context.Background(), trainerIdentity, 100, []dto.AttendanceEntry{
		{ChildID: 1, Status: "present"},
	})

	if !errors.Is(err, apperrors.ErrNoActiveSubscription) {
		t.Fatalf("error = %v, want ErrNoActiveSubscription", err)
	}
	if got := ledger.subscriptions[0].TrainingsRemaining; got != 5 {
		t.Errorf("expired pack remaining = %d, want 5", got)
	}
}

func TestMarkBatchAcceptsSubscriptionExpiringToday(t *testing.T) {
	today := date("2026-08-28")
	ledger := newFakeLedger()
	ledger.subscriptions = []*models.Subscription{
		{ID: 1, ChildID: 1, TrainingsTotal: 8, TrainingsRemaining: 5, PurchaseDate: date("2026-06-01"), ExpiryDate: &today},
	}
	svc := newTestAttendanceService(ledger, 100)

	err := svc.MarkBatch(context.Background(), trainerIdentity, 100, []dto.AttendanceEntry{
		{ChildID: 1, Status: "present"},
	})
	if err != nil {
		t.Fatalf("MarkBatch failed: %v", err)
	}
	if got := ledger.subscriptions[0].TrainingsRemaining; got != 4 {
		t.Errorf("remaining = %d, want 4", got)
	}
}

func TestMarkBatchNonConsumingStatusesNeedNoSubscription(t *testing.T) {
	ledger := newFakeLedger()
	svc := newTestAttendanceService(ledger, 100)

	err := svc.MarkBatch(context.Background(), trainerIdentity, 100, []dto.AttendanceEntry{
		{ChildID: 1, Status: "absent"},
		{ChildID: 2, Status: "excused"},
	})
	if err != nil {
		t.Fatalf("MarkBatch failed: %v", err)
	}

	if got := ledger.attendance[attendanceKey{100, 1}]; got != models.StatusAbsent {
		t.Errorf("child 1 status = %q, want absent", got)
	}
	if got := ledger.attendance[attendanceKey{100, 2}]; got != models.StatusExcused {
		t.Errorf("child 2 status = %q, want excused", got)
	}
}

func TestMarkBatchUnknownTraining(t *testing.T) {
	svc := newTestAttendanceService(newFakeLedger(), 100)

	err := svc.MarkBatch(context.Background(), trainerIdentity, 999, []dto.AttendanceEntry{
		{ChildID: 1, Status: "absent"},
	})
	if !errors.Is(err, apperrors.ErrTrainingNotFound) {
		t.Fatalf("error = %v, want ErrTrainingNotFound", err)
	}
}

func TestMarkBatchRejectsUnknownStatus(t *testing.T) {
	svc := newTestAttendanceService(newFakeLedger(), 100)

	err := svc.MarkBatch(context.Background(), trainerIdentity, 100, []dto.AttendanceEntry{
		{ChildID: 1, Status: "late"},
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("error = %v, want ErrValidationFailed", err)
	}
}

func TestMarkBatchForbiddenForParents(t *testing.T) {
	svc := newTestAttendanceService(newFakeLedger(), 100)

	err := svc.MarkBatch(context.Background(), models.Identity{UserID: 20, Role: models.RoleParent}, 100, []dto.AttendanceEntry{
		{ChildID: 1, Status: "present"},
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("error = %v, want ErrPermissionDenied", err)
	}
}

func TestEnrollIsIdempotentAndNeverOverwrites(t *testing.T) {
	ledger := newFakeLedger()
	svc := newTestAttendanceService(ledger, 100)

	if err := svc.Enroll(context.Background(), parentIdentity, 100, 1); err != nil {
		t.Fatalf("Enroll failed: %v", err)
	}
	if got := ledger.attendance[attendanceKey{100, 1}]; got != models.StatusEnrolled {
		t.Fatalf("status = %q, want enrolled", got)
	}

	// A recorded 'present' must survive a repeated enroll
	ledger.attendance[attendanceKey{100, 1}] = models.StatusPresent
	if err := svc.Enroll(context.Background(), parentIdentity, 100, 1); err != nil {
		t.Fatalf("second Enroll failed: %v", err)
	}
	if got := ledger.attendance[attendanceKey{100, 1}]; got != models.StatusPresent {
		t.Errorf("status = %q, want present (enroll must not downgrade)", got)
	}
}

func TestEnrollIsParentOnly(t *testing.T) {
	svc := newTestAttendanceService(newFakeLedger(), 100)

	err := svc.Enroll(context.Background(), trainerIdentity, 100, 1)
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("error = %v, want ErrPermissionDenied", err)
	}
}

func TestEnrollRejectsForeignChild(t *testing.T) {
	svc := newTestAttendanceService(newFakeLedger(), 100)

	// Child 2 belongs to nobody; answer as not-found rather than forbidden
	err := svc.Enroll(context.Background(), parentIdentity, 100, 2)
	if !errors.Is(err, apperrors.ErrChildNotFound) {
		t.Fatalf("error = %v, want ErrChildNotFound", err)
	}
}

func TestEnrollUnknownChild(t *testing.T) {
	svc := newTestAttendanceService(newFakeLedger(), 100)

	err := svc.Enroll(context.Background(), parentIdentity, 100, 999)
	if !errors.Is(err, apperrors.ErrChildNotFound) {
		t.Fatalf("error = %v, want ErrChildNotFound", err)
	}
}

func TestHistoryAccess(t *testing.T) {
	svc := newTestAttendanceService(newFakeLedger(), 100)

	if _, err := svc.History(context.Background(), parentIdentity, parentIdentity.UserID); err != nil {
		t.Fatalf("History failed for own parent: %v", err)
	}
	if _, err := svc.History(context.Background(), managerIdentity, parentIdentity.UserID); err != nil {
		t.Fatalf("History failed for manager: %v", err)
	}
	if _, err := svc.History(context.Background(), parentIdentity, 999); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("error = %v, want ErrPermissionDenied for another parent's history", err)
	}
	if _, err := svc.History(context.Background(), trainerIdentity, parentIdentity.UserID); !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("error = %v, want ErrPermissionDenied for trainer", err)
	}
}
