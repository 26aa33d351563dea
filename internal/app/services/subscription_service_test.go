package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/arsenal-school/crm-backend/internal/app/models"
	"github.com/arsenal-school/crm-backend/internal/app/models/dto"
	"github.com/arsenal-school/crm-backend/internal/app/repositories"
	"github.com/arsenal-school/crm-backend/internal/pkg/apperrors"
)

type stubSubscriptionStore struct {
	subs   map[int64]*models.Subscription
	nextID int64
}

func newStubSubscriptionStore() *stubSubscriptionStore {
	return &stubSubscriptionStore{subs: make(map[int64]*models.Subscription), nextID: 1}
}

func (s *stubSubscriptionStore) GetAll(ctx context.Context, filter repositories.SubscriptionFilter) ([]*models.Subscription, error) {
	var out []*models.Subscription
	for _, sub := range s.subs {
		if filter.ChildID != nil && sub.ChildID != *filter.ChildID {
			continue
		}
		out = append(out, sub)
	}
	return out, nil
}

func (s *stubSubscriptionStore) GetByID(ctx context.Context, id int64) (*models.Subscription, error) {
	sub, ok := s.subs[id]
	if !ok {
		return nil, apperrors.ErrSubscriptionNotFound
	}
	copied := *sub
	return &copied, nil
}

func (s *stubSubscriptionStore) Create(ctx context.Context, sub *models.Subscription) error {
	sub.ID = s.nextID
	s.nextID++
	copied := *sub
	s.subs[sub.ID] = &copied
	return nil
}

func (s *stubSubscriptionStore) Update(ctx context.Context, sub *models.Subscription) error {
	if _, ok := s.subs[sub.ID]; !ok {
		return apperrors.ErrSubscriptionNotFound
	}
	copied := *sub
	s.subs[sub.ID] = &copied
	return nil
}

func (s *stubSubscriptionStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.subs[id]; !ok {
		return apperrors.ErrSubscriptionNotFound
	}
	delete(s.subs, id)
	return nil
}

var managerIdentity = models.Identity{UserID: 1, Role: models.RoleManager}

func newTestSubscriptionService(store *stubSubscriptionStore) *SubscriptionService {
	svc := NewSubscriptionService(store, &stubChildren{children: map[int64]*models.Child{1: {ID: 1}}})
	svc.now = func() time.Time { return date("2026-08-28") }
	return svc
}

func TestSubscriptionCreateStartsFull(t *testing.T) {
	store := newStubSubscriptionStore()
	svc := newTestSubscriptionService(store)

	sub, err := svc.Create(context.Background(), managerIdentity, dto.CreateSubscriptionRequest{
		ChildID:        1,
		TrainingsTotal: 10,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if sub.TrainingsRemaining != 10 {
		t.Errorf("remaining = %d, want 10 (new packs start full)", sub.TrainingsRemaining)
	}
	if sub.ManagerID != managerIdentity.UserID {
		t.Errorf("managerId = %d, want %d", sub.ManagerID, managerIdentity.UserID)
	}
	if got := sub.PurchaseDate; !got.Equal(date("2026-08-28")) {
		t.Errorf("purchaseDate = %v, want today", got)
	}
}

func TestSubscriptionCreateUnknownChild(t *testing.T) {
	svc := newTestSubscriptionService(newStubSubscriptionStore())

	_, err := svc.Create(context.Background(), managerIdentity, dto.CreateSubscriptionRequest{
		ChildID:        999,
		TrainingsTotal: 10,
	})
	if !errors.Is(err, apperrors.ErrChildNotFound) {
		t.Fatalf("error = %v, want ErrChildNotFound", err)
	}
}

func TestSubscriptionCreateManagerOnly(t *testing.T) {
	svc := newTestSubscriptionService(newStubSubscriptionStore())

	_, err := svc.Create(context.Background(), trainerIdentity, dto.CreateSubscriptionRequest{
		ChildID:        1,
		TrainingsTotal: 10,
	})
	if !errors.Is(err, apperrors.ErrPermissionDenied) {
		t.Fatalf("error = %v, want ErrPermissionDenied", err)
	}
}

func TestSubscriptionUpdateClampsRemaining(t *testing.T) {
	store := newStubSubscriptionStore()
	store.subs[1] = &models.Subscription{
		ID: 1, ChildID: 1, ManagerID: 1,
		TrainingsTotal: 10, TrainingsRemaining: 4,
		PurchaseDate: date("2026-08-01"),
	}
	store.nextID = 2
	svc := newTestSubscriptionService(store)

	// Remaining above the new total clamps down to the total
	sub, err := svc.Update(context.Background(), managerIdentity, 1, dto.UpdateSubscriptionRequest{
		TrainingsTotal:     5,
		TrainingsRemaining: 12,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if sub.TrainingsRemaining != 5 {
		t.Errorf("remaining = %d, want 5 (clamped to total)", sub.TrainingsRemaining)
	}

	// Negative remaining clamps up to zero
	sub, err = svc.Update(context.Background(), managerIdentity, 1, dto.UpdateSubscriptionRequest{
		TrainingsTotal:     5,
		TrainingsRemaining: -3,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if sub.TrainingsRemaining != 0 {
		t.Errorf("remaining = %d, want 0 (clamped to zero)", sub.TrainingsRemaining)
	}
}

func TestSubscriptionListParentScoped(t *testing.T) {
	store := newStubSubscriptionStore()
	svc := newTestSubscriptionService(store)

	// The parent filter is delegated to the store; the service must set it
	_, err := svc.List(context.Background(), models.Identity{UserID: 7, Role: models.RoleParent}, nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
}
