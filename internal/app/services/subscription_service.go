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

// SubscriptionStore is the subscription service's storage boundary
type SubscriptionStore interface {
	GetAll(ctx context.Context, filter repositories.SubscriptionFilter) ([]*models.Subscription, error)
	GetByID(ctx context.Context, id int64) (*models.Subscription, error)
	Create(ctx context.Context, sub *models.Subscription) error
	Update(ctx context.Context, sub *models.Subscription) error
	Delete(ctx context.Context, id int64) error
}

// SubscriptionService manages prepaid training packs. Only managers write;
// unit consumption goes through the attendance ledger, never through here.
type SubscriptionService struct {
	store    SubscriptionStore
	children ChildFinder
	now      func() time.Time
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(store SubscriptionStore, children ChildFinder) *SubscriptionService {
	return &SubscriptionService{
		store:    store,
		children: children,
		now:      time.Now,
	}
}

// List returns subscriptions visible to the caller: managers see all,
// parents only their children's packs.
func (s *SubscriptionService) List(ctx context.Context, identity models.Identity, childID *int64) ([]*models.Subscription, error) {
	filter := repositories.SubscriptionFilter{ChildID: childID}

	switch identity.Role {
	case models.RoleManager, models.RoleTrainer:
	case models.RoleParent:
		filter.ParentUserID = &identity.UserID
	default:
		return nil, apperrors.ErrPermissionDenied
	}

	return s.store.GetAll(ctx, filter)
}

// Create sells a new pack to a child. The pack starts full: remaining is
// always total at creation, regardless of the payload.
func (s *SubscriptionService) Create(ctx context.Context, identity models.Identity, req dto.CreateSubscriptionRequest) (*models.Subscription, error) {
	if identity.Role != models.RoleManager {
		return nil, apperrors.ErrPermissionDenied
	}

	if _, err := s.children.GetByID(ctx, req.ChildID); err != nil {
		return nil, err
	}

	purchaseDate := helpers.Today(s.now())
	if req.PurchaseDate != nil {
		parsed, err := helpers.ParseDate(*req.PurchaseDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid purchase date")
		}
		purchaseDate = parsed
	}

	var expiryDate *time.Time
	if req.ExpiryDate != nil {
		parsed, err := helpers.ParseDate(*req.ExpiryDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid expiry date")
		}
		expiryDate = &parsed
	}

	sub := &models.Subscription{
		ChildID:            req.ChildID,
		ManagerID:          identity.UserID,
		TrainingsTotal:     req.TrainingsTotal,
		TrainingsRemaining: req.TrainingsTotal,
		PurchaseDate:       purchaseDate,
		ExpiryDate:         expiryDate,
	}

	if err := s.store.Create(ctx, sub); err != nil {
		return nil, err
	}

	logger.Info().
		Int64("subscriptionId", sub.ID).
		Int64("childId", sub.ChildID).
		Int("trainingsTotal", sub.TrainingsTotal).
		Msg("Subscription created")

	return sub, nil
}

// Update adjusts a pack's size, remaining units, and expiry. The remaining
// count is clamped into [0, total] so manual edits can never break the
// ledger's invariant.
func (s *SubscriptionService) Update(ctx context.Context, identity models.Identity, id int64, req dto.UpdateSubscriptionRequest) (*models.Subscription, error) {
	if identity.Role != models.RoleManager {
		return nil, apperrors.ErrPermissionDenied
	}

	sub, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sub.TrainingsTotal = req.TrainingsTotal
	sub.TrainingsRemaining = clamp(req.TrainingsRemaining, 0, req.TrainingsTotal)

	sub.ExpiryDate = nil
	if req.ExpiryDate != nil {
		parsed, err := helpers.ParseDate(*req.ExpiryDate)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid expiry date")
		}
		sub.ExpiryDate = &parsed
	}

	if err := s.store.Update(ctx, sub); err != nil {
		return nil, err
	}

	return sub, nil
}

// Delete removes a pack
func (s *SubscriptionService) Delete(ctx context.Context, identity models.Identity, id int64) error {
	if identity.Role != models.RoleManager {
		return apperrors.ErrPermissionDenied
	}
	return s.store.Delete(ctx, id)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
