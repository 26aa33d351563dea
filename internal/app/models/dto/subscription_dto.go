package dto

// CreateSubscriptionRequest defines the payload for selling a training pack.
// New packs always start with remaining == total. PurchaseDate defaults to
// today when omitted.
type CreateSubscriptionRequest struct {
	ChildID        int64   `json:"childId" binding:"required"`
	TrainingsTotal int     `json:"trainingsTotal" binding:"required,min=1" example:"10"`
	PurchaseDate   *string `json:"purchaseDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
	ExpiryDate     *string `json:"expiryDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateSubscriptionRequest defines the payload for adjusting a pack. The
// remaining count is clamped to [0, total] on write.
type UpdateSubscriptionRequest struct {
	TrainingsTotal     int     `json:"trainingsTotal" binding:"required,min=1"`
	TrainingsRemaining int     `json:"trainingsRemaining" binding:"min=0"`
	ExpiryDate         *string `json:"expiryDate,omitempty" binding:"omitempty,datetime=2006-01-02"`
}
