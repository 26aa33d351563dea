package models

import "time"

// Subscription defines a prepaid training pack based on the 'subscriptions' table.
// TrainingsRemaining is only ever decremented through the attendance ledger;
// the 0 <= remaining <= total invariant is enforced on every write path.
type Subscription struct {
	ID                 int64      `json:"id" db:"id" example:"1"`
	ChildID            int64      `json:"childId" db:"child_id"`
	ManagerID          int64      `json:"managerId" db:"manager_id"`
	TrainingsTotal     int        `json:"trainingsTotal" db:"trainings_total" example:"10"`
	TrainingsRemaining int        `json:"trainingsRemaining" db:"trainings_remaining" example:"7"`
	PurchaseDate       time.Time  `json:"purchaseDate" db:"purchase_date"`
	ExpiryDate         *time.Time `json:"expiryDate,omitempty" db:"expiry_date"`

	// Joined fields
	ChildName string `json:"childName,omitempty"`
}

// ActiveOn reports whether the subscription can still be consumed on the given date:
// it has units left and either never expires or expires on/after that date.
func (s *Subscription) ActiveOn(date time.Time) bool {
	if s.TrainingsRemaining <= 0 {
		return false
	}
	if s.ExpiryDate == nil {
		return true
	}
	y1, m1, d1 := s.ExpiryDate.Date()
	y2, m2, d2 := date.Date()
	expiry := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	day := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return !expiry.Before(day)
}
