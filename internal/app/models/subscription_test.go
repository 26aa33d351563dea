package models

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSubscriptionActiveOn(t *testing.T) {
	expiry := day(2026, 8, 31)

	tests := []struct {
		name string
		sub  Subscription
		on   time.Time
		want bool
	}{
		{"units left, no expiry", Subscription{TrainingsRemaining: 1}, day(2026, 8, 28), true},
		{"no units left", Subscription{TrainingsRemaining: 0}, day(2026, 8, 28), false},
		{"before expiry", Subscription{TrainingsRemaining: 1, ExpiryDate: &expiry}, day(2026, 8, 28), true},
		{"on expiry day", Subscription{TrainingsRemaining: 1, ExpiryDate: &expiry}, day(2026, 8, 31), true},
		{"past expiry", Subscription{TrainingsRemaining: 1, ExpiryDate: &expiry}, day(2026, 9, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sub.ActiveOn(tt.on); got != tt.want {
				t.Errorf("ActiveOn = %v, want %v", got, tt.want)
			}
		})
	}
}
