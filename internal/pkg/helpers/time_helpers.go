package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format for date-only fields (purchase and expiry
// dates, birth dates, progress dates).
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns the default on error
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDate parses a date-only string in DateLayout
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// Today truncates the given instant to a date in UTC. The ledger compares
// subscription expiry against this.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
