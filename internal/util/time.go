package util

import (
	"time"
)

// SecondsPerDay converts day counts into the second-based durations vaults store
const SecondsPerDay = 24 * 60 * 60

// DaysToSeconds converts a term in days to seconds. Zero means no fixed term.
func DaysToSeconds(days uint64) uint64 {
	return days * SecondsPerDay
}

// MaturityAfter returns the UTC maturity date days after now, truncated to the
// second. It returns nil when days is not positive, meaning the product has no
// fixed term.
func MaturityAfter(now time.Time, days int) *time.Time {
	if days <= 0 {
		return nil
	}
	m := now.UTC().AddDate(0, 0, days).Truncate(time.Second)
	return &m
}
