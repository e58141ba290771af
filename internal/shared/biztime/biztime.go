// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. The business timezone is only used for
// calculating date boundaries (the calendar day a check-in belongs to, the
// day a subscription starts or expires).
//
// Design principles:
// - All time storage is in UTC
// - Day boundaries are computed in the business timezone first, then converted back to UTC
// - Implicit Local timezone is prohibited
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Africa/Casablanca"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to Africa/Casablanca.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, auto-initializing with the
// default timezone if Init was never called.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DateOf returns the calendar date of t in the business timezone, normalized
// to midnight UTC. Two instants on the same business day map to the same value,
// so dates compare with Equal/Before/After.
func DateOf(t time.Time) time.Time {
	bizTime := t.In(Location())
	return time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current business date normalized to midnight UTC.
func Today() time.Time {
	return DateOf(NowUTC())
}

// Date builds a normalized date value from year/month/day.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// StartOfDayUTC returns the start of t's business day, converted to UTC.
// Used for database range queries over a single business day.
func StartOfDayUTC(t time.Time) time.Time {
	bizTime := t.In(Location())
	startOfDay := time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 0, 0, 0, 0, Location())
	return startOfDay.UTC()
}

// EndOfDayUTC returns the exclusive end of t's business day, converted to UTC.
func EndOfDayUTC(t time.Time) time.Time {
	return StartOfDayUTC(t).Add(24 * time.Hour)
}

// SameDay reports whether a and b fall on the same business day.
func SameDay(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
