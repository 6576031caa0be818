// Package dateutil compares and formats dates. Patterns follow the
// "yyyy-MM-dd HH:mm:ss" letter vocabulary rather than Go reference layouts.
package dateutil

import (
	"time"

	"k8s.io/utils/clock"
)

// Compare returns -1 when a is before b, 1 when a is after b and 0 otherwise.
func Compare(a, b time.Time) int {
	return a.Compare(b)
}

// CompareStrings parses both values with pattern and compares them.
func CompareStrings(a, b, pattern string) (int, error) {
	ta, err := Parse(a, pattern)
	if err != nil {
		return 0, err
	}
	tb, err := Parse(b, pattern)
	if err != nil {
		return 0, err
	}
	return Compare(ta, tb), nil
}

// IsDiffWithin reports whether a and b are at most |d| apart.
func IsDiffWithin(a, b time.Time, d time.Duration) bool {
	return abs(a.Sub(b)) <= abs(d)
}

func IsStrsDiffWithin(a, b, pattern string, d time.Duration) (bool, error) {
	ta, err := Parse(a, pattern)
	if err != nil {
		return false, err
	}
	tb, err := Parse(b, pattern)
	if err != nil {
		return false, err
	}
	return IsDiffWithin(ta, tb, d), nil
}

// IsStrsDiffWithinDefault is IsStrsDiffWithin with DefaultPattern.
func IsStrsDiffWithinDefault(a, b string, d time.Duration) (bool, error) {
	return IsStrsDiffWithin(a, b, DefaultPattern, d)
}

// IsInRange reports whether t lies in the half-open interval [start, end).
func IsInRange(t, start, end time.Time) bool {
	return Compare(start, t) <= 0 && Compare(end, t) == 1
}

func IsStrInRange(t, start, end, pattern string) (bool, error) {
	tt, err := Parse(t, pattern)
	if err != nil {
		return false, err
	}
	ts, err := Parse(start, pattern)
	if err != nil {
		return false, err
	}
	te, err := Parse(end, pattern)
	if err != nil {
		return false, err
	}
	return IsInRange(tt, ts, te), nil
}

// IsSameDay reports whether a and b fall on the same local calendar day.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// Checker answers questions relative to the current time of its clock.
type Checker struct {
	clock clock.PassiveClock
}

// NewChecker returns a Checker on clk, or on the wall clock when clk is nil.
func NewChecker(clk clock.PassiveClock) *Checker {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Checker{clock: clk}
}

// IsNowInRange reports whether now lies in [start, end).
func (c *Checker) IsNowInRange(start, end time.Time) bool {
	return IsInRange(c.clock.Now(), start, end)
}

// IsNowAfterWithin reports whether now is strictly after t and less than d
// past it.
func (c *Checker) IsNowAfterWithin(t time.Time, d time.Duration) bool {
	diff := c.clock.Since(t)
	return diff > 0 && diff < d
}

var wallChecker = NewChecker(nil)

func IsNowInRange(start, end time.Time) bool {
	return wallChecker.IsNowInRange(start, end)
}

func IsNowAfterWithin(t time.Time, d time.Duration) bool {
	return wallChecker.IsNowAfterWithin(t, d)
}

func abs(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
