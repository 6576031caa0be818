package strutil

import "fmt"

// String forms of boolean flags.
const (
	TrueKey  = "1"
	FalseKey = "0"
)

func IsTrue(s string) bool  { return s == TrueKey }
func IsFalse(s string) bool { return s == FalseKey }
func IsBool(s string) bool  { return IsTrue(s) || IsFalse(s) }

// ParseBool reads a "1"/"0" flag.
func ParseBool(s string) (bool, error) {
	switch s {
	case TrueKey:
		return true, nil
	case FalseKey:
		return false, nil
	default:
		return false, fmt.Errorf("parse %q: %w", s, ErrNotBool)
	}
}

func FormatBool(b bool) string {
	if b {
		return TrueKey
	}
	return FalseKey
}
