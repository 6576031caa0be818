package strutil

import (
	"strings"
	"unicode/utf8"
)

// PadLeft prepends ch until s is n runes long. Strings already n runes or
// longer are returned unchanged.
func PadLeft(s string, ch rune, n int) string {
	missing := n - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	return strings.Repeat(string(ch), missing) + s
}

// PadRight appends ch until s is n runes long.
func PadRight(s string, ch rune, n int) string {
	missing := n - utf8.RuneCountInString(s)
	if missing <= 0 {
		return s
	}
	return s + strings.Repeat(string(ch), missing)
}

func ZeroPadLeft(s string, n int) string  { return PadLeft(s, '0', n) }
func ZeroPadRight(s string, n int) string { return PadRight(s, '0', n) }
