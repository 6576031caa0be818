// Package strutil holds small string helpers. Positions and lengths count
// runes, not bytes.
package strutil

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Sub extracts the runes between two 1-based positions. start is inclusive
// and a positive end is exclusive, so Sub("hello", 1, 3) is "he". Negative
// positions count from the end: start -1 is the last rune and end -1 runs
// through the last rune. Blank input yields "".
func Sub(s string, start, end int) (string, error) {
	if IsBlank(s) {
		return "", nil
	}

	r := []rune(s)
	n := len(r)

	from := start - 1
	if start < 0 {
		from = n + start
	}
	to := end - 1
	if end < 0 {
		to = n + end + 1
	}

	if from < 0 || to > n || from > to {
		return "", fmt.Errorf("sub %d..%d of length %d: %w", start, end, n, ErrIndexOutOfRange)
	}
	return string(r[from:to]), nil
}

// ChangeCaseAt applies fn to the rune at the 0-based index idx.
func ChangeCaseAt(s string, idx int, fn func(rune) rune) (string, error) {
	if s == "" {
		return s, nil
	}

	r := []rune(s)
	if idx < 0 || idx >= len(r) {
		return "", fmt.Errorf("change case at %d of length %d: %w", idx, len(r), ErrIndexOutOfRange)
	}
	r[idx] = fn(r[idx])
	return string(r), nil
}

func ToLowerAt(s string, idx int) (string, error) {
	return ChangeCaseAt(s, idx, unicode.ToLower)
}

func ToUpperAt(s string, idx int) (string, error) {
	return ChangeCaseAt(s, idx, unicode.ToUpper)
}

// LowerFirst lower-cases the first rune of s.
func LowerFirst(s string) string {
	res, _ := ToLowerAt(s, 0)
	return res
}

// UpperFirst upper-cases the first rune of s.
func UpperFirst(s string) string {
	res, _ := ToUpperAt(s, 0)
	return res
}

// LowerLast lower-cases the last rune of s.
func LowerLast(s string) string {
	res, _ := ToLowerAt(s, utf8.RuneCountInString(s)-1)
	return res
}

// UpperLast upper-cases the last rune of s.
func UpperLast(s string) string {
	res, _ := ToUpperAt(s, utf8.RuneCountInString(s)-1)
	return res
}

// ToUTF8 repairs text whose UTF-8 bytes were decoded as ISO-8859-1: every
// rune is mapped back to its Latin-1 byte and the bytes are read as UTF-8.
func ToUTF8(s string) (string, error) {
	if s == "" {
		return s, nil
	}

	raw, err := charmap.ISO8859_1.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("encode latin-1: %v: %w", err, ErrEncoding)
	}
	if !utf8.ValidString(raw) {
		return "", fmt.Errorf("decode utf-8: %w", ErrEncoding)
	}
	return raw, nil
}

// IsBlank reports whether s is empty or only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsOutLen reports whether s is longer than n runes.
func IsOutLen(s string, n int) bool {
	return utf8.RuneCountInString(s) > n
}

// IsBelowLen reports whether s is shorter than n runes.
func IsBelowLen(s string, n int) bool {
	return utf8.RuneCountInString(s) < n
}

// IsLenInRange reports whether the length of s lies in [min, max).
func IsLenInRange(s string, min, max int) bool {
	return !IsOutLen(s, max-1) && !IsBelowLen(s, min)
}

// HasNil reports whether any of strs is nil.
func HasNil(strs ...*string) bool {
	for _, s := range strs {
		if s == nil {
			return true
		}
	}
	return false
}

// HasEmpty reports whether any of strs is "".
func HasEmpty(strs ...string) bool {
	for _, s := range strs {
		if s == "" {
			return true
		}
	}
	return false
}

// HasBlank reports whether any of strs is empty or whitespace only.
func HasBlank(strs ...string) bool {
	for _, s := range strs {
		if IsBlank(s) {
			return true
		}
	}
	return false
}
