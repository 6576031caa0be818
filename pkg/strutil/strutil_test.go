package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Sub Tests
// ============================================================================

func TestSub(t *testing.T) {
	tests := []struct {
		name       string
		s          string
		start, end int
		expected   string
	}{
		{name: "head", s: "hello", start: 1, end: 3, expected: "he"},
		{name: "whole string", s: "hello", start: 1, end: -1, expected: "hello"},
		{name: "tail from negative start", s: "hello", start: -3, end: -1, expected: "llo"},
		{name: "last rune", s: "hello", start: -1, end: -1, expected: "o"},
		{name: "middle", s: "hello", start: 2, end: 5, expected: "ell"},
		{name: "empty window", s: "hello", start: 3, end: 3, expected: ""},
		{name: "negative end trims tail", s: "hello", start: 1, end: -2, expected: "hell"},
		{name: "multibyte runes", s: "日本語です", start: 2, end: 4, expected: "本語"},
		{name: "blank input", s: "   ", start: 5, end: 9, expected: ""},
		{name: "empty input", s: "", start: 1, end: 3, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sub(tt.s, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSub_OutOfRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
	}{
		{name: "zero start", start: 0, end: 2},
		{name: "end past length", start: 1, end: 7},
		{name: "start after end", start: 4, end: 2},
		{name: "negative start past head", start: -6, end: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sub("hello", tt.start, tt.end)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
		})
	}
}

// ============================================================================
// Case Tests
// ============================================================================

func TestChangeCaseAt(t *testing.T) {
	got, err := ToUpperAt("hello", 2)
	require.NoError(t, err)
	assert.Equal(t, "heLlo", got)

	got, err = ToLowerAt("HELLO", 4)
	require.NoError(t, err)
	assert.Equal(t, "HELLo", got)

	_, err = ToUpperAt("hello", 5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = ToUpperAt("hello", -1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	got, err = ToUpperAt("", 3)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestFirstAndLast(t *testing.T) {
	assert.Equal(t, "UserName", UpperFirst("userName"))
	assert.Equal(t, "userName", LowerFirst("UserName"))
	assert.Equal(t, "abC", UpperLast("abc"))
	assert.Equal(t, "ABc", LowerLast("ABC"))
	assert.Equal(t, "Éa", UpperFirst("éa"))
	assert.Equal(t, "", UpperFirst(""))
	assert.Equal(t, "", LowerLast(""))
}

// ============================================================================
// Encoding Tests
// ============================================================================

func TestToUTF8(t *testing.T) {
	got, err := ToUTF8("cafÃ©")
	require.NoError(t, err)
	assert.Equal(t, "café", got)

	got, err = ToUTF8("plain ascii")
	require.NoError(t, err)
	assert.Equal(t, "plain ascii", got)

	got, err = ToUTF8("")
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestToUTF8_Invalid(t *testing.T) {
	// a lone latin-1 byte is not a valid utf-8 sequence
	_, err := ToUTF8("é")
	assert.ErrorIs(t, err, ErrEncoding)

	// runes above U+00FF have no latin-1 byte
	_, err = ToUTF8("日本")
	assert.ErrorIs(t, err, ErrEncoding)
}

// ============================================================================
// Length and Presence Tests
// ============================================================================

func TestLengthChecks(t *testing.T) {
	assert.True(t, IsOutLen("hello", 4))
	assert.False(t, IsOutLen("hello", 5))
	assert.True(t, IsBelowLen("hi", 3))
	assert.False(t, IsBelowLen("hi", 2))
	assert.False(t, IsOutLen("日本語", 3))
}

func TestIsLenInRange(t *testing.T) {
	tests := []struct {
		s        string
		expected bool
	}{
		{s: "ab", expected: false},
		{s: "abc", expected: true},
		{s: "abcd", expected: true},
		{s: "abcde", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsLenInRange(tt.s, 3, 5))
		})
	}
}

func TestHasEmptyAndBlank(t *testing.T) {
	assert.True(t, HasEmpty("a", "", "b"))
	assert.False(t, HasEmpty("a", " ", "b"))
	assert.False(t, HasEmpty())

	assert.True(t, HasBlank("a", " \t", "b"))
	assert.True(t, HasBlank(""))
	assert.False(t, HasBlank("a", "b"))
}

func TestHasNil(t *testing.T) {
	s := "value"
	assert.True(t, HasNil(&s, nil))
	assert.False(t, HasNil(&s))
}
