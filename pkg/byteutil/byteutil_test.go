package byteutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSub(t *testing.T) {
	src := []byte("0123456789")

	tests := []struct {
		name         string
		begin, count int
		expected     []byte
	}{
		{name: "prefix", begin: 0, count: 3, expected: []byte("012")},
		{name: "middle", begin: 4, count: 2, expected: []byte("45")},
		{name: "tail", begin: 7, count: 3, expected: []byte("789")},
		{name: "empty", begin: 10, count: 0, expected: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sub(src, tt.begin, tt.count)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSub_Copies(t *testing.T) {
	src := []byte{1, 2, 3}
	got, err := Sub(src, 0, 2)
	require.NoError(t, err)

	got[0] = 9
	assert.Equal(t, byte(1), src[0])
}

func TestSub_OutOfRange(t *testing.T) {
	src := []byte("abc")

	tests := []struct {
		name         string
		begin, count int
	}{
		{name: "negative begin", begin: -1, count: 1},
		{name: "negative count", begin: 0, count: -1},
		{name: "begin past end", begin: 4, count: 0},
		{name: "count past end", begin: 2, count: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sub(src, tt.begin, tt.count)
			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}
