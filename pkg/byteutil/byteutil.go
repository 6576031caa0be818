// Package byteutil slices byte arrays.
package byteutil

import (
	"errors"
	"fmt"
)

var ErrOutOfRange = errors.New("byte range out of bounds")

// Sub copies count bytes of src starting at begin into a new slice.
func Sub(src []byte, begin, count int) ([]byte, error) {
	if begin < 0 || count < 0 || begin > len(src) || count > len(src)-begin {
		return nil, fmt.Errorf("sub %d+%d of length %d: %w", begin, count, len(src), ErrOutOfRange)
	}

	bs := make([]byte, count)
	copy(bs, src[begin:begin+count])
	return bs, nil
}
