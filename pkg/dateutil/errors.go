package dateutil

import "errors"

var (
	ErrUnsupportedPattern = errors.New("unsupported date pattern")
	ErrParse              = errors.New("date does not match pattern")
)
