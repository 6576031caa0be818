package strutil

import "errors"

var (
	ErrIndexOutOfRange = errors.New("string index out of range")
	ErrEncoding        = errors.New("string cannot be reinterpreted as utf-8")
	ErrNotBool         = errors.New(`string is neither "1" nor "0"`)
)
