package httputil

import "errors"

var (
	ErrEmptyParamKey = errors.New("query parameter key must not be blank")
	ErrBodyTooLarge  = errors.New("response body exceeds size limit")
)
