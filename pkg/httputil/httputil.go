package httputil

import (
	"context"
	"time"
)

// The functions below build a fresh Client per call. A non-positive
// timeout selects DefaultTimeout.

func Get(ctx context.Context, rawURL string, timeout time.Duration) (string, error) {
	return NewClient(WithTimeout(timeout)).Get(ctx, rawURL)
}

func GetWithParams(ctx context.Context, rawURL string, params map[string]string, timeout time.Duration) (string, error) {
	return NewClient(WithTimeout(timeout)).GetWithParams(ctx, rawURL, params)
}

func PostJSON(ctx context.Context, rawURL, body string, timeout time.Duration) (string, error) {
	return NewClient(WithTimeout(timeout)).PostJSON(ctx, rawURL, body)
}

func PostMap(ctx context.Context, rawURL string, params map[string]string, timeout time.Duration) (string, error) {
	return NewClient(WithTimeout(timeout)).PostMap(ctx, rawURL, params)
}
