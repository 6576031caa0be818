package domain

import "errors"

// ============================================================================
// Request Errors
// ============================================================================

var (
	ErrInvalidPadChar  = errors.New("pad char must be exactly one character")
	ErrInvalidPadSide  = errors.New("pad side must be left or right")
	ErrInvalidCaseMode = errors.New("case mode must be lower or upper")
	ErrInvalidLenRange = errors.New("min length must not exceed max length")
	ErrInvalidPath     = errors.New("relay path must not contain ..")
)

// ============================================================================
// Upstream Errors
// ============================================================================

var (
	ErrUpstreamNotConfigured = errors.New("upstream is not configured")
	ErrUpstreamUnavailable   = errors.New("upstream request failed")
)
