package dto

// ============================================================================
// Request DTOs
// ============================================================================

// SubRequest extracts runes between 1-based positions
type SubRequest struct {
	Value string `json:"value"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// PadRequest pads a value to a length. Char defaults to "0" and Side to "left".
type PadRequest struct {
	Value  string `json:"value"`
	Char   string `json:"char"`
	Length int    `json:"length" binding:"min=0"`
	Side   string `json:"side"`
}

// CaseRequest changes the case of one rune. A missing index means the first
// rune and -1 means the last.
type CaseRequest struct {
	Value string `json:"value"`
	Index *int   `json:"index"`
	Mode  string `json:"mode" binding:"required"`
}

// UTF8Request repairs latin-1 decoded text
type UTF8Request struct {
	Value string `json:"value"`
}

// CheckRequest runs presence and length checks over values
type CheckRequest struct {
	Values []string `json:"values" binding:"required"`
	Min    int      `json:"min"`
	Max    int      `json:"max"`
}

// ============================================================================
// Response DTOs
// ============================================================================

// StringResult wraps a single string result
type StringResult struct {
	Result string `json:"result"`
}

// CheckResponse reports checks over a list of values
type CheckResponse struct {
	HasEmpty bool   `json:"has_empty"`
	HasBlank bool   `json:"has_blank"`
	InRange  []bool `json:"in_range"`
}
