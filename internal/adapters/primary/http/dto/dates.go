package dto

// ============================================================================
// Request DTOs
// ============================================================================

// DateCompareRequest compares two date strings. An empty pattern selects the
// service default.
type DateCompareRequest struct {
	A       string `json:"a" binding:"required"`
	B       string `json:"b" binding:"required"`
	Pattern string `json:"pattern"`
}

// DateRangeRequest checks Time against [Start, End)
type DateRangeRequest struct {
	Time    string `json:"time" binding:"required"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
	Pattern string `json:"pattern"`
}

// DateDiffRequest checks whether A and B are at most WithinMS apart
type DateDiffRequest struct {
	A        string `json:"a" binding:"required"`
	B        string `json:"b" binding:"required"`
	Pattern  string `json:"pattern"`
	WithinMS int64  `json:"within_ms"`
}

// NowRangeRequest checks the current time against [Start, End)
type NowRangeRequest struct {
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
	Pattern string `json:"pattern"`
}

// ============================================================================
// Response DTOs
// ============================================================================

type CompareResponse struct {
	Result int `json:"result"`
}

type RangeResponse struct {
	InRange bool `json:"in_range"`
}

type DiffResponse struct {
	Within bool `json:"within"`
}
