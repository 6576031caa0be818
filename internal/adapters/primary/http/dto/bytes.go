package dto

// BytesSubRequest slices Data, sent as base64
type BytesSubRequest struct {
	Data  []byte `json:"data"`
	Begin int    `json:"begin"`
	Count int    `json:"count"`
}

// BytesResult carries base64 encoded bytes
type BytesResult struct {
	Result []byte `json:"result"`
}

// URLQueryRequest appends Params to URL
type URLQueryRequest struct {
	URL    string            `json:"url" binding:"required"`
	Params map[string]string `json:"params"`
}

type URLQueryResponse struct {
	URL string `json:"url"`
}
