package ports

import (
	"context"
	"net/url"
)

// UpstreamResponse is a fully read upstream reply. Body holds the bytes as
// the upstream sent them, in the charset named by ContentType.
type UpstreamResponse struct {
	Status      int
	ContentType string
	Body        []byte
}

// UpstreamClient sends GET requests to the configured upstream.
type UpstreamClient interface {
	IsAvailable() bool
	Get(ctx context.Context, path string, query url.Values) (*UpstreamResponse, error)
}
