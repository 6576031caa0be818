package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"

	"base-util/internal/config"
	ports "base-util/internal/core/ports/output"
	"base-util/pkg/httputil"
)

type upstreamClient struct {
	baseURL string
	client  *httputil.Client
	enabled bool
}

// NewUpstreamClient creates the upstream adapter. An empty URL yields a
// client that reports itself unavailable.
func NewUpstreamClient(cfg *config.UpstreamConfig) ports.UpstreamClient {
	if strings.TrimSpace(cfg.URL) == "" {
		return &upstreamClient{enabled: false}
	}

	return &upstreamClient{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		enabled: true,
		client: httputil.NewClient(
			httputil.WithTimeout(cfg.Timeout),
			httputil.WithMaxBodySize(cfg.MaxBodyBytes),
		),
	}
}

func (c *upstreamClient) IsAvailable() bool {
	return c.enabled
}

func (c *upstreamClient) Get(ctx context.Context, path string, query url.Values) (*ports.UpstreamResponse, error) {
	if !c.enabled {
		return nil, fmt.Errorf("upstream disabled")
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	target, err := httputil.AddValuesToURL(c.baseURL+path, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create upstream request: %w", err)
	}

	log.WithFields(log.Fields{
		"path": path,
		"url":  target,
	}).Debug("relaying request to upstream")

	resp, err := c.client.Fetch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w", err)
	}

	return &ports.UpstreamResponse{
		Status:      resp.Status,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        resp.Raw,
	}, nil
}
