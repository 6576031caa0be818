package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"base-util/internal/core/domain"
	ports "base-util/internal/core/ports/output"
	"base-util/pkg/httputil"
)

// RelayService forwards read-only requests to the upstream.
type RelayService struct {
	upstream ports.UpstreamClient
}

// NewRelayService creates a new RelayService
func NewRelayService(upstream ports.UpstreamClient) *RelayService {
	return &RelayService{upstream: upstream}
}

// Relay sends a GET for path with query to the upstream.
func (s *RelayService) Relay(ctx context.Context, path string, query url.Values) (*ports.UpstreamResponse, error) {
	if s.upstream == nil || !s.upstream.IsAvailable() {
		return nil, domain.ErrUpstreamNotConfigured
	}
	if strings.Contains(path, "..") {
		return nil, domain.ErrInvalidPath
	}
	for key := range query {
		if strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("relay query: %w", httputil.ErrEmptyParamKey)
		}
	}

	resp, err := s.upstream.Get(ctx, path, query)
	if errors.Is(err, httputil.ErrEmptyParamKey) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	return resp, nil
}
