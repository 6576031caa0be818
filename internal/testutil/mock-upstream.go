package testutil

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"

	ports "base-util/internal/core/ports/output"
)

// MockUpstreamClient is a mock of UpstreamClient.
type MockUpstreamClient struct {
	mock.Mock
}

func (m *MockUpstreamClient) IsAvailable() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockUpstreamClient) Get(ctx context.Context, path string, query url.Values) (*ports.UpstreamResponse, error) {
	args := m.Called(ctx, path, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.UpstreamResponse), args.Error(1)
}
