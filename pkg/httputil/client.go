// Package httputil sends blocking HTTP requests and returns response bodies
// as strings.
package httputil

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTimeout = 10 * time.Second

	HeaderRequestID = "X-Request-ID"

	headerContentType = "Content-Type"
	headerAccept      = "Accept"
	jsonContentType   = "application/json; charset=utf-8"
	jsonAccept        = "application/json"
)

// Response is a fully read HTTP response. Body is decoded to UTF-8 from
// the charset in Content-Type; Raw holds the bytes as received.
type Response struct {
	Status int
	Header http.Header
	Body   string
	Raw    []byte
}

// Client executes requests with a per-request deadline.
type Client struct {
	httpClient  *http.Client
	timeout     time.Duration
	maxBodySize int64
	headers     http.Header
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds each request including the body read. Non-positive
// values select DefaultTimeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying client. A nil client is ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithMaxBodySize rejects bodies larger than n bytes. Zero means no limit.
func WithMaxBodySize(n int64) Option {
	return func(c *Client) { c.maxBodySize = n }
}

// WithHeader adds a header sent with every request unless the request
// already sets it.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Add(key, value) }
}

type requestIDKey struct{}

// ContextWithRequestID makes requests sent under ctx carry id as their
// X-Request-ID unless the request sets one itself.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// NewClient builds a Client with DefaultTimeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		timeout:    DefaultTimeout,
		headers:    http.Header{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get sends a GET with any parameters already encoded in rawURL.
func (c *Client) Get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create get request: %w", err)
	}
	return c.Do(req)
}

// GetWithParams appends params to rawURL and sends a GET.
func (c *Client) GetWithParams(ctx context.Context, rawURL string, params map[string]string) (string, error) {
	target, err := AddParamsToURL(rawURL, params)
	if err != nil {
		return "", err
	}
	return c.Get(ctx, target)
}

// PostJSON posts body, which must already be a JSON document.
func (c *Client) PostJSON(ctx context.Context, rawURL, body string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create post request: %w", err)
	}
	req.Header.Set(headerContentType, jsonContentType)
	req.Header.Set(headerAccept, jsonAccept)
	return c.Do(req)
}

// PostMap posts params encoded as a JSON object.
func (c *Client) PostMap(ctx context.Context, rawURL string, params map[string]string) (string, error) {
	if params == nil {
		params = map[string]string{}
	}
	body, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("encode post body: %w", err)
	}
	return c.PostJSON(ctx, rawURL, string(body))
}

// Do sends req and returns the body regardless of status.
func (c *Client) Do(req *http.Request) (string, error) {
	resp, err := c.Fetch(req.Context(), req)
	if err != nil {
		return "", err
	}
	return resp.Body, nil
}

// Fetch sends req under ctx and reads the whole response.
func (c *Client) Fetch(ctx context.Context, req *http.Request) (*Response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req = req.Clone(ctx)
	for key, values := range c.headers {
		if req.Header.Get(key) != "" {
			continue
		}
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if req.Header.Get(HeaderRequestID) == "" {
		id := requestIDFromContext(ctx)
		if id == "" {
			id = uuid.New().String()
		}
		req.Header.Set(HeaderRequestID, id)
	}

	fields := log.Fields{
		"method":     req.Method,
		"url":        req.URL.Redacted(),
		"request_id": req.Header.Get(HeaderRequestID),
	}
	log.WithFields(fields).Debug("sending request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Redacted(), err)
	}
	defer resp.Body.Close()

	raw, body, err := c.readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("read %s %s response: %w", req.Method, req.URL.Redacted(), err)
	}

	fields["status"] = resp.StatusCode
	fields["latency_ms"] = time.Since(start).Milliseconds()
	log.WithFields(fields).Debug("request completed")

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header.Clone(),
		Body:   body,
		Raw:    raw,
	}, nil
}
