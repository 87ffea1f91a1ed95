// Package upstream is the HTTP client for the third-party people-search API.
// It returns raw decoded payloads; shaping them is the normalizer's job.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fixed upstream paths, relative to the configured base URL.
const (
	searchPath = "/entities/_searchStream"
	genomePath = "/genome/bios/"
	jobsPath   = "/opportunities/_search"
)

const (
	defaultTimeout = 10 * time.Second
	defaultAgent   = "talentlens/1.0"

	// maxErrorBody bounds how much of an upstream error response is kept
	// for diagnostics.
	maxErrorBody = 4 << 10
)

// Client issues search and genome requests against the upstream API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
	attempts   int
	retryDelay time.Duration
}

// New creates a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		userAgent:  defaultAgent,
		timeout:    defaultTimeout,
		attempts:   1,
		retryDelay: time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// searchRequest mirrors the upstream search body.
type searchRequest struct {
	Query           string         `json:"query"`
	Filters         map[string]any `json:"filters"`
	Offset          int            `json:"offset"`
	Size            int            `json:"size"`
	Aggregate       bool           `json:"aggregate"`
	ExcludeContacts bool           `json:"excludeContacts"`
}

// Search runs a people search and returns the raw payload.
func (c *Client) Search(ctx context.Context, query string, filters map[string]any, offset, size int) (map[string]any, error) {
	if filters == nil {
		filters = map[string]any{}
	}
	body := searchRequest{
		Query:   query,
		Filters: filters,
		Offset:  offset,
		Size:    size,
	}
	return c.post(ctx, searchPath, body)
}

// Genome fetches the raw genome payload for username. An upstream 404 comes
// back as a *StatusError detectable via IsNotFound.
func (c *Client) Genome(ctx context.Context, username string) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, genomePath+url.PathEscape(username), nil)
}

// SearchJobs forwards an opaque job-search payload and returns the raw
// upstream response.
func (c *Client) SearchJobs(ctx context.Context, payload map[string]any) (map[string]any, error) {
	if payload == nil {
		payload = map[string]any{}
	}
	return c.post(ctx, jobsPath, payload)
}

func (c *Client) post(ctx context.Context, path string, body any) (map[string]any, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request for %s: %w", path, err)
	}
	return c.do(ctx, http.MethodPost, path, encoded)
}

// do performs one upstream call with the configured timeout, retrying
// timeouts only, up to the configured attempt budget.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (map[string]any, error) {
	var lastErr error
	for attempt := 0; attempt < c.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%s %s: %w", method, path, ErrUnreachable)
			case <-time.After(c.retryDelay):
			}
		}
		payload, err := c.once(ctx, method, path, body)
		if err == nil {
			return payload, nil
		}
		lastErr = err
		if !errors.Is(err, ErrTimeout) {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c *Client) once(ctx context.Context, method, path string, body []byte) (map[string]any, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(reqCtx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransport(method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("%s %s: %w", method, path,
			&StatusError{Status: resp.StatusCode, Body: string(excerpt)})
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%s %s: %w: %v", method, path, ErrDecode, err)
	}
	return payload, nil
}

func classifyTransport(method, path string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%s %s: %w", method, path, ErrTimeout)
	}
	return fmt.Errorf("%s %s: %w", method, path, ErrUnreachable)
}
