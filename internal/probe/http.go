package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"talentlens/internal/domain/model"
)

type client struct {
	baseURL string
	http    *http.Client
}

func newClient(cfg *Config) *client {
	return &client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *client) get(ctx context.Context, path string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return 0, err
	}
	return c.do(req, out)
}

func (c *client) post(ctx context.Context, path string, payload, out any) (int, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *client) do(req *http.Request, out any) (int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decoding %s: %w", req.URL.Path, err)
	}
	return resp.StatusCode, nil
}

func (c *client) health(ctx context.Context) (map[string]any, int, error) {
	var body map[string]any
	status, err := c.get(ctx, "/health", &body)
	return body, status, err
}

func (c *client) search(ctx context.Context, query string) (model.SearchPage, int, error) {
	var page model.SearchPage
	status, err := c.post(ctx, "/api/search", map[string]any{"query": query}, &page)
	return page, status, err
}

func (c *client) genome(ctx context.Context, username string) (model.Genome, int, error) {
	var genome model.Genome
	status, err := c.get(ctx, "/api/genome/"+url.PathEscape(username), &genome)
	return genome, status, err
}

func (c *client) emptySearch(ctx context.Context) (int, error) {
	return c.post(ctx, "/api/search", map[string]any{"query": ""}, nil)
}

func (c *client) jobs(ctx context.Context) (map[string]any, int, error) {
	var body map[string]any
	status, err := c.post(ctx, "/api/jobs/search", map[string]any{"size": 3}, &body)
	return body, status, err
}
