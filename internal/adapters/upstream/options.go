package upstream

import (
	"net/http"
	"time"
)

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithHTTPClient swaps the underlying http.Client, mainly for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithUserAgent overrides the User-Agent header sent upstream.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		if agent != "" {
			c.userAgent = agent
		}
	}
}

// WithRetry enables bounded retry for timed-out calls only: attempts is the
// total attempt budget, delay the pause between attempts.
func WithRetry(attempts int, delay time.Duration) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.attempts = attempts
		}
		if delay > 0 {
			c.retryDelay = delay
		}
	}
}
