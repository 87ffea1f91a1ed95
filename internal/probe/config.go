// Package probe smoke-checks a running instance end to end: it walks the
// public endpoints and verifies the responses hang together.
package probe

import "time"

// Config holds configuration for a probe run.
type Config struct {
	BaseURL  string        // Base URL of the service
	Query    string        // Search query to exercise
	Username string        // Fallback profile to fetch when search is empty
	Timeout  time.Duration // HTTP request timeout
	Verbose  bool          // Log every response body
}

// Stats holds probe statistics.
type Stats struct {
	ChecksRun     int
	ChecksPassed  int
	SearchResults int
	Source        string
	StartTime     time.Time
	EndTime       time.Time
	Duration      time.Duration
}
