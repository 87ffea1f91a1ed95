package main

import (
	"context"
	"flag"
	"os"
	"time"

	"talentlens/internal/probe"
	"talentlens/pkg/logger"
)

// Default configuration constants.
const (
	defaultQuery    = "developer"
	defaultUsername = "sarahchen"
	defaultTimeout  = 10 * time.Second
	defaultRunLimit = 2 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:8080", "Base URL of the service")
		query    = flag.String("query", defaultQuery, "Search query to exercise")
		username = flag.String("username", defaultUsername, "Profile to fetch when search returns nothing")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose  = flag.Bool("verbose", false, "Log response payloads")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunLimit)
	defer cancel()

	cfg := &probe.Config{
		BaseURL:  *baseURL,
		Query:    *query,
		Username: *username,
		Timeout:  *timeout,
		Verbose:  *verbose,
	}

	if err := probe.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("Smoke check failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
