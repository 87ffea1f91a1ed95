package probe

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"talentlens/pkg/logger"
)

// Run executes the full smoke check against a running instance.
func Run(ctx context.Context, cfg *Config) error {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Get()
	c := newClient(cfg)

	log.Info(ctx, "starting smoke check",
		logger.String("baseURL", cfg.BaseURL),
		logger.String("query", cfg.Query),
		logger.String("timeout", cfg.Timeout.String()))

	// Step 1: health
	if err := checkHealth(ctx, c, stats, log); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	// Step 2: search
	username, err := checkSearch(ctx, c, cfg, stats, log)
	if err != nil {
		return fmt.Errorf("search check failed: %w", err)
	}

	// Step 3: genome for a username the search surfaced
	if err := checkGenome(ctx, c, username, stats, log, cfg.Verbose); err != nil {
		return fmt.Errorf("genome check failed: %w", err)
	}

	// Step 4: validation rejects an empty query
	if err := checkValidation(ctx, c, stats); err != nil {
		return fmt.Errorf("validation check failed: %w", err)
	}

	// Step 5: job search answers
	if err := checkJobs(ctx, c, stats, log, cfg.Verbose); err != nil {
		return fmt.Errorf("job search check failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	log.Info(ctx, "smoke check passed",
		logger.Int("checks", stats.ChecksRun),
		logger.Int("searchResults", stats.SearchResults),
		logger.String("source", stats.Source),
		logger.String("duration", stats.Duration.String()))
	return nil
}

func checkHealth(ctx context.Context, c *client, stats *Stats, log logger.Logger) error {
	stats.ChecksRun++
	body, status, err := c.health(ctx)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("unexpected status %d", status)
	}
	if body["status"] != "ok" {
		return fmt.Errorf("unexpected health payload: %v", body)
	}
	stats.ChecksPassed++
	log.Info(ctx, "health ok", logger.Any("service", body["service"]))
	return nil
}

func checkSearch(ctx context.Context, c *client, cfg *Config, stats *Stats, log logger.Logger) (string, error) {
	stats.ChecksRun++
	page, status, err := c.search(ctx, cfg.Query)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", status)
	}
	if page.Total < len(page.Results) {
		return "", fmt.Errorf("total %d below result count %d", page.Total, len(page.Results))
	}
	stats.ChecksPassed++
	stats.SearchResults = len(page.Results)
	stats.Source = page.Source

	log.Info(ctx, "search ok",
		logger.Int("results", len(page.Results)),
		logger.String("source", page.Source))

	if len(page.Results) > 0 && page.Results[0].Username != "" {
		return page.Results[0].Username, nil
	}
	return cfg.Username, nil
}

func checkGenome(ctx context.Context, c *client, username string, stats *Stats, log logger.Logger, verbose bool) error {
	stats.ChecksRun++
	genome, status, err := c.genome(ctx, username)
	if err != nil {
		return err
	}
	// A 404 is a legitimate answer for an unknown user; anything else
	// beyond 200 is not.
	if status != http.StatusOK && status != http.StatusNotFound {
		return fmt.Errorf("unexpected status %d for %q", status, username)
	}
	if status == http.StatusOK {
		if genome.Username != username {
			return fmt.Errorf("genome username %q does not match %q", genome.Username, username)
		}
		if len(genome.Personality) == 0 {
			return fmt.Errorf("genome for %q has no personality traits", username)
		}
		if verbose {
			log.Info(ctx, "genome payload", logger.Any("genome", genome))
		}
	}
	stats.ChecksPassed++
	log.Info(ctx, "genome ok", logger.String("username", username), logger.Int("status", status))
	return nil
}

func checkValidation(ctx context.Context, c *client, stats *Stats) error {
	stats.ChecksRun++
	status, err := c.emptySearch(ctx)
	if err != nil {
		return err
	}
	if status != http.StatusBadRequest {
		return fmt.Errorf("empty query answered %d, want 400", status)
	}
	stats.ChecksPassed++
	return nil
}

func checkJobs(ctx context.Context, c *client, stats *Stats, log logger.Logger, verbose bool) error {
	stats.ChecksRun++
	body, status, err := c.jobs(ctx)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("unexpected status %d", status)
	}
	stats.ChecksPassed++
	if verbose {
		log.Info(ctx, "jobs payload", logger.Any("body", body))
	}
	log.Info(ctx, "job search ok")
	return nil
}
