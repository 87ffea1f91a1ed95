// Package cache is the session profile cache: normalized genomes keyed by
// username. Writes are last-write-wins; eviction is LRU by capacity. There
// is no TTL — entries leave only via eviction or explicit invalidation.
package cache

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"talentlens/internal/domain/model"
)

const defaultCapacity = 256

// Store provides keyed access to cached genomes.
type Store interface {
	// Get returns the cached genome for username, if present.
	Get(ctx context.Context, username string) (model.Genome, bool)

	// Set stores or replaces the genome for username.
	Set(ctx context.Context, username string, genome model.Genome)

	// Delete invalidates a single username.
	Delete(ctx context.Context, username string)

	// Clear drops every cached entry.
	Clear(ctx context.Context)

	// Len returns the number of cached entries.
	Len(ctx context.Context) int
}

type lruStore struct {
	entries *lru.Cache[string, model.Genome]
}

// New creates an LRU-backed Store.
func New(opts ...Option) Store {
	cfg := settings{capacity: defaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}
	// Capacity is validated by the options; lru.New only fails on a
	// non-positive size.
	entries, err := lru.New[string, model.Genome](cfg.capacity)
	if err != nil {
		entries, _ = lru.New[string, model.Genome](defaultCapacity)
	}
	return &lruStore{entries: entries}
}

func (s *lruStore) Get(_ context.Context, username string) (model.Genome, bool) {
	return s.entries.Get(username)
}

func (s *lruStore) Set(_ context.Context, username string, genome model.Genome) {
	s.entries.Add(username, genome)
}

func (s *lruStore) Delete(_ context.Context, username string) {
	s.entries.Remove(username)
}

func (s *lruStore) Clear(_ context.Context) {
	s.entries.Purge()
}

func (s *lruStore) Len(_ context.Context) int {
	return s.entries.Len()
}
