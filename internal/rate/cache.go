package rate

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"curconv/internal/adapters"
)

// DefaultMaxAge is the freshness threshold of a stored snapshot.
const DefaultMaxAge = time.Hour

// Cache decides whether the stored snapshot may be used as-is or has to be
// refreshed from the remote source first.
type Cache struct {
	store  adapters.SnapshotStore
	maxAge time.Duration
}

func NewCache(store adapters.SnapshotStore, maxAge time.Duration) *Cache {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Cache{store: store, maxAge: maxAge}
}

// Fresh reports whether the stored snapshot exists and is younger than the
// freshness threshold. A snapshot aged exactly maxAge counts as stale.
func (c *Cache) Fresh(now time.Time) bool {
	modTime, err := c.store.ModTime()
	if err != nil {
		logrus.WithError(err).Info("No usable local snapshot")
		return false
	}
	return now.Sub(modTime) < c.maxAge
}

// Ensure refreshes the stored snapshot when it is missing or stale: one
// fetch, one write, no retries. A failed refresh is terminal for the run.
func (c *Cache) Ensure(ctx context.Context, fetcher adapters.SnapshotFetcher, now time.Time) error {
	if c.Fresh(now) {
		return nil
	}

	logrus.Info("Refreshing currency snapshot")
	data, err := fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh snapshot: %w", err)
	}
	if err := c.store.Write(data); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}
