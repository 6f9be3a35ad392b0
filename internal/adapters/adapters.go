package adapters

import (
	"context"
	"time"
)

// SnapshotFetcher retrieves the raw rate snapshot from the remote source.
// A single call per run, no retries.
type SnapshotFetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// SnapshotStore persists the snapshot between runs. ModTime reports the
// age of the stored copy; it fails when no copy exists.
type SnapshotStore interface {
	ModTime() (time.Time, error)
	Read() ([]byte, error)
	Write(data []byte) error
}
