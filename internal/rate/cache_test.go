package rate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	modTime    time.Time
	modTimeErr error
	written    []byte
	writeErr   error
}

func (s *fakeStore) ModTime() (time.Time, error) { return s.modTime, s.modTimeErr }

func (s *fakeStore) Read() ([]byte, error) { return s.written, nil }

func (s *fakeStore) Write(data []byte) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.written = data
	return nil
}

type fakeFetcher struct {
	data  []byte
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(_ context.Context) ([]byte, error) {
	f.calls++
	return f.data, f.err
}

func TestCache_Fresh_Boundary(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		age   time.Duration
		fresh bool
	}{
		{"just written", 0, true},
		{"one second inside", 3599 * time.Second, true},
		{"exactly at threshold", 3600 * time.Second, false},
		{"one second past", 3601 * time.Second, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewCache(&fakeStore{modTime: now.Add(-tt.age)}, DefaultMaxAge)
			require.Equal(t, tt.fresh, cache.Fresh(now))
		})
	}
}

func TestCache_Fresh_MissingSnapshot(t *testing.T) {
	cache := NewCache(&fakeStore{modTimeErr: errors.New("no such file")}, DefaultMaxAge)
	require.False(t, cache.Fresh(time.Now()))
}

func TestCache_Ensure_SkipsFetchWhenFresh(t *testing.T) {
	now := time.Now()
	fetcher := &fakeFetcher{data: []byte(`{}`)}
	cache := NewCache(&fakeStore{modTime: now.Add(-time.Minute)}, DefaultMaxAge)

	require.NoError(t, cache.Ensure(context.Background(), fetcher, now))
	require.Zero(t, fetcher.calls)
}

func TestCache_Ensure_RefreshesStaleSnapshot(t *testing.T) {
	now := time.Now()
	store := &fakeStore{modTime: now.Add(-2 * time.Hour)}
	fetcher := &fakeFetcher{data: []byte(`{"rates":{"USD":1.1}}`)}
	cache := NewCache(store, DefaultMaxAge)

	require.NoError(t, cache.Ensure(context.Background(), fetcher, now))
	require.Equal(t, 1, fetcher.calls)
	require.Equal(t, fetcher.data, store.written)
}

func TestCache_Ensure_FetchFailureIsTerminal(t *testing.T) {
	store := &fakeStore{modTimeErr: errors.New("no such file")}
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	cache := NewCache(store, DefaultMaxAge)

	err := cache.Ensure(context.Background(), fetcher, time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to refresh snapshot")
	// a single attempt, no retry
	require.Equal(t, 1, fetcher.calls)
	require.Nil(t, store.written)
}

func TestCache_Ensure_PersistFailure(t *testing.T) {
	store := &fakeStore{modTimeErr: errors.New("no such file"), writeErr: errors.New("disk full")}
	fetcher := &fakeFetcher{data: []byte(`{}`)}
	cache := NewCache(store, DefaultMaxAge)

	err := cache.Ensure(context.Background(), fetcher, time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to persist snapshot")
}
