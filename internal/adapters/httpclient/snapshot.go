package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// SnapshotClient downloads the rate snapshot payload over HTTP.
type SnapshotClient struct {
	http *http.Client
	url  string
}

func NewSnapshotClient(httpClient *http.Client, url string) *SnapshotClient {
	return &SnapshotClient{http: httpClient, url: url}
}

func (c *SnapshotClient) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute snapshot request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected snapshot status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot body: %w", err)
	}
	return data, nil
}
