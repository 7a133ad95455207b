package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// DefaultURL is the stable published clippy lint catalog.
const DefaultURL = "https://rust-lang.github.io/rust-clippy/stable/lints.json"

// DefaultTimeout bounds the catalog fetch.
const DefaultTimeout = 30 * time.Second

// Client fetches and decodes the lint catalog over HTTP.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a catalog client for the given URL. An empty url uses
// DefaultURL; a zero timeout uses DefaultTimeout.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Fetch performs a single GET against the catalog URL and decodes the
// response body.
func (c *Client) Fetch(ctx context.Context) (Catalog, error) {
	c.logger.Debug("fetching lint catalog", "url", c.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch catalog %s: unexpected status %d", c.url, resp.StatusCode)
	}

	var cat Catalog
	if err := json.NewDecoder(resp.Body).Decode(&cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c.logger.Debug("fetched lint catalog", "lints", len(cat))
	return cat, nil
}

// LoadFile decodes a catalog from a JSON file on disk. Used for offline
// generation and tests.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", path, err)
	}
	return cat, nil
}
