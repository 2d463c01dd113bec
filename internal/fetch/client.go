// Package fetch retrieves Bible translation text from the supported
// translation APIs, with a content-addressed disk cache so repeated
// runs don't re-fetch. The heavy lifting of splitting fetched text into
// verses lives in core/translation; this package only does retrieval
// and response decoding.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/FocuswithJustin/interlinear/core/errors"
	"github.com/FocuswithJustin/interlinear/internal/logging"
)

// maxRetries bounds rate-limit retries per request.
const maxRetries = 3

// Client is the shared HTTP layer under the per-API clients.
type Client struct {
	HTTP  *http.Client
	Cache *Cache

	// RetryDelay is the base delay after a rate-limited response; the
	// n-th retry waits n times this. Overridable for tests.
	RetryDelay time.Duration
}

// NewClient creates a Client with sane timeouts and an optional cache.
func NewClient(cache *Cache) *Client {
	return &Client{
		HTTP:       &http.Client{Timeout: 30 * time.Second},
		Cache:      cache,
		RetryDelay: 5 * time.Second,
	}
}

// Get performs a plain cached GET with no extra headers.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	return c.get(ctx, url, nil)
}

// requestKey derives the cache key for a request. Header names are
// sorted so the key is deterministic regardless of map order.
func requestKey(url string, header http.Header) string {
	parts := []string{url}
	names := make([]string, 0, len(header))
	for name := range header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, v := range header[name] {
			parts = append(parts, name+":"+v)
		}
	}
	return Key(parts...)
}

// get performs a cached GET. The cache key covers the URL and every
// request header, so responses fetched under one credential are never
// served for another.
func (c *Client) get(ctx context.Context, url string, header http.Header) ([]byte, error) {
	key := requestKey(url, header)
	if data, ok := c.Cache.Get(key); ok {
		logging.DebugContext(ctx, "cache hit", "url", url)
		return data, nil
	}

	var lastStatus int
	for attempt := 0; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, errors.NewIO("fetch", url, err)
		}
		for k, vs := range header {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}

		resp, err := c.HTTP.Do(req)
		if err != nil {
			return nil, errors.NewIO("fetch", url, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			resp.Body.Close()
			lastStatus = resp.StatusCode
			wait := time.Duration(attempt+1) * c.RetryDelay
			logging.WarnContext(ctx, "rate limited", "url", url, "wait", wait)
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, errors.NewIO("fetch", url, err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, errors.NewIO("fetch", url, fmt.Errorf("unexpected status %d", resp.StatusCode))
		}

		if err := c.Cache.Put(key, body); err != nil {
			// Cache failures degrade to uncached operation.
			logging.WarnContext(ctx, "cache write failed", "error", err)
		}
		return body, nil
	}

	return nil, errors.NewIO("fetch", url, fmt.Errorf("rate limited after %d retries (status %d)", maxRetries, lastStatus))
}
