// Package sources holds the feed adapters. Each adapter fetches raw records
// from one upstream and exposes them as normalized content items.
package sources

import (
	"context"
	"net/http"
	"time"

	"github.com/spryker-community/echo/internal/content"
)

// Adapter is one upstream feed. Fetch returns a fresh item set on every call;
// a refetch fully replaces the previous set for that source.
type Adapter interface {
	Source() content.Source
	Fetch(ctx context.Context) ([]content.ContentItem, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}
