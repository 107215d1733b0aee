package sources

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/spryker-community/echo/internal/content"
	"github.com/spryker-community/echo/pkg/logging"
)

// Aggregator fans out over the registered adapters and merges their items.
// A failing source is logged and skipped so the others still deliver.
type Aggregator struct {
	adapters []Adapter
	logger   logging.Logger
}

func NewAggregator(logger logging.Logger, adapters ...Adapter) *Aggregator {
	return &Aggregator{adapters: adapters, logger: logger}
}

// Adapters lists the registered sources in registration order.
func (a *Aggregator) Adapters() []Adapter {
	return a.adapters
}

// FetchAll fetches every enabled source concurrently and returns the merged
// item list sorted newest first. enabled == nil means all sources.
func (a *Aggregator) FetchAll(ctx context.Context, enabled map[content.Source]bool) []content.ContentItem {
	var (
		mu    sync.Mutex
		items []content.ContentItem
	)

	g, ctx := errgroup.WithContext(ctx)
	for _, adapter := range a.adapters {
		if enabled != nil && !enabled[adapter.Source()] {
			continue
		}
		adapter := adapter
		g.Go(func() error {
			fetched, err := adapter.Fetch(ctx)
			if err != nil {
				a.logger.WithFields(logging.Fields{
					"source": adapter.Source(),
					"error":  err.Error(),
				}).Warn("Source fetch failed, continuing without it")
				return nil
			}
			mu.Lock()
			items = append(items, fetched...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	content.SortByDateDesc(items)
	return items
}
