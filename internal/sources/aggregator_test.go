package sources

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spryker-community/echo/internal/content"
	"github.com/spryker-community/echo/pkg/logging"
)

type fakeAdapter struct {
	source content.Source
	items  []content.ContentItem
	err    error
	calls  int
}

func (f *fakeAdapter) Source() content.Source { return f.source }

func (f *fakeAdapter) Fetch(_ context.Context) ([]content.ContentItem, error) {
	f.calls++
	return f.items, f.err
}

func TestAggregatorMergesAndSorts(t *testing.T) {
	older := content.ContentItem{ID: "a", Source: content.SourceRSS, Date: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)}
	newer := content.ContentItem{ID: "b", Source: content.SourceForum, Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}

	agg := NewAggregator(logging.NewLogger(),
		&fakeAdapter{source: content.SourceRSS, items: []content.ContentItem{older}},
		&fakeAdapter{source: content.SourceForum, items: []content.ContentItem{newer}},
	)

	items := agg.FetchAll(context.Background(), nil)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "b" || items[1].ID != "a" {
		t.Fatalf("expected newest first, got %v then %v", items[0].ID, items[1].ID)
	}
}

func TestAggregatorIsolatesFailures(t *testing.T) {
	ok := &fakeAdapter{source: content.SourceRSS, items: []content.ContentItem{{ID: "a", Source: content.SourceRSS}}}
	broken := &fakeAdapter{source: content.SourceForum, err: errors.New("upstream down")}

	agg := NewAggregator(logging.NewLogger(), ok, broken)
	items := agg.FetchAll(context.Background(), nil)
	if len(items) != 1 || items[0].ID != "a" {
		t.Fatalf("expected the healthy source's item, got %v", items)
	}
}

func TestAggregatorRespectsEnabledSet(t *testing.T) {
	rss := &fakeAdapter{source: content.SourceRSS, items: []content.ContentItem{{ID: "a", Source: content.SourceRSS}}}
	forum := &fakeAdapter{source: content.SourceForum, items: []content.ContentItem{{ID: "b", Source: content.SourceForum}}}

	agg := NewAggregator(logging.NewLogger(), rss, forum)
	items := agg.FetchAll(context.Background(), map[content.Source]bool{content.SourceRSS: true})
	if len(items) != 1 || items[0].ID != "a" {
		t.Fatalf("expected only the enabled source, got %v", items)
	}
	if forum.calls != 0 {
		t.Fatalf("disabled source must not be fetched, got %d calls", forum.calls)
	}
}
