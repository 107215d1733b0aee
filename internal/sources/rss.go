package sources

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"

	"github.com/spryker-community/echo/internal/content"
	"github.com/spryker-community/echo/pkg/logging"
)

type RSSConfig struct {
	FeedURLs []string
}

// RSSAdapter parses one or more RSS/Atom feeds into content items.
type RSSAdapter struct {
	config RSSConfig
	parser *gofeed.Parser
	logger logging.Logger
}

func NewRSSAdapter(config RSSConfig, logger logging.Logger) (*RSSAdapter, error) {
	if len(config.FeedURLs) == 0 {
		return nil, fmt.Errorf("at least one RSS feed URL is required")
	}
	parser := gofeed.NewParser()
	parser.Client = newHTTPClient()
	return &RSSAdapter{
		config: config,
		parser: parser,
		logger: logger,
	}, nil
}

func (a *RSSAdapter) Source() content.Source {
	return content.SourceRSS
}

func (a *RSSAdapter) Fetch(ctx context.Context) ([]content.ContentItem, error) {
	var items []content.ContentItem
	for _, feedURL := range a.config.FeedURLs {
		feed, err := a.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
		}
		for _, entry := range feed.Items {
			items = append(items, normalizeRSSItem(feed, entry))
		}
	}
	return items, nil
}

func normalizeRSSItem(feed *gofeed.Feed, entry *gofeed.Item) content.ContentItem {
	id := entry.GUID
	if id == "" {
		id = entry.Link
	}
	if id == "" {
		id = uuid.New().String()
	}

	var published time.Time
	if entry.PublishedParsed != nil {
		published = *entry.PublishedParsed
	} else if entry.UpdatedParsed != nil {
		published = *entry.UpdatedParsed
	}

	var image string
	if entry.Image != nil {
		image = entry.Image.URL
	}

	description := entry.Description
	if description == "" {
		description = entry.Content
	}

	return content.ContentItem{
		ID:          id,
		Title:       StripHTML(entry.Title),
		Description: StripHTML(description),
		URL:         entry.Link,
		Date:        published,
		Image:       image,
		Source:      content.SourceRSS,
		Type:        "article",
		Metadata: content.RSSMetadata{
			FeedTitle:  feed.Title,
			Categories: entry.Categories,
		},
	}
}
