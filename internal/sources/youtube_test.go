package sources

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spryker-community/echo/internal/content"
	"github.com/spryker-community/echo/pkg/logging"
)

const youtubeSearchPayload = `{
	"items": [
		{
			"id": {"videoId": "abc123"},
			"snippet": {
				"title": "Spryker Tutorial: Glue API",
				"description": "An advanced walkthrough of the glue API",
				"publishedAt": "2025-06-10T12:00:00Z",
				"channelTitle": "Spryker",
				"thumbnails": {
					"default": {"url": "https://i.ytimg.com/vi/abc123/default.jpg"},
					"high": {"url": "https://i.ytimg.com/vi/abc123/hqdefault.jpg"}
				}
			}
		}
	]
}`

func TestYouTubeChannelAdapterFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("channelId") != "UC123" {
			t.Errorf("expected channelId, got %q", query.Get("channelId"))
		}
		if query.Get("key") != "api-key" {
			t.Errorf("expected api key, got %q", query.Get("key"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(youtubeSearchPayload))
	}))
	defer server.Close()

	adapter, err := NewYouTubeChannelAdapter(YouTubeConfig{APIKey: "api-key", ChannelID: "UC123"}, logging.NewLogger())
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	adapter.base = server.URL

	items, err := adapter.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.ID != "youtube-abc123" {
		t.Fatalf("unexpected id %q", item.ID)
	}
	if item.URL != "https://www.youtube.com/watch?v=abc123" {
		t.Fatalf("unexpected url %q", item.URL)
	}
	if item.Image != "https://i.ytimg.com/vi/abc123/hqdefault.jpg" {
		t.Fatalf("expected high thumbnail, got %q", item.Image)
	}
	meta, ok := item.Metadata.(content.VideoMetadata)
	if !ok {
		t.Fatalf("expected video metadata, got %T", item.Metadata)
	}
	if meta.ChannelTitle != "Spryker" {
		t.Fatalf("unexpected channel %q", meta.ChannelTitle)
	}
	if err := item.ValidateMetadata(); err != nil {
		t.Fatalf("metadata should validate: %v", err)
	}
}

func TestYouTubeSearchAdapterSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(youtubeSearchPayload))
	}))
	defer server.Close()

	adapter, err := NewYouTubeSearchAdapter(YouTubeConfig{APIKey: "api-key", Query: "spryker"}, logging.NewLogger())
	if err != nil {
		t.Fatalf("new adapter: %v", err)
	}
	adapter.base = server.URL

	items, err := adapter.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if items[0].Source != content.SourceYouTubeSearch {
		t.Fatalf("expected youtube-search source, got %q", items[0].Source)
	}
	if err := items[0].ValidateMetadata(); err != nil {
		t.Fatalf("video metadata must cover the search source: %v", err)
	}
}

func TestYouTubeQuotaExceededMarker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": {"errors": [{"reason": "quotaExceeded"}]}}`))
	}))
	defer server.Close()

	adapter, _ := NewYouTubeChannelAdapter(YouTubeConfig{APIKey: "api-key", ChannelID: "UC123"}, logging.NewLogger())
	adapter.base = server.URL

	_, err := adapter.Fetch(context.Background())
	if err == nil {
		t.Fatal("expected quota error")
	}
	if !strings.Contains(err.Error(), QuotaExceededMarker) {
		t.Fatalf("expected marker in error, got %q", err.Error())
	}
}

func TestYouTubeConfigValidation(t *testing.T) {
	if _, err := NewYouTubeChannelAdapter(YouTubeConfig{ChannelID: "UC123"}, logging.NewLogger()); err == nil {
		t.Fatal("expected missing API key error")
	}
	if _, err := NewYouTubeChannelAdapter(YouTubeConfig{APIKey: "k"}, logging.NewLogger()); err == nil {
		t.Fatal("expected missing channel ID error")
	}
	if _, err := NewYouTubeSearchAdapter(YouTubeConfig{APIKey: "k"}, logging.NewLogger()); err == nil {
		t.Fatal("expected missing query error")
	}
}
