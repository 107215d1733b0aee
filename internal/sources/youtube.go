package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spryker-community/echo/internal/content"
	"github.com/spryker-community/echo/pkg/logging"
)

const youtubeAPIBase = "https://www.googleapis.com/youtube/v3"

// QuotaExceededMarker appears in the error message when the Data API rejects
// a request for quota reasons, so callers can show a dedicated notice.
const QuotaExceededMarker = "YouTube API quota exceeded"

type YouTubeConfig struct {
	APIKey     string
	ChannelID  string
	Query      string
	MaxResults int
}

type youtubeClient struct {
	apiKey string
	base   string
	client *http.Client
	logger logging.Logger
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			PublishedAt  string `json:"publishedAt"`
			ChannelTitle string `json:"channelTitle"`
			Thumbnails   map[string]struct {
				URL string `json:"url"`
			} `json:"thumbnails"`
		} `json:"snippet"`
	} `json:"items"`
}

func (c *youtubeClient) search(ctx context.Context, params url.Values, source content.Source) ([]content.ContentItem, error) {
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("order", "date")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		if resp.StatusCode == http.StatusForbidden && strings.Contains(string(body), "quotaExceeded") {
			return nil, fmt.Errorf("%s: %s", QuotaExceededMarker, resp.Status)
		}
		return nil, fmt.Errorf("YouTube API status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var parsed youtubeSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode YouTube response: %w", err)
	}

	items := make([]content.ContentItem, 0, len(parsed.Items))
	for _, v := range parsed.Items {
		if v.ID.VideoID == "" {
			continue
		}
		published, _ := time.Parse(time.RFC3339, v.Snippet.PublishedAt)

		thumbnails := make(map[string]string, len(v.Snippet.Thumbnails))
		for size, thumb := range v.Snippet.Thumbnails {
			thumbnails[size] = thumb.URL
		}

		items = append(items, content.ContentItem{
			ID:          fmt.Sprintf("%s-%s", source, v.ID.VideoID),
			Title:       v.Snippet.Title,
			Description: v.Snippet.Description,
			URL:         "https://www.youtube.com/watch?v=" + v.ID.VideoID,
			Date:        published,
			Image:       bestThumbnail(thumbnails),
			Source:      source,
			Type:        "video",
			Metadata: content.VideoMetadata{
				ChannelTitle: v.Snippet.ChannelTitle,
				Thumbnails:   thumbnails,
			},
		})
	}
	return items, nil
}

func bestThumbnail(thumbnails map[string]string) string {
	for _, size := range []string{"high", "medium", "default"} {
		if url := thumbnails[size]; url != "" {
			return url
		}
	}
	return ""
}

// YouTubeChannelAdapter lists the latest uploads of one channel.
type YouTubeChannelAdapter struct {
	youtubeClient
	channelID  string
	maxResults int
}

func NewYouTubeChannelAdapter(config YouTubeConfig, logger logging.Logger) (*YouTubeChannelAdapter, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}
	if config.ChannelID == "" {
		return nil, fmt.Errorf("YouTube channel ID is required")
	}
	if config.MaxResults <= 0 {
		config.MaxResults = 25
	}
	return &YouTubeChannelAdapter{
		youtubeClient: youtubeClient{apiKey: config.APIKey, base: youtubeAPIBase, client: newHTTPClient(), logger: logger},
		channelID:     config.ChannelID,
		maxResults:    config.MaxResults,
	}, nil
}

func (a *YouTubeChannelAdapter) Source() content.Source {
	return content.SourceYouTube
}

func (a *YouTubeChannelAdapter) Fetch(ctx context.Context) ([]content.ContentItem, error) {
	params := url.Values{}
	params.Set("channelId", a.channelID)
	params.Set("maxResults", fmt.Sprintf("%d", a.maxResults))
	return a.search(ctx, params, content.SourceYouTube)
}

// YouTubeSearchAdapter runs a keyword search across all of YouTube.
type YouTubeSearchAdapter struct {
	youtubeClient
	query      string
	maxResults int
}

func NewYouTubeSearchAdapter(config YouTubeConfig, logger logging.Logger) (*YouTubeSearchAdapter, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}
	if config.Query == "" {
		return nil, fmt.Errorf("YouTube search query is required")
	}
	if config.MaxResults <= 0 {
		config.MaxResults = 25
	}
	return &YouTubeSearchAdapter{
		youtubeClient: youtubeClient{apiKey: config.APIKey, base: youtubeAPIBase, client: newHTTPClient(), logger: logger},
		query:         config.Query,
		maxResults:    config.MaxResults,
	}, nil
}

func (a *YouTubeSearchAdapter) Source() content.Source {
	return content.SourceYouTubeSearch
}

func (a *YouTubeSearchAdapter) Fetch(ctx context.Context) ([]content.ContentItem, error) {
	params := url.Values{}
	params.Set("q", a.query)
	params.Set("maxResults", fmt.Sprintf("%d", a.maxResults))
	return a.search(ctx, params, content.SourceYouTubeSearch)
}
