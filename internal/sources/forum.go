package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spryker-community/echo/internal/classify"
	"github.com/spryker-community/echo/internal/content"
	"github.com/spryker-community/echo/pkg/logging"
)

// discussionTypeIndicators is the coarse list used while normalizing feed
// items. The generation layer keeps its own, longer question list; the two
// serve different purposes and are maintained separately.
var discussionTypeIndicators = []string{
	"?",
	"how",
	"what",
	"why",
	"help",
	"anyone",
	"question",
	"issue",
	"problem",
}

// DetermineDiscussionType tags a discussion as "question" or "discussion"
// from its title and body text.
func DetermineDiscussionType(title, body string) string {
	haystack := strings.ToLower(title + " " + body)
	for _, indicator := range discussionTypeIndicators {
		if strings.Contains(haystack, indicator) {
			return "question"
		}
	}
	return "discussion"
}

type ForumConfig struct {
	BaseURL string
	Token   string
	Limit   int
}

// ForumAdapter reads discussions from a Vanilla forum API.
type ForumAdapter struct {
	config ForumConfig
	client *http.Client
	logger logging.Logger
}

func NewForumAdapter(config ForumConfig, logger logging.Logger) (*ForumAdapter, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("forum base URL is required")
	}
	if config.Limit <= 0 {
		config.Limit = 50
	}
	return &ForumAdapter{
		config: config,
		client: newHTTPClient(),
		logger: logger,
	}, nil
}

func (a *ForumAdapter) Source() content.Source {
	return content.SourceForum
}

type forumDiscussion struct {
	DiscussionID    int    `json:"discussionID"`
	Name            string `json:"name"`
	Body            string `json:"body"`
	URL             string `json:"url"`
	DateInserted    string `json:"dateInserted"`
	DateLastComment string `json:"dateLastComment"`
	CountComments   int    `json:"countComments"`
	Status          string `json:"status"`
	Closed          bool   `json:"closed"`
	Category        struct {
		Name string `json:"name"`
	} `json:"category"`
	InsertUser struct {
		Name string `json:"name"`
	} `json:"insertUser"`
	Attributes struct {
		Status string `json:"status"`
	} `json:"attributes"`
}

type forumComment struct {
	Body       string `json:"body"`
	InsertUser struct {
		Name string `json:"name"`
	} `json:"insertUser"`
}

func (a *ForumAdapter) Fetch(ctx context.Context) ([]content.ContentItem, error) {
	url := fmt.Sprintf("%s/api/v2/discussions?expand=category,insertUser&limit=%d", strings.TrimSuffix(a.config.BaseURL, "/"), a.config.Limit)

	var discussions []forumDiscussion
	if err := a.getJSON(ctx, url, &discussions); err != nil {
		return nil, fmt.Errorf("fetch forum discussions: %w", err)
	}

	items := make([]content.ContentItem, 0, len(discussions))
	for _, d := range discussions {
		title := StripHTML(d.Name)
		body := StripHTML(d.Body)

		item := content.ContentItem{
			ID:          fmt.Sprintf("forum-%d", d.DiscussionID),
			Title:       title,
			Description: body,
			URL:         d.URL,
			Date:        parseForumDate(d.DateInserted),
			Source:      content.SourceForum,
			Type:        DetermineDiscussionType(title, body),
			Metadata: content.ForumMetadata{
				CategoryName:    d.Category.Name,
				CommentCount:    d.CountComments,
				Status:          d.Status,
				AttributeStatus: d.Attributes.Status,
				Solved:          strings.EqualFold(d.Status, "solved"),
				InProgress:      !d.Closed && d.CountComments > 0,
				LastCommentAt:   parseForumDatePtr(d.DateLastComment),
				Author:          d.InsertUser.Name,
			},
		}
		items = append(items, item)
	}
	return items, nil
}

// Comments satisfies the classify comment-fetcher contract. The discussion ID
// is the normalized item ID, so the "forum-" prefix is stripped before the
// upstream call.
func (a *ForumAdapter) Comments(ctx context.Context, discussionID string) ([]classify.Comment, error) {
	id := strings.TrimPrefix(discussionID, "forum-")
	url := fmt.Sprintf("%s/api/v2/comments?discussionID=%s&expand=insertUser&limit=100", strings.TrimSuffix(a.config.BaseURL, "/"), id)

	var raw []forumComment
	if err := a.getJSON(ctx, url, &raw); err != nil {
		return nil, fmt.Errorf("fetch forum comments: %w", err)
	}

	comments := make([]classify.Comment, 0, len(raw))
	for _, c := range raw {
		comments = append(comments, classify.Comment{
			Author: c.InsertUser.Name,
			Body:   StripHTML(c.Body),
		})
	}
	return comments, nil
}

func (a *ForumAdapter) getJSON(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if a.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+a.config.Token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("forum API status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func parseForumDate(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseForumDatePtr(value string) *time.Time {
	if value == "" {
		return nil
	}
	t := parseForumDate(value)
	if t.IsZero() {
		return nil
	}
	return &t
}
