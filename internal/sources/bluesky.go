package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/spryker-community/echo/internal/content"
	"github.com/spryker-community/echo/pkg/logging"
)

const blueskyAPIBase = "https://bsky.social/xrpc"

// sessionTTL is how long a created access token is trusted before the store
// transparently creates a fresh one.
const sessionTTL = 90 * time.Minute

// SessionStore hands out a valid access token, creating or refreshing the
// underlying session as needed. Injectable so tests can substitute a fake.
type SessionStore interface {
	GetOrRefresh(ctx context.Context) (string, error)
}

type createSessionFunc func(ctx context.Context) (string, error)

type sessionStore struct {
	mu        sync.Mutex
	create    createSessionFunc
	token     string
	expiresAt time.Time
	now       func() time.Time
}

// NewSessionStore wraps a session-create call with lazy, expiry-aware caching.
func NewSessionStore(create createSessionFunc) SessionStore {
	return &sessionStore{create: create, now: time.Now}
}

func (s *sessionStore) GetOrRefresh(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.now().Before(s.expiresAt) {
		return s.token, nil
	}

	token, err := s.create(ctx)
	if err != nil {
		return "", fmt.Errorf("create bluesky session: %w", err)
	}
	s.token = token
	s.expiresAt = s.now().Add(sessionTTL)
	return token, nil
}

type BlueSkyConfig struct {
	Identifier string
	Password   string
	Query      string
	Limit      int
}

// BlueSkyAdapter searches public posts through the AT Protocol endpoints.
type BlueSkyAdapter struct {
	config  BlueSkyConfig
	base    string
	client  *http.Client
	session SessionStore
	logger  logging.Logger
}

func NewBlueSkyAdapter(config BlueSkyConfig, logger logging.Logger) (*BlueSkyAdapter, error) {
	if config.Identifier == "" || config.Password == "" {
		return nil, fmt.Errorf("bluesky identifier and app password are required")
	}
	if config.Query == "" {
		config.Query = "spryker"
	}
	if config.Limit <= 0 {
		config.Limit = 25
	}
	a := &BlueSkyAdapter{
		config: config,
		base:   blueskyAPIBase,
		client: newHTTPClient(),
		logger: logger,
	}
	a.session = NewSessionStore(a.createSession)
	return a, nil
}

func (a *BlueSkyAdapter) Source() content.Source {
	return content.SourceBlueSky
}

func (a *BlueSkyAdapter) createSession(ctx context.Context) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"identifier": a.config.Identifier,
		"password":   a.config.Password,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.base+"/com.atproto.server.createSession", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("bluesky auth status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var session struct {
		AccessJwt string `json:"accessJwt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", err
	}
	if session.AccessJwt == "" {
		return "", fmt.Errorf("bluesky auth returned no access token")
	}
	return session.AccessJwt, nil
}

type blueskyPost struct {
	URI    string `json:"uri"`
	Author struct {
		Handle      string `json:"handle"`
		DisplayName string `json:"displayName"`
	} `json:"author"`
	Record struct {
		Text      string `json:"text"`
		CreatedAt string `json:"createdAt"`
		Reply     *struct {
			Parent struct {
				URI string `json:"uri"`
			} `json:"parent"`
		} `json:"reply"`
	} `json:"record"`
	Embed *struct {
		Images []struct {
			Thumb string `json:"thumb"`
		} `json:"images"`
	} `json:"embed"`
}

func (a *BlueSkyAdapter) Fetch(ctx context.Context) ([]content.ContentItem, error) {
	token, err := a.session.GetOrRefresh(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", a.config.Query)
	params.Set("limit", fmt.Sprintf("%d", a.config.Limit))

	var result struct {
		Posts []blueskyPost `json:"posts"`
	}
	if err := a.getJSON(ctx, token, "/app.bsky.feed.searchPosts?"+params.Encode(), &result); err != nil {
		return nil, fmt.Errorf("search bluesky posts: %w", err)
	}

	parents, err := a.fetchParents(ctx, token, result.Posts)
	if err != nil {
		return nil, err
	}

	items := make([]content.ContentItem, 0, len(result.Posts))
	for _, post := range result.Posts {
		created, _ := time.Parse(time.RFC3339, post.Record.CreatedAt)

		meta := content.BlueSkyMetadata{
			Author:    post.Author.Handle,
			HasImages: post.Embed != nil && len(post.Embed.Images) > 0,
			IsReply:   post.Record.Reply != nil,
		}
		if post.Record.Reply != nil {
			meta.ParentText = parents[post.Record.Reply.Parent.URI]
		}

		var image string
		if meta.HasImages {
			image = post.Embed.Images[0].Thumb
		}

		items = append(items, content.ContentItem{
			ID:          post.URI,
			Title:       postTitle(post),
			Description: post.Record.Text,
			URL:         postWebURL(post),
			Date:        created,
			Image:       image,
			Source:      content.SourceBlueSky,
			Type:        "post",
			Metadata:    meta,
		})
	}
	return items, nil
}

// fetchParents resolves the parent text for reply posts in one batched call.
func (a *BlueSkyAdapter) fetchParents(ctx context.Context, token string, posts []blueskyPost) (map[string]string, error) {
	params := url.Values{}
	seen := make(map[string]bool)
	for _, post := range posts {
		if post.Record.Reply == nil {
			continue
		}
		uri := post.Record.Reply.Parent.URI
		if uri == "" || seen[uri] {
			continue
		}
		seen[uri] = true
		params.Add("uris", uri)
	}
	if len(seen) == 0 {
		return nil, nil
	}

	var result struct {
		Posts []blueskyPost `json:"posts"`
	}
	if err := a.getJSON(ctx, token, "/app.bsky.feed.getPosts?"+params.Encode(), &result); err != nil {
		return nil, fmt.Errorf("fetch bluesky thread parents: %w", err)
	}

	parents := make(map[string]string, len(result.Posts))
	for _, post := range result.Posts {
		parents[post.URI] = post.Record.Text
	}
	return parents, nil
}

func (a *BlueSkyAdapter) getJSON(ctx context.Context, token, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("bluesky API status %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func postTitle(post blueskyPost) string {
	runes := []rune(strings.TrimSpace(post.Record.Text))
	if len(runes) > 80 {
		return string(runes[:77]) + "..."
	}
	return string(runes)
}

// postWebURL rewrites an at:// record URI into the public profile link.
func postWebURL(post blueskyPost) string {
	// at://did:plc:xyz/app.bsky.feed.post/rkey
	trimmed := strings.TrimPrefix(post.URI, "at://")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 3 {
		return post.URI
	}
	return fmt.Sprintf("https://bsky.app/profile/%s/post/%s", post.Author.Handle, parts[2])
}
