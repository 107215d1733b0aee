package content

import (
	"fmt"
	"sort"
	"time"
)

// Source identifies the feed a content item originated from.
type Source string

const (
	SourceForum         Source = "forum"
	SourceYouTube       Source = "youtube"
	SourceYouTubeSearch Source = "youtube-search"
	SourceBlueSky       Source = "bluesky"
	SourceRSS           Source = "rss"
	SourceGartner       Source = "gartner"
	// SourceGitHub is reserved for a future adapter.
	SourceGitHub Source = "github"
)

// Sources lists every source an adapter can emit today.
var Sources = []Source{
	SourceForum,
	SourceYouTube,
	SourceYouTubeSearch,
	SourceBlueSky,
	SourceRSS,
	SourceGartner,
}

// Metadata is the source-tagged variant attached to a ContentItem. Exactly
// one concrete struct exists per source family; consumers type-switch on the
// concrete type and never reach across variants.
type Metadata interface {
	// matches reports whether this variant is valid for the given source.
	matches(Source) bool
}

// ForumMetadata carries discussion fields from the community forum API.
type ForumMetadata struct {
	CategoryName    string     `json:"categoryName"`
	CommentCount    int        `json:"commentCount"`
	Status          string     `json:"status,omitempty"`
	AttributeStatus string     `json:"attributeStatus,omitempty"`
	Solved          bool       `json:"solved"`
	InProgress      bool       `json:"inProgress"`
	LastCommentAt   *time.Time `json:"lastCommentAt,omitempty"`
	Author          string     `json:"author,omitempty"`
}

func (ForumMetadata) matches(s Source) bool { return s == SourceForum }

// VideoMetadata is shared by the channel-uploads and search adapters.
type VideoMetadata struct {
	ChannelTitle string            `json:"channelTitle"`
	Thumbnails   map[string]string `json:"thumbnails,omitempty"`
}

func (VideoMetadata) matches(s Source) bool {
	return s == SourceYouTube || s == SourceYouTubeSearch
}

// BlueSkyMetadata carries post context from the BlueSky author feed.
type BlueSkyMetadata struct {
	Author     string `json:"author"`
	HasImages  bool   `json:"hasImages"`
	IsReply    bool   `json:"isReply"`
	ParentText string `json:"parentText,omitempty"`
}

func (BlueSkyMetadata) matches(s Source) bool { return s == SourceBlueSky }

// RSSMetadata carries feed-level fields for syndicated items.
type RSSMetadata struct {
	FeedTitle  string   `json:"feedTitle"`
	Categories []string `json:"categories,omitempty"`
}

func (RSSMetadata) matches(s Source) bool { return s == SourceRSS }

// ReviewMetadata carries reviewer descriptors from the static review dataset.
type ReviewMetadata struct {
	Rating           float64 `json:"rating"`
	ReviewerRole     string  `json:"reviewerRole,omitempty"`
	ReviewerIndustry string  `json:"reviewerIndustry,omitempty"`
	ReviewerSize     string  `json:"reviewerSize,omitempty"`
}

func (ReviewMetadata) matches(s Source) bool { return s == SourceGartner }

// ContentItem is the normalized unit every adapter emits. Title and
// Description are plain text with HTML decoded and tags stripped.
type ContentItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Date        time.Time `json:"date"`
	Image       string   `json:"image,omitempty"`
	Source      Source   `json:"source"`
	Type        string   `json:"type,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"`
}

// ValidateMetadata checks the invariant that the metadata variant matches the
// declared source. Items without metadata pass; a mismatched variant is an
// error at the consumption site, never a silent cast.
func (i ContentItem) ValidateMetadata() error {
	if i.Metadata == nil {
		return nil
	}
	if !i.Metadata.matches(i.Source) {
		return fmt.Errorf("metadata variant %T does not match source %q", i.Metadata, i.Source)
	}
	return nil
}

// SortByDateDesc orders items newest first, in place.
func SortByDateDesc(items []ContentItem) {
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Date.After(items[b].Date)
	})
}

// GeneratedPost is the outreach message produced for one item plus its
// provenance. SourceItem is a back-reference; generation never mutates it.
type GeneratedPost struct {
	Content         string      `json:"content"`
	TargetAudiences []Team      `json:"targetAudiences"`
	SourceItem      ContentItem `json:"sourceItem"`
	GeneratedAt     time.Time   `json:"generatedAt"`
}
