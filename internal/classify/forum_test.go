package classify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/spryker-community/echo/internal/content"
)

func TestDetermineDiscussionStatusPrecedence(t *testing.T) {
	tests := []struct {
		name string
		meta content.ForumMetadata
		want DiscussionStatus
	}{
		{"explicit status wins", content.ForumMetadata{Status: "solved", AttributeStatus: "open", InProgress: true}, StatusSolved},
		{"attribute status over flags", content.ForumMetadata{AttributeStatus: "solved", Solved: false}, StatusSolved},
		{"solved flag", content.ForumMetadata{Solved: true, InProgress: true}, StatusSolved},
		{"in progress flag", content.ForumMetadata{InProgress: true}, StatusInProgress},
		{"default open", content.ForumMetadata{}, StatusOpen},
		{"unknown explicit falls through", content.ForumMetadata{Status: "weird", AttributeStatus: "in_progress"}, StatusInProgress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetermineDiscussionStatus(tt.meta); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestIsQuestionType(t *testing.T) {
	tests := []struct {
		title string
		body  string
		want  bool
	}{
		{"How to configure cache?", "", true},
		{"Weekly roundup", "Here's what happened", false},
		{"Deployment", "I am stuck on step three", true},
		{"Checkout", "Payment is not working after upgrade", true},
		{"Release notes", "We shipped a new navigation", false},
	}
	for _, tt := range tests {
		if got := IsQuestionType(tt.title, tt.body); got != tt.want {
			t.Fatalf("IsQuestionType(%q, %q) = %v, want %v", tt.title, tt.body, got, tt.want)
		}
	}
}

func forumItem(meta content.ForumMetadata) content.ContentItem {
	return content.ContentItem{
		ID:          "disc-1",
		Title:       "How to configure the cache?",
		Description: "The cache keeps invalidating on every deploy.",
		Source:      content.SourceForum,
		Metadata:    meta,
	}
}

func TestProcessForumContentWithComments(t *testing.T) {
	fetch := func(_ context.Context, discussionID string) ([]Comment, error) {
		if discussionID != "disc-1" {
			t.Fatalf("unexpected discussion id %s", discussionID)
		}
		return []Comment{
			{Author: "alice", Body: "Check your storage config."},
			{Author: "bob", Body: "Same issue here."},
		}, nil
	}

	got, err := ProcessForumContent(context.Background(), forumItem(content.ForumMetadata{CommentCount: 2}), fetch, nil)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if !strings.HasPrefix(got.FullContent, "Original Post:\n") {
		t.Fatalf("expected original post prefix, got %q", got.FullContent)
	}
	if !strings.Contains(got.FullContent, "Discussion Comments:\n") {
		t.Fatalf("expected comments section, got %q", got.FullContent)
	}
	if !strings.Contains(got.FullContent, "Comment by alice:\nCheck your storage config.") {
		t.Fatalf("expected formatted comment, got %q", got.FullContent)
	}
	if got.Directive != directiveQuestionOpen {
		t.Fatalf("expected open-question directive, got %q", got.Directive)
	}
}

func TestProcessForumContentCommentFetchFailure(t *testing.T) {
	fetch := func(_ context.Context, _ string) ([]Comment, error) {
		return nil, errors.New("forum unreachable")
	}
	var warnings []string
	warn := func(msg string) { warnings = append(warnings, msg) }

	got, err := ProcessForumContent(context.Background(), forumItem(content.ForumMetadata{CommentCount: 5}), fetch, warn)
	if err != nil {
		t.Fatalf("expected generation to continue, got %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d", len(warnings))
	}
	if want := "Original Post:\nThe cache keeps invalidating on every deploy."; got.FullContent != want {
		t.Fatalf("expected post-only content %q, got %q", want, got.FullContent)
	}
	if strings.Contains(got.FullContent, "Discussion Comments:") {
		t.Fatalf("expected no comments section, got %q", got.FullContent)
	}
}

func TestProcessForumContentSkipsFetchWithoutComments(t *testing.T) {
	fetch := func(_ context.Context, _ string) ([]Comment, error) {
		t.Fatal("fetch should not be called for zero comments")
		return nil, nil
	}
	if _, err := ProcessForumContent(context.Background(), forumItem(content.ForumMetadata{}), fetch, nil); err != nil {
		t.Fatalf("process: %v", err)
	}
}

func TestProcessForumContentDirectiveByStatus(t *testing.T) {
	tests := []struct {
		meta content.ForumMetadata
		want string
	}{
		{content.ForumMetadata{}, directiveQuestionOpen},
		{content.ForumMetadata{InProgress: true}, directiveQuestionActive},
		{content.ForumMetadata{Solved: true}, directiveQuestionSolved},
	}
	for _, tt := range tests {
		got, err := ProcessForumContent(context.Background(), forumItem(tt.meta), nil, nil)
		if err != nil {
			t.Fatalf("process: %v", err)
		}
		if got.Directive != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got.Directive)
		}
	}
}

func TestProcessForumContentNonQuestionDirective(t *testing.T) {
	item := content.ContentItem{
		ID:          "disc-2",
		Title:       "Community showcase",
		Description: "A roundup of shops built this quarter.",
		Source:      content.SourceForum,
		Metadata:    content.ForumMetadata{},
	}
	got, err := ProcessForumContent(context.Background(), item, nil, nil)
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if got.Directive != directiveDiscussion {
		t.Fatalf("expected discussion directive, got %q", got.Directive)
	}
}

func TestProcessForumContentRejectsWrongMetadata(t *testing.T) {
	item := content.ContentItem{
		ID:       "disc-3",
		Source:   content.SourceForum,
		Metadata: content.RSSMetadata{FeedTitle: "blog"},
	}
	if _, err := ProcessForumContent(context.Background(), item, nil, nil); err == nil {
		t.Fatal("expected metadata mismatch error")
	}
}
