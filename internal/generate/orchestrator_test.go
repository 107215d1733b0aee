package generate

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/spryker-community/echo/internal/audience"
	"github.com/spryker-community/echo/internal/classify"
	"github.com/spryker-community/echo/internal/content"
	"github.com/spryker-community/echo/pkg/llm"
)

type fakeGateway struct {
	reply    string
	err      error
	calls    int
	messages []llm.Message
}

func (f *fakeGateway) Complete(_ context.Context, messages []llm.Message) (string, error) {
	f.calls++
	f.messages = messages
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func rssItem() content.ContentItem {
	return content.ContentItem{
		ID:          "rss-1",
		Title:       "Security release 202404.0",
		Description: "Patches for the glue API",
		URL:         "https://example.com/release",
		Source:      content.SourceRSS,
		Metadata:    content.RSSMetadata{FeedTitle: "Spryker Blog"},
	}
}

func TestGenerateRSSPost(t *testing.T) {
	gateway := &fakeGateway{reply: "  🚀 New security release is out!  "}
	o := NewOrchestrator(OrchestratorConfig{LLM: gateway})

	post, err := o.Generate(context.Background(), rssItem())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if post.Content != "🚀 New security release is out!" {
		t.Fatalf("expected trimmed gateway reply, got %q", post.Content)
	}
	if gateway.calls != 1 {
		t.Fatalf("expected one gateway call, got %d", gateway.calls)
	}
	if len(post.TargetAudiences) == 0 {
		t.Fatal("expected non-empty audiences")
	}
	if post.GeneratedAt.IsZero() {
		t.Fatal("expected generation timestamp")
	}

	if len(gateway.messages) != 2 || gateway.messages[0].Role != "system" {
		t.Fatalf("expected system+user messages, got %+v", gateway.messages)
	}
	user := gateway.messages[1].Content
	for _, want := range []string{
		"Title: Security release 202404.0",
		"URL: https://example.com/release",
		"Target audiences:",
		"Avoid these words and phrases:",
		"Formatting guidelines:",
	} {
		if !strings.Contains(user, want) {
			t.Fatalf("expected user prompt to contain %q, got:\n%s", want, user)
		}
	}
}

func TestGenerateAudienceRoundTrip(t *testing.T) {
	gateway := &fakeGateway{reply: "post"}
	o := NewOrchestrator(OrchestratorConfig{LLM: gateway})

	post, err := o.Generate(context.Background(), rssItem())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	// Feeding the source item back through the selector reproduces the
	// audiences the post was generated with.
	if again := audience.SelectAudience(post.SourceItem); !reflect.DeepEqual(again, post.TargetAudiences) {
		t.Fatalf("expected stable audiences, got %v vs %v", again, post.TargetAudiences)
	}
}

func TestGenerateBlueSkyBypassesGateway(t *testing.T) {
	gateway := &fakeGateway{reply: "should not be used"}
	o := NewOrchestrator(OrchestratorConfig{LLM: gateway})

	item := content.ContentItem{
		ID:          "bsky-1",
		Description: "Trying out spryker for a b2b shop",
		URL:         "https://bsky.app/profile/dev/post/1",
		Source:      content.SourceBlueSky,
		Metadata:    content.BlueSkyMetadata{Author: "dev.example"},
	}
	post, err := o.Generate(context.Background(), item)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if gateway.calls != 0 {
		t.Fatalf("expected no gateway calls for bluesky, got %d", gateway.calls)
	}
	if !strings.Contains(post.Content, "Developer sharing their Spryker experience") {
		t.Fatalf("expected social template content, got %q", post.Content)
	}
}

func TestGenerateForumCommentFailureIsRecoverable(t *testing.T) {
	gateway := &fakeGateway{reply: "post"}
	var warnings []string
	o := NewOrchestrator(OrchestratorConfig{
		LLM: gateway,
		Comments: func(_ context.Context, _ string) ([]classify.Comment, error) {
			return nil, errors.New("comments endpoint down")
		},
		Warn: func(msg string) { warnings = append(warnings, msg) },
	})

	item := content.ContentItem{
		ID:          "disc-9",
		Title:       "How to extend the cart?",
		Description: "Need a custom cart expander",
		Source:      content.SourceForum,
		Metadata:    content.ForumMetadata{CategoryName: "Best Practices", CommentCount: 3},
	}
	post, err := o.Generate(context.Background(), item)
	if err != nil {
		t.Fatalf("expected generation to survive comment failure, got %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %d", len(warnings))
	}
	if post.Content != "post" {
		t.Fatalf("unexpected content %q", post.Content)
	}
}

func TestGenerateGatewayErrorPropagates(t *testing.T) {
	gateway := &fakeGateway{err: errors.New("upstream 500")}
	o := NewOrchestrator(OrchestratorConfig{LLM: gateway})

	if _, err := o.Generate(context.Background(), rssItem()); err == nil {
		t.Fatal("expected gateway error to propagate")
	}
}

func TestGenerateRejectsMismatchedMetadata(t *testing.T) {
	o := NewOrchestrator(OrchestratorConfig{LLM: &fakeGateway{reply: "post"}})
	item := content.ContentItem{
		ID:       "bad-1",
		Source:   content.SourceRSS,
		Metadata: content.ForumMetadata{},
	}
	if _, err := o.Generate(context.Background(), item); err == nil {
		t.Fatal("expected metadata mismatch error")
	}
}

func TestGenerateWithoutProvider(t *testing.T) {
	o := NewOrchestrator(OrchestratorConfig{})
	if _, err := o.Generate(context.Background(), rssItem()); err == nil {
		t.Fatal("expected error when LLM provider is not configured")
	}
}
