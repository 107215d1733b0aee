package notify

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spryker-community/echo/internal/content"
	"github.com/spryker-community/echo/pkg/email"
	"github.com/spryker-community/echo/pkg/logging"
)

func samplePost() content.GeneratedPost {
	return content.GeneratedPost{
		Content:         "🚀 New security release is out!\nCheck the details.",
		TargetAudiences: []content.Team{content.TeamEngineering, content.TeamSecurity},
		SourceItem: content.ContentItem{
			ID:     "rss-1",
			Title:  "Security release 202404.0",
			URL:    "https://spryker.com/blog/security-release",
			Source: content.SourceRSS,
		},
		GeneratedAt: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestRenderDraftEmail(t *testing.T) {
	body, err := renderDraftEmail(samplePost())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"New security release is out!",
		"https://spryker.com/blog/security-release",
		"Security release 202404.0",
		"Rss",
		"Engineering",
		"Security",
		"June 10, 2025",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q", want)
		}
	}
}

func TestRenderDraftEmailEscapesMarkup(t *testing.T) {
	post := samplePost()
	post.Content = `<script>alert("x")</script>`
	body, err := renderDraftEmail(post)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(body, "<script>alert") {
		t.Fatal("expected post text to be HTML-escaped")
	}
}

func TestFormatSource(t *testing.T) {
	if got := formatSource(content.SourceYouTubeSearch); got != "Youtube Search" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestPublishSkipsWithoutSMTP(t *testing.T) {
	publisher := NewEmailPublisher(EmailPublisherConfig{
		Sender: email.NewSender(email.Config{}),
		SMTP:   email.Config{},
		To:     "devrel@example.com",
		Logger: logging.NewLogger(),
	})
	if err := publisher.Publish(context.Background(), samplePost()); err != nil {
		t.Fatalf("expected silent skip, got %v", err)
	}
}

func TestPublishSkipsWithoutRecipient(t *testing.T) {
	publisher := NewEmailPublisher(EmailPublisherConfig{
		Sender: email.NewSender(email.Config{Host: "smtp.example.com", From: "echo@example.com"}),
		SMTP:   email.Config{Host: "smtp.example.com", From: "echo@example.com"},
		Logger: logging.NewLogger(),
	})
	if err := publisher.Publish(context.Background(), samplePost()); err != nil {
		t.Fatalf("expected silent skip, got %v", err)
	}
}
