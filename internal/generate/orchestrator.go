package generate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spryker-community/echo/internal/audience"
	"github.com/spryker-community/echo/internal/classify"
	"github.com/spryker-community/echo/internal/content"
	"github.com/spryker-community/echo/pkg/llm"
	"github.com/spryker-community/echo/pkg/logging"
)

const systemPrompt = `You are a helpful assistant that creates engaging internal posts for sharing community content with colleagues.
Write naturally and keep it professional. Avoid filler phrases and unprofessional phrasing.`

// avoidPhrases is passed to the model as generation-avoidance context only.
// It is never used to filter or reject content.
var avoidPhrases = []string{
	"damn", "hell", "crap",
	"politics", "religion",
	"lol", "omg", "gonna", "wanna", "kinda",
	"delve", "dive into", "game-changer", "revolutionize", "unleash",
	"elevate", "seamless", "cutting-edge", "in today's fast-paced world",
	"look no further", "buckle up",
}

var formattingGuidelines = []string{
	"Keep it concise, a few short paragraphs at most.",
	"Emojis are welcome where they fit.",
	"Use an informal but professional tone.",
	"Include the link to the original content.",
	"Explain why this is relevant for the target teams.",
}

// OrchestratorConfig wires the generation collaborators.
type OrchestratorConfig struct {
	LLM      llm.Provider
	Comments classify.CommentFetcher
	Warn     classify.WarnFunc
	Logger   logging.Logger
}

// Orchestrator turns a ContentItem into a GeneratedPost. Stateless between
// calls; callers serialize regenerate requests per item themselves.
type Orchestrator struct {
	llm      llm.Provider
	comments classify.CommentFetcher
	warn     classify.WarnFunc
	logger   logging.Logger
	now      func() time.Time
}

func NewOrchestrator(cfg OrchestratorConfig) *Orchestrator {
	return &Orchestrator{
		llm:      cfg.LLM,
		comments: cfg.Comments,
		warn:     cfg.Warn,
		logger:   cfg.Logger,
		now:      time.Now,
	}
}

// generationContext is the classifier output the prompt is assembled from.
type generationContext struct {
	FullContent string
	Context     string
	Directive   string
	MetaLines   []string
}

// Generate produces the outreach post for one item. BlueSky posts are built
// from the deterministic social template and never hit the LLM; every other
// source goes through classify → audience → prompt → gateway.
func (o *Orchestrator) Generate(ctx context.Context, item content.ContentItem) (content.GeneratedPost, error) {
	if err := item.ValidateMetadata(); err != nil {
		return content.GeneratedPost{}, err
	}

	audiences := audience.SelectAudience(item)

	if item.Source == content.SourceBlueSky {
		message, err := classify.BuildSocialMessage(item)
		if err != nil {
			return content.GeneratedPost{}, fmt.Errorf("build social message: %w", err)
		}
		return o.post(message, audiences, item), nil
	}

	genCtx, err := o.classifyItem(ctx, item)
	if err != nil {
		return content.GeneratedPost{}, err
	}

	if o.llm == nil {
		return content.GeneratedPost{}, fmt.Errorf("LLM provider not configured")
	}

	result, err := o.llm.Complete(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildUserPrompt(item, audiences, genCtx)},
	})
	if err != nil {
		return content.GeneratedPost{}, fmt.Errorf("generate post: %w", err)
	}

	return o.post(strings.TrimSpace(result), audiences, item), nil
}

func (o *Orchestrator) post(message string, audiences []content.Team, item content.ContentItem) content.GeneratedPost {
	return content.GeneratedPost{
		Content:         message,
		TargetAudiences: audiences,
		SourceItem:      item,
		GeneratedAt:     o.now(),
	}
}

func (o *Orchestrator) classifyItem(ctx context.Context, item content.ContentItem) (generationContext, error) {
	switch item.Source {
	case content.SourceForum:
		forum, err := classify.ProcessForumContent(ctx, item, o.comments, o.warn)
		if err != nil {
			return generationContext{}, fmt.Errorf("classify forum item: %w", err)
		}
		return generationContext(forum), nil

	case content.SourceYouTube, content.SourceYouTubeSearch:
		var channel string
		if meta, ok := item.Metadata.(content.VideoMetadata); ok {
			channel = meta.ChannelTitle
		}
		video := classify.ClassifyVideo(item.Title, item.Description, channel)
		return generationContext{
			FullContent: item.Description,
			Context:     video.Context,
			Directive:   video.Directive,
			MetaLines:   video.MetaLines,
		}, nil

	case content.SourceRSS:
		var feed string
		if meta, ok := item.Metadata.(content.RSSMetadata); ok {
			feed = meta.FeedTitle
		}
		rss := classify.ClassifyRSS(item.Title, item.Description, feed)
		return generationContext{
			FullContent: item.Description,
			Context:     rss.Context,
			Directive:   rss.Directive,
			MetaLines:   rss.MetaLines,
		}, nil

	case content.SourceGartner:
		return reviewContext(item), nil

	default:
		return generationContext{}, fmt.Errorf("no classifier for source %q", item.Source)
	}
}

func reviewContext(item content.ContentItem) generationContext {
	genCtx := generationContext{
		FullContent: item.Description,
		Context:     "Analyst platform review",
		Directive:   "Summarize the reviewer's perspective and what we can learn from it.",
	}
	if meta, ok := item.Metadata.(content.ReviewMetadata); ok {
		genCtx.MetaLines = append(genCtx.MetaLines, fmt.Sprintf("Rating: %.1f/5", meta.Rating))
		if meta.ReviewerRole != "" {
			genCtx.MetaLines = append(genCtx.MetaLines, fmt.Sprintf("Reviewer role: %s", meta.ReviewerRole))
		}
		if meta.ReviewerIndustry != "" {
			genCtx.MetaLines = append(genCtx.MetaLines, fmt.Sprintf("Industry: %s", meta.ReviewerIndustry))
		}
		if meta.ReviewerSize != "" {
			genCtx.MetaLines = append(genCtx.MetaLines, fmt.Sprintf("Company size: %s", meta.ReviewerSize))
		}
	}
	return genCtx
}

func buildUserPrompt(item content.ContentItem, audiences []content.Team, genCtx generationContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create an internal post about the following %s content.\n\n", item.Source)
	fmt.Fprintf(&b, "Title: %s\n", item.Title)
	fmt.Fprintf(&b, "URL: %s\n", item.URL)
	if genCtx.Context != "" {
		fmt.Fprintf(&b, "Context: %s\n", genCtx.Context)
	}
	for _, line := range genCtx.MetaLines {
		fmt.Fprintf(&b, "%s\n", line)
	}

	teamNames := make([]string, 0, len(audiences))
	for _, team := range audiences {
		teamNames = append(teamNames, string(team))
	}
	fmt.Fprintf(&b, "Target audiences: %s\n\n", strings.Join(teamNames, ", "))

	b.WriteString("Content:\n")
	b.WriteString(genCtx.FullContent)
	b.WriteString("\n\n")

	if genCtx.Directive != "" {
		fmt.Fprintf(&b, "Instruction: %s\n\n", genCtx.Directive)
	}

	fmt.Fprintf(&b, "Avoid these words and phrases: %s\n\n", strings.Join(avoidPhrases, ", "))

	b.WriteString("Formatting guidelines:\n")
	for _, guideline := range formattingGuidelines {
		fmt.Fprintf(&b, "- %s\n", guideline)
	}

	return b.String()
}
