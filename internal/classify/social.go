package classify

import (
	"fmt"
	"strings"

	"github.com/spryker-community/echo/internal/content"
)

// frameworkMentions are the web frameworks we watch for in BlueSky posts.
// Matched as case-insensitive substrings.
var frameworkMentions = []string{
	"itk",
	"symfony",
	"laravel",
	"zend",
	"yii",
	"spryker",
	"code igniter",
}

// comparisonMarkers signal that a thread parent frames a framework
// comparison.
var comparisonMarkers = []string{
	"vs",
	"versus",
	"compared to",
	"better than",
	"prefer",
	"switched from",
}

// DetectFrameworks returns the framework mentions found in the text, in
// watchlist order.
func DetectFrameworks(text string) []string {
	lowered := strings.ToLower(text)
	var found []string
	for _, framework := range frameworkMentions {
		if strings.Contains(lowered, framework) {
			found = append(found, framework)
		}
	}
	return found
}

// HasComparisonFraming reports whether the text frames a comparison between
// frameworks.
func HasComparisonFraming(text string) bool {
	lowered := strings.ToLower(text)
	for _, marker := range comparisonMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}

// BuildSocialMessage synthesizes a ready-to-share message for a BlueSky post.
// Unlike the other classifiers this is the whole generation step: the output
// is deterministic template text, no LLM involved.
func BuildSocialMessage(item content.ContentItem) (string, error) {
	if err := item.ValidateMetadata(); err != nil {
		return "", err
	}
	meta, ok := item.Metadata.(content.BlueSkyMetadata)
	if !ok {
		return "", fmt.Errorf("social builder requires bluesky metadata, got %T", item.Metadata)
	}

	postFrameworks := DetectFrameworks(item.Description)
	var parentFrameworks []string
	if meta.IsReply {
		parentFrameworks = DetectFrameworks(meta.ParentText)
	}
	combined := unionFrameworks(postFrameworks, parentFrameworks)

	var b strings.Builder
	if meta.Author != "" {
		fmt.Fprintf(&b, "🦋 BlueSky post by @%s:\n", meta.Author)
	} else {
		b.WriteString("🦋 BlueSky post:\n")
	}
	fmt.Fprintf(&b, "%q", item.Description)

	if insight := frameworkInsight(combined, parentFrameworks); insight != "" {
		b.WriteString("\n\n")
		b.WriteString(insight)
	}

	if meta.IsReply && HasComparisonFraming(meta.ParentText) {
		b.WriteString("\n\nThe thread is comparing frameworks, so this is a good moment to join the conversation.")
	}

	if item.URL != "" {
		fmt.Fprintf(&b, "\n\n🔗 %s", item.URL)
	}
	return b.String(), nil
}

// frameworkInsight describes the author's framework journey relative to
// Spryker adoption. Empty when Spryker is not part of the picture.
func frameworkInsight(combined, parentFrameworks []string) string {
	if !containsFramework(combined, "spryker") {
		return ""
	}

	// Symfony alongside Spryker gets its own phrasing because Spryker is
	// built on Symfony.
	if containsFramework(combined, "symfony") {
		return "Developer with a Symfony background looking at Spryker — a natural step given Spryker's Symfony foundation."
	}

	others := otherFrameworks(combined)
	if len(others) > 0 && len(parentFrameworks) > 0 {
		return fmt.Sprintf("Developer discussing a move from %s to Spryker.", strings.Join(others, ", "))
	}
	if len(others) > 0 {
		return fmt.Sprintf("Developer weighing Spryker against %s.", strings.Join(others, ", "))
	}
	return "Developer sharing their Spryker experience."
}

func otherFrameworks(frameworks []string) []string {
	var others []string
	for _, framework := range frameworks {
		if framework != "spryker" {
			others = append(others, framework)
		}
	}
	return others
}

func containsFramework(frameworks []string, name string) bool {
	for _, framework := range frameworks {
		if framework == name {
			return true
		}
	}
	return false
}

func unionFrameworks(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var union []string
	for _, framework := range append(append([]string{}, a...), b...) {
		if !seen[framework] {
			seen[framework] = true
			union = append(union, framework)
		}
	}
	return union
}
