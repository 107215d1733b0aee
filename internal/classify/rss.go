package classify

import (
	"fmt"
	"strings"
)

// RSSContentType is the derived category of a syndicated item.
type RSSContentType string

const (
	RSSRelease      RSSContentType = "release"
	RSSAnnouncement RSSContentType = "announcement"
	RSSUpdate       RSSContentType = "update"
	RSSNews         RSSContentType = "news"
	RSSGeneral      RSSContentType = "general"
)

// RSSPriority is the derived urgency of a syndicated item.
type RSSPriority string

const (
	PriorityHigh   RSSPriority = "high"
	PriorityMedium RSSPriority = "medium"
	PriorityLow    RSSPriority = "low"
)

// rssKeywords is the extraction vocabulary for syndicated items.
var rssKeywords = []string{
	"release",
	"update",
	"announcement",
	"news",
	"feature",
	"improvement",
	"fix",
	"security",
	"performance",
	"enhancement",
	"breaking change",
	"deprecation",
	"new version",
}

// rssTypeRules resolve the content type by first match, in order. The
// release rule also fires on bare "version" mentions.
var rssTypeRules = []struct {
	Type     RSSContentType
	Keywords []string
}{
	{RSSRelease, []string{"release", "version"}},
	{RSSAnnouncement, []string{"announcement"}},
	{RSSUpdate, []string{"update"}},
	{RSSNews, []string{"news"}},
}

// High-priority markers are checked before low-priority ones, so an item
// mentioning both "security" and "patch" stays high.
var (
	rssHighPriorityMarkers = []string{"security", "breaking change", "critical", "urgent"}
	rssLowPriorityMarkers  = []string{"minor", "patch", "documentation"}
)

// ExtractRSSKeywords returns the vocabulary keywords found in the text, in
// vocabulary order.
func ExtractRSSKeywords(title, description string) []string {
	text := strings.ToLower(title + " " + description)
	var found []string
	for _, keyword := range rssKeywords {
		if strings.Contains(text, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

// ResolveRSSContentType resolves the content type of an item by the first
// matching rule, falling back to general.
func ResolveRSSContentType(title, description string) RSSContentType {
	text := strings.ToLower(title + " " + description)
	for _, rule := range rssTypeRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				return rule.Type
			}
		}
	}
	return RSSGeneral
}

// ResolveRSSPriority resolves urgency from disjoint marker sets.
func ResolveRSSPriority(title, description string) RSSPriority {
	text := strings.ToLower(title + " " + description)
	for _, marker := range rssHighPriorityMarkers {
		if strings.Contains(text, marker) {
			return PriorityHigh
		}
	}
	for _, marker := range rssLowPriorityMarkers {
		if strings.Contains(text, marker) {
			return PriorityLow
		}
	}
	return PriorityMedium
}

var rssPrioritySentences = map[RSSPriority]string{
	PriorityHigh:   "This item is time-sensitive and should reach the teams quickly.",
	PriorityMedium: "This item is routine news for the teams.",
	PriorityLow:    "This item is low urgency and informational only.",
}

var rssTypeInstructions = map[RSSContentType]string{
	RSSRelease:      "Summarize what shipped in this release and who should care.",
	RSSAnnouncement: "Relay the announcement and its impact on our work.",
	RSSUpdate:       "Summarize what changed and whether any action is needed.",
	RSSNews:         "Summarize the news and its relevance to our platform.",
	RSSGeneral:      "Summarize the article and why it is worth a read.",
}

// RSSClassification is the generation context derived from an RSS item.
type RSSClassification struct {
	Keywords    []string
	ContentType RSSContentType
	Priority    RSSPriority
	Context     string
	Directive   string
	MetaLines   []string
}

// ClassifyRSS derives type, priority, and a generation directive from an RSS
// item's title and description.
func ClassifyRSS(title, description, feedTitle string) RSSClassification {
	keywords := ExtractRSSKeywords(title, description)
	contentType := ResolveRSSContentType(title, description)
	priority := ResolveRSSPriority(title, description)

	metaLines := []string{
		fmt.Sprintf("Content type: %s", contentType),
		fmt.Sprintf("Priority: %s", priority),
	}
	if feedTitle != "" {
		metaLines = append(metaLines, fmt.Sprintf("Feed: %s", feedTitle))
	}
	if len(keywords) > 0 {
		metaLines = append(metaLines, fmt.Sprintf("Keywords: %s", strings.Join(keywords, ", ")))
	}

	return RSSClassification{
		Keywords:    keywords,
		ContentType: contentType,
		Priority:    priority,
		Context:     fmt.Sprintf("RSS %s (%s priority)", contentType, priority),
		Directive:   rssPrioritySentences[priority] + " " + rssTypeInstructions[contentType],
		MetaLines:   metaLines,
	}
}
