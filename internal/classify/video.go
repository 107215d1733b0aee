package classify

import (
	"fmt"
	"strings"
)

// VideoContentType is the derived format of a video.
type VideoContentType string

const (
	VideoTutorial      VideoContentType = "Tutorial"
	VideoReview        VideoContentType = "Review"
	VideoGuide         VideoContentType = "Guide"
	VideoInformational VideoContentType = "Informational"
)

// VideoComplexity is the derived audience level of a video.
type VideoComplexity string

const (
	ComplexityBeginner     VideoComplexity = "beginner"
	ComplexityIntermediate VideoComplexity = "intermediate"
	ComplexityAdvanced     VideoComplexity = "advanced"
)

// videoFormatKeywords describe how a video presents its content.
var videoFormatKeywords = []string{
	"tutorial",
	"guide",
	"how-to",
	"review",
	"explained",
	"introduction",
	"deep-dive",
	"overview",
	"tips",
	"tricks",
	"best-practices",
	"advanced",
	"beginner",
	"intermediate",
}

// videoDomainKeywords describe what field a video covers.
var videoDomainKeywords = []string{
	"programming",
	"software",
	"development",
	"tech",
	"coding",
	"web",
	"mobile",
	"cloud",
	"ai",
	"machine-learning",
	"data-science",
	"cybersecurity",
	"blockchain",
}

// videoTypeRules resolve the content type by first match, in order.
var videoTypeRules = []struct {
	Type     VideoContentType
	Keywords []string
}{
	{VideoTutorial, []string{"tutorial", "how-to"}},
	{VideoReview, []string{"review"}},
	{VideoGuide, []string{"guide"}},
}

// ExtractVideoKeywords returns the vocabulary keywords found in the title or
// description, in vocabulary order.
func ExtractVideoKeywords(title, description string) []string {
	text := strings.ToLower(title + " " + description)
	var found []string
	for _, keyword := range videoFormatKeywords {
		if strings.Contains(text, keyword) {
			found = append(found, keyword)
		}
	}
	for _, keyword := range videoDomainKeywords {
		if strings.Contains(text, keyword) {
			found = append(found, keyword)
		}
	}
	return found
}

// ResolveVideoComplexity picks the highest complexity keyword present;
// "advanced" wins over "intermediate" when both appear.
func ResolveVideoComplexity(keywords []string) VideoComplexity {
	set := keywordSet(keywords)
	if set["advanced"] {
		return ComplexityAdvanced
	}
	if set["intermediate"] {
		return ComplexityIntermediate
	}
	return ComplexityBeginner
}

// ResolveVideoContentType resolves the content type by the first matching
// rule, falling back to Informational.
func ResolveVideoContentType(keywords []string) VideoContentType {
	set := keywordSet(keywords)
	for _, rule := range videoTypeRules {
		for _, keyword := range rule.Keywords {
			if set[keyword] {
				return rule.Type
			}
		}
	}
	return VideoInformational
}

var videoTypeInstructions = map[VideoContentType]string{
	VideoTutorial:      "Highlight what viewers will learn to build or configure.",
	VideoReview:        "Summarize the reviewer's verdict and what it means for us.",
	VideoGuide:         "Point out which steps of the guide are most relevant to our stack.",
	VideoInformational: "Summarize the key takeaways of the video.",
}

var videoComplexityContext = map[VideoComplexity]string{
	ComplexityBeginner:     "The video targets newcomers, so frame it as an accessible entry point.",
	ComplexityIntermediate: "The video assumes working knowledge, so frame it for practitioners.",
	ComplexityAdvanced:     "The video is advanced material, so frame it for experienced engineers.",
}

// VideoClassification is the generation context derived from a video item.
type VideoClassification struct {
	Keywords    []string
	ContentType VideoContentType
	Complexity  VideoComplexity
	Context     string
	Directive   string
	MetaLines   []string
}

// ClassifyVideo derives type, complexity, and a generation directive from a
// video's title and description.
func ClassifyVideo(title, description, channelTitle string) VideoClassification {
	keywords := ExtractVideoKeywords(title, description)
	contentType := ResolveVideoContentType(keywords)
	complexity := ResolveVideoComplexity(keywords)

	metaLines := []string{
		fmt.Sprintf("Content type: %s", contentType),
		fmt.Sprintf("Complexity: %s", complexity),
	}
	if channelTitle != "" {
		metaLines = append(metaLines, fmt.Sprintf("Channel: %s", channelTitle))
	}
	if len(keywords) > 0 {
		metaLines = append(metaLines, fmt.Sprintf("Keywords: %s", strings.Join(keywords, ", ")))
	}

	return VideoClassification{
		Keywords:    keywords,
		ContentType: contentType,
		Complexity:  complexity,
		Context:     fmt.Sprintf("%s video (%s level)", contentType, complexity),
		Directive:   videoComplexityContext[complexity] + " " + videoTypeInstructions[contentType],
		MetaLines:   metaLines,
	}
}

func keywordSet(keywords []string) map[string]bool {
	set := make(map[string]bool, len(keywords))
	for _, keyword := range keywords {
		set[keyword] = true
	}
	return set
}
