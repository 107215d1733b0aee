package sources

import (
	"strings"

	"golang.org/x/net/html"
)

// StripHTML reduces markup to its visible text. Entities are decoded, tags
// dropped, script and style bodies skipped, whitespace collapsed.
func StripHTML(input string) string {
	if input == "" {
		return ""
	}

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var b strings.Builder
	skipDepth := 0

	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return collapseWhitespace(b.String())
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if isInvisibleTag(string(name)) {
				skipDepth++
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if isInvisibleTag(string(name)) && skipDepth > 0 {
				skipDepth--
			}
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(tokenizer.Text())
				b.WriteByte(' ')
			}
		}
	}
}

func isInvisibleTag(name string) bool {
	return name == "script" || name == "style"
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
