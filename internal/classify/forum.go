package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/spryker-community/echo/internal/content"
)

// DiscussionStatus is the resolution state of a forum discussion.
type DiscussionStatus string

const (
	StatusOpen       DiscussionStatus = "open"
	StatusInProgress DiscussionStatus = "in_progress"
	StatusSolved     DiscussionStatus = "solved"
)

// DetermineDiscussionStatus resolves the discussion status with fixed
// precedence: explicit status field, then attribute status, then the
// solved/in-progress flags, then open.
func DetermineDiscussionStatus(meta content.ForumMetadata) DiscussionStatus {
	if status, ok := parseStatus(meta.Status); ok {
		return status
	}
	if status, ok := parseStatus(meta.AttributeStatus); ok {
		return status
	}
	if meta.Solved {
		return StatusSolved
	}
	if meta.InProgress {
		return StatusInProgress
	}
	return StatusOpen
}

func parseStatus(raw string) (DiscussionStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "open":
		return StatusOpen, true
	case "in_progress", "in progress":
		return StatusInProgress, true
	case "solved":
		return StatusSolved, true
	}
	return "", false
}

// questionIndicators are checked as case-insensitive substrings against the
// concatenated title and body. Any single hit qualifies the post as a
// question. Kept as an ordered list so tests can enumerate it.
var questionIndicators = []string{
	"?",
	"how to",
	"how do",
	"what is",
	"what are",
	"why does",
	"can i",
	"possible to",
	"help with",
	"issue with",
	"problem with",
	"error",
	"trouble",
	"stuck",
	"not working",
	"failed",
	"unable to",
}

// IsQuestionType reports whether the post reads as a question rather than an
// open-ended discussion.
func IsQuestionType(title, body string) bool {
	text := strings.ToLower(title + " " + body)
	for _, indicator := range questionIndicators {
		if strings.Contains(text, indicator) {
			return true
		}
	}
	return false
}

// Comment is one reply on a forum discussion, as returned by the
// comment-retrieval collaborator.
type Comment struct {
	Author string
	Body   string
}

// CommentFetcher retrieves the comments of a discussion by its ID.
type CommentFetcher func(ctx context.Context, discussionID string) ([]Comment, error)

// WarnFunc receives recoverable-warning messages. Fire and forget.
type WarnFunc func(message string)

// ForumClassification is the generation context derived from a forum item.
type ForumClassification struct {
	FullContent string
	Context     string
	Directive   string
	MetaLines   []string
}

const (
	directiveDiscussion     = "Summarize the discussion and highlight why it matters for our teams."
	directiveQuestionOpen   = "This is an unanswered question. Alert the relevant teams that a community member needs help."
	directiveQuestionActive = "This question is being worked on. Summarize the progress of the discussion so far."
	directiveQuestionSolved = "This question was solved. Share the solution and the learnings from the thread."
	directiveQuestionOther  = "Analyze the question and point out where our expertise could help."
)

// ProcessForumContent assembles the full generation context for a forum item.
// A failing comment fetch is the single tolerated partial failure: it is
// reported through warn and generation continues with the original post only.
func ProcessForumContent(ctx context.Context, item content.ContentItem, fetch CommentFetcher, warn WarnFunc) (ForumClassification, error) {
	if err := item.ValidateMetadata(); err != nil {
		return ForumClassification{}, err
	}
	meta, ok := item.Metadata.(content.ForumMetadata)
	if !ok {
		return ForumClassification{}, fmt.Errorf("forum classifier requires forum metadata, got %T", item.Metadata)
	}

	status := DetermineDiscussionStatus(meta)
	isQuestion := IsQuestionType(item.Title, item.Description)

	var comments []Comment
	if meta.CommentCount > 0 && fetch != nil {
		fetched, err := fetch(ctx, item.ID)
		if err != nil {
			if warn != nil {
				warn(fmt.Sprintf("could not load comments for discussion %s: %v", item.ID, err))
			}
		} else {
			comments = fetched
		}
	}

	classification := ForumClassification{
		FullContent: assembleForumContent(item.Description, comments),
		Context:     forumContext(status, isQuestion),
		Directive:   forumDirective(status, isQuestion),
		MetaLines:   forumMetaLines(meta, status, isQuestion),
	}
	return classification, nil
}

func assembleForumContent(description string, comments []Comment) string {
	var b strings.Builder
	b.WriteString("Original Post:\n")
	b.WriteString(description)
	if len(comments) == 0 {
		return b.String()
	}
	b.WriteString("\n\nDiscussion Comments:\n")
	parts := make([]string, 0, len(comments))
	for _, comment := range comments {
		parts = append(parts, fmt.Sprintf("Comment by %s:\n%s", comment.Author, comment.Body))
	}
	b.WriteString(strings.Join(parts, "\n\n"))
	return b.String()
}

func forumDirective(status DiscussionStatus, isQuestion bool) string {
	if !isQuestion {
		return directiveDiscussion
	}
	switch status {
	case StatusOpen:
		return directiveQuestionOpen
	case StatusInProgress:
		return directiveQuestionActive
	case StatusSolved:
		return directiveQuestionSolved
	default:
		return directiveQuestionOther
	}
}

func forumContext(status DiscussionStatus, isQuestion bool) string {
	kind := "discussion"
	if isQuestion {
		kind = "question"
	}
	return fmt.Sprintf("Community forum %s (status: %s)", kind, status)
}

func forumMetaLines(meta content.ForumMetadata, status DiscussionStatus, isQuestion bool) []string {
	lines := []string{
		fmt.Sprintf("Category: %s", meta.CategoryName),
		fmt.Sprintf("Status: %s", status),
		fmt.Sprintf("Comments: %d", meta.CommentCount),
	}
	if isQuestion {
		lines = append(lines, "Type: question")
	} else {
		lines = append(lines, "Type: discussion")
	}
	if meta.Author != "" {
		lines = append(lines, fmt.Sprintf("Author: %s", meta.Author))
	}
	return lines
}
