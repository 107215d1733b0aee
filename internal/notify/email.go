package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/spryker-community/echo/internal/content"
)

func renderDraftEmail(post content.GeneratedPost) (string, error) {
	data := draftEmailData{
		PostText:    post.Content,
		SourceTitle: post.SourceItem.Title,
		SourceURL:   post.SourceItem.URL,
		SourceName:  formatSource(post.SourceItem.Source),
		Audiences:   formatAudiences(post.TargetAudiences),
		GeneratedAt: post.GeneratedAt.UTC().Format("January 2, 2006 at 3:04 PM UTC"),
	}

	tpl, err := template.New("post_draft").Parse(draftEmailTemplate)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}

type draftEmailData struct {
	PostText    string
	SourceTitle string
	SourceURL   string
	SourceName  string
	Audiences   []string
	GeneratedAt string
}

func formatSource(source content.Source) string {
	label := strings.ReplaceAll(string(source), "-", " ")
	return cases.Title(language.English).String(label)
}

func formatAudiences(teams []content.Team) []string {
	names := make([]string, 0, len(teams))
	for _, team := range teams {
		names = append(names, string(team))
	}
	return names
}

const draftEmailTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Post Draft</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0;">
<div style="max-width: 640px; margin: 0 auto; padding: 24px;">

<div style="background-color: #E06D37; color: white; padding: 14px 20px; border-radius: 6px; margin-bottom: 20px;">
    <strong>Echo — Community Post Draft</strong>
</div>

<p>Echo drafted an internal post for you. Copy the text below and share it with the target teams.</p>

<div style="background-color: #f8f9fa; border: 2px solid #E06D37; border-radius: 8px; padding: 20px; margin: 20px 0; font-size: 16px; line-height: 1.5; white-space: pre-wrap;">{{.PostText}}</div>

<h3 style="color: #2c3e50; margin-top: 24px;">Source</h3>
<p><a href="{{.SourceURL}}">{{.SourceTitle}}</a> ({{.SourceName}})</p>

{{if .Audiences}}
<h3 style="color: #2c3e50; margin-top: 24px;">Target teams</h3>
<table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
    {{range .Audiences}}
    <tr>
        <td style="padding: 6px 10px; border-bottom: 1px solid #eee; font-size: 14px;">{{.}}</td>
    </tr>
    {{end}}
</table>
{{end}}

<p style="color: #6c757d; font-size: 12px; margin-top: 30px;">
    Generated at {{.GeneratedAt}}
</p>

</div>
</body>
</html>`
