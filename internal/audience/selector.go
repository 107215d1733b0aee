package audience

import (
	"strings"

	"github.com/spryker-community/echo/internal/content"
)

// forumCategoryRules map a forum category (matched case-insensitively) to
// its teams. An unrecognized category contributes nothing.
var forumCategoryRules = []struct {
	Category string
	Teams    []content.Team
}{
	{"best practices", []content.Team{content.TeamEngineering, content.TeamArchitecture}},
	{"cloud", []content.Team{content.TeamCloudOperations, content.TeamEngineering}},
	{"marketplace", []content.Team{content.TeamProduct, content.TeamEngineering}},
	{"community", []content.Team{content.TeamCommunity, content.TeamPartnerSuccess}},
}

// keywordRules scan the concatenated title and description. Checks are
// independent; several rules can fire for one item.
var keywordRules = []struct {
	Keywords []string
	Teams    []content.Team
}{
	{[]string{"security"}, []content.Team{content.TeamSecurity}},
	{[]string{"training", "learn"}, []content.Team{content.TeamAcademy}},
	{[]string{"partner", "integration"}, []content.Team{content.TeamPartnerSuccess}},
	{[]string{"customer"}, []content.Team{content.TeamCustomerSuccess}},
	{[]string{"architecture"}, []content.Team{content.TeamArchitecture}},
	{[]string{"cloud"}, []content.Team{content.TeamCloudOperations}},
	{[]string{"symfony", "framework"}, []content.Team{content.TeamArchitecture}},
	{[]string{"spryker"}, []content.Team{content.TeamEngineering, content.TeamArchitecture}},
}

// SelectAudience maps an item to its target teams. The result is never
// empty, keeps insertion order, and suppresses duplicates. Pure function of
// the item, so repeated calls yield identical output.
func SelectAudience(item content.ContentItem) []content.Team {
	var teams []content.Team
	seen := make(map[content.Team]bool)
	add := func(candidates ...content.Team) {
		for _, team := range candidates {
			if !seen[team] {
				seen[team] = true
				teams = append(teams, team)
			}
		}
	}

	if item.Source == content.SourceForum {
		if meta, ok := item.Metadata.(content.ForumMetadata); ok {
			category := strings.ToLower(strings.TrimSpace(meta.CategoryName))
			for _, rule := range forumCategoryRules {
				if category == rule.Category {
					add(rule.Teams...)
				}
			}
		}
	}

	text := strings.ToLower(item.Title + " " + item.Description)
	for _, rule := range keywordRules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(text, keyword) {
				add(rule.Teams...)
				break
			}
		}
	}

	if len(teams) == 0 {
		teams = append(teams, content.TeamEngineering)
	}
	return teams
}
