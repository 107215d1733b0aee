package audience

import (
	"context"
	"fmt"
	"strings"

	"github.com/spryker-community/echo/internal/content"
	"github.com/spryker-community/echo/pkg/llm"
)

const analyzeSystemPrompt = "You route community content to internal teams. " +
	"Reply with a comma-separated list of team names picked only from the provided list. No explanations."

// AnalyzeAudience asks the LLM gateway which teams an item is relevant for.
// The reply is filtered against the team enumeration; when nothing valid
// survives, the first enumerated team is the fallback. Best effort only;
// the rule-based SelectAudience stays the deterministic default.
func AnalyzeAudience(ctx context.Context, provider llm.Provider, item content.ContentItem) ([]content.Team, error) {
	teamNames := make([]string, 0, len(content.AllTeams))
	for _, team := range content.AllTeams {
		teamNames = append(teamNames, string(team))
	}

	reply, err := provider.Complete(ctx, []llm.Message{
		{Role: "system", Content: analyzeSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Content title: %q\nAvailable teams: %s", item.Title, strings.Join(teamNames, ", "))},
	})
	if err != nil {
		return nil, fmt.Errorf("analyze audience: %w", err)
	}

	var teams []content.Team
	seen := make(map[content.Team]bool)
	for _, candidate := range strings.Split(reply, ",") {
		team, ok := content.ParseTeam(candidate)
		if !ok || seen[team] {
			continue
		}
		seen[team] = true
		teams = append(teams, team)
	}
	if len(teams) == 0 {
		teams = append(teams, content.AllTeams[0])
	}
	return teams, nil
}
