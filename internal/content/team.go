package content

import "strings"

// Team is an organizational destination for a generated post.
type Team string

const (
	TeamEngineering        Team = "Engineering"
	TeamArchitecture       Team = "Architecture"
	TeamSecurity           Team = "Security"
	TeamProduct            Team = "Product"
	TeamCommunity          Team = "Community Team"
	TeamPartnerSuccess     Team = "Partner Success"
	TeamCustomerSuccess    Team = "Customer Success"
	TeamCloudOperations    Team = "Cloud Operations"
	TeamAcademy            Team = "Academy/Training"
	TeamSales              Team = "Sales"
	TeamMarketing          Team = "Marketing"
	TeamTalentAcquisition  Team = "Talent Acquisition"
	TeamCustomerSupport    Team = "Customer Support"
	TeamStrategyOperations Team = "Strategy & Operations"
)

// AllTeams is the closed enumeration, in canonical order. The LLM audience
// analyzer falls back to the first entry when nothing parses.
var AllTeams = []Team{
	TeamEngineering,
	TeamArchitecture,
	TeamSecurity,
	TeamProduct,
	TeamCommunity,
	TeamPartnerSuccess,
	TeamCustomerSuccess,
	TeamCloudOperations,
	TeamAcademy,
	TeamSales,
	TeamMarketing,
	TeamTalentAcquisition,
	TeamCustomerSupport,
	TeamStrategyOperations,
}

// ParseTeam matches a free-form name against the enumeration,
// case-insensitively. The second return reports whether it matched.
func ParseTeam(name string) (Team, bool) {
	trimmed := strings.TrimSpace(name)
	for _, team := range AllTeams {
		if strings.EqualFold(trimmed, string(team)) {
			return team, true
		}
	}
	return "", false
}
