package config

import (
	"strings"

	"github.com/spryker-community/echo/pkg/config"
)

// Config stores environment configuration for Echo.
type Config struct {
	Port            string
	StateDBPath     string
	ForumBaseURL    string
	ForumToken      string
	ForumLimit      int
	YouTubeAPIKey   string
	YouTubeChannel  string
	YouTubeQuery    string
	YouTubeMax      int
	BlueSkyID       string
	BlueSkyPassword string
	BlueSkyQuery    string
	BlueSkyLimit    int
	RSSFeeds        []string
	NotifyEmail     string
	SMTPHost        string
	SMTPPort        string
	SMTPUser        string
	SMTPPassword    string
	SMTPFrom        string
	SMTPFromName    string
}

// LoadConfig loads the Echo configuration from environment variables.
// Adapter credentials are optional here; each adapter fails fast on its own
// missing configuration when it is enabled.
func LoadConfig() Config {
	return Config{
		Port:            config.GetEnv("PORT", "18080"),
		StateDBPath:     config.GetEnv("STATE_DB_PATH", "echo.db"),
		ForumBaseURL:    config.GetEnv("FORUM_BASE_URL", ""),
		ForumToken:      config.GetEnv("FORUM_API_TOKEN", ""),
		ForumLimit:      config.GetEnvInt("FORUM_LIMIT", 50),
		YouTubeAPIKey:   config.GetEnv("YOUTUBE_API_KEY", ""),
		YouTubeChannel:  config.GetEnv("YOUTUBE_CHANNEL_ID", ""),
		YouTubeQuery:    config.GetEnv("YOUTUBE_SEARCH_QUERY", "spryker"),
		YouTubeMax:      config.GetEnvInt("YOUTUBE_MAX_RESULTS", 25),
		BlueSkyID:       config.GetEnv("BLUESKY_IDENTIFIER", ""),
		BlueSkyPassword: config.GetEnv("BLUESKY_APP_PASSWORD", ""),
		BlueSkyQuery:    config.GetEnv("BLUESKY_SEARCH_QUERY", "spryker"),
		BlueSkyLimit:    config.GetEnvInt("BLUESKY_LIMIT", 25),
		RSSFeeds:        parseFeedList(config.GetEnv("RSS_FEEDS", "")),
		NotifyEmail:     config.GetEnv("NOTIFY_EMAIL", ""),
		SMTPHost:        config.GetEnv("SMTP_HOST", ""),
		SMTPPort:        config.GetEnv("SMTP_PORT", "587"),
		SMTPUser:        config.GetEnv("SMTP_USER", ""),
		SMTPPassword:    config.GetEnv("SMTP_PASSWORD", ""),
		SMTPFrom:        config.GetEnv("SMTP_FROM", ""),
		SMTPFromName:    config.GetEnv("SMTP_FROM_NAME", "Echo"),
	}
}

func parseFeedList(raw string) []string {
	var feeds []string
	for _, feed := range strings.Split(raw, ",") {
		feed = strings.TrimSpace(feed)
		if feed != "" {
			feeds = append(feeds, feed)
		}
	}
	return feeds
}
