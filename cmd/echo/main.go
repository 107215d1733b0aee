package main

import (
	"github.com/spryker-community/echo/internal/api"
	echoconfig "github.com/spryker-community/echo/internal/config"
	"github.com/spryker-community/echo/internal/generate"
	"github.com/spryker-community/echo/internal/notify"
	"github.com/spryker-community/echo/internal/sources"
	"github.com/spryker-community/echo/internal/state"
	"github.com/spryker-community/echo/pkg/config"
	"github.com/spryker-community/echo/pkg/email"
	"github.com/spryker-community/echo/pkg/llm"
	"github.com/spryker-community/echo/pkg/logging"
	"github.com/spryker-community/echo/pkg/monitoring"
	"github.com/spryker-community/echo/pkg/server"
	"github.com/spryker-community/echo/pkg/version"
)

func main() {
	// Setup logger
	logger := logging.NewLoggerWithService("echo")

	// Load environment variables
	config.LoadEnv(logger)

	logger.Info("Starting Echo (Community Content Radar)")

	cfg := echoconfig.LoadConfig()

	// Open browse-state database
	store, err := state.Open(cfg.StateDBPath, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to open state database")
	}
	defer func() { _ = store.Close() }()

	// Setup monitoring
	healthChecker := monitoring.NewHealthChecker("echo", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("echo", version.Version, version.GitCommit)

	llmConfig := llm.LoadConfig()
	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"LLM_MODEL":   llmConfig.Model,
		"LLM_API_URL": llmConfig.APIURL,
	}))

	llmProvider, err := llm.NewProvider(llmConfig)
	if err != nil {
		logger.WithError(err).Warn("Failed to initialize LLM provider - post generation disabled")
		llmProvider = nil
	}

	// Register the adapters that have configuration. A missing credential
	// disables that source; the rest of the service keeps running.
	var adapters []sources.Adapter
	var commentFetcher *sources.ForumAdapter

	if cfg.ForumBaseURL != "" {
		forum, err := sources.NewForumAdapter(sources.ForumConfig{
			BaseURL: cfg.ForumBaseURL,
			Token:   cfg.ForumToken,
			Limit:   cfg.ForumLimit,
		}, logger)
		if err != nil {
			logger.WithError(err).Warn("Forum adapter disabled")
		} else {
			adapters = append(adapters, forum)
			commentFetcher = forum
		}
	} else {
		logger.Warn("FORUM_BASE_URL not set - forum source disabled")
	}

	if cfg.YouTubeAPIKey != "" {
		if channel, err := sources.NewYouTubeChannelAdapter(sources.YouTubeConfig{
			APIKey:     cfg.YouTubeAPIKey,
			ChannelID:  cfg.YouTubeChannel,
			MaxResults: cfg.YouTubeMax,
		}, logger); err != nil {
			logger.WithError(err).Warn("YouTube channel adapter disabled")
		} else {
			adapters = append(adapters, channel)
		}

		if search, err := sources.NewYouTubeSearchAdapter(sources.YouTubeConfig{
			APIKey:     cfg.YouTubeAPIKey,
			Query:      cfg.YouTubeQuery,
			MaxResults: cfg.YouTubeMax,
		}, logger); err != nil {
			logger.WithError(err).Warn("YouTube search adapter disabled")
		} else {
			adapters = append(adapters, search)
		}
	} else {
		logger.Warn("YOUTUBE_API_KEY not set - YouTube sources disabled")
	}

	if cfg.BlueSkyID != "" {
		bluesky, err := sources.NewBlueSkyAdapter(sources.BlueSkyConfig{
			Identifier: cfg.BlueSkyID,
			Password:   cfg.BlueSkyPassword,
			Query:      cfg.BlueSkyQuery,
			Limit:      cfg.BlueSkyLimit,
		}, logger)
		if err != nil {
			logger.WithError(err).Warn("BlueSky adapter disabled")
		} else {
			adapters = append(adapters, bluesky)
		}
	} else {
		logger.Warn("BLUESKY_IDENTIFIER not set - BlueSky source disabled")
	}

	if len(cfg.RSSFeeds) > 0 {
		rss, err := sources.NewRSSAdapter(sources.RSSConfig{FeedURLs: cfg.RSSFeeds}, logger)
		if err != nil {
			logger.WithError(err).Warn("RSS adapter disabled")
		} else {
			adapters = append(adapters, rss)
		}
	} else {
		logger.Warn("RSS_FEEDS not set - RSS source disabled")
	}

	reviews, err := sources.NewReviewAdapter()
	if err != nil {
		logger.WithError(err).Warn("Review adapter disabled")
	} else {
		adapters = append(adapters, reviews)
	}

	aggregator := sources.NewAggregator(logger, adapters...)

	orchestratorConfig := generate.OrchestratorConfig{
		LLM:    llmProvider,
		Logger: logger,
		Warn: func(message string) {
			logger.Warn(message)
		},
	}
	if commentFetcher != nil {
		orchestratorConfig.Comments = commentFetcher.Comments
	}
	orchestrator := generate.NewOrchestrator(orchestratorConfig)

	smtpConfig := email.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		FromName: cfg.SMTPFromName,
	}
	publisher := notify.NewEmailPublisher(notify.EmailPublisherConfig{
		Sender: email.NewSender(smtpConfig),
		SMTP:   smtpConfig,
		To:     cfg.NotifyEmail,
		Logger: logger,
	})

	// Setup router with unified monitoring (health/metrics only)
	router := server.SetupServiceRouter(logger, "echo", healthChecker, metricsCollector)
	apiGroup := router.Group("/api")
	api.RegisterRoutes(apiGroup, api.NewHandler(aggregator, store, orchestrator, publisher, logger))

	// Start HTTP server with graceful shutdown
	serverConfig := server.DefaultConfig("echo", cfg.Port)
	if err := server.Start(serverConfig, router, logger); err != nil {
		logger.WithError(err).Fatal("Server startup failed")
	}
}
