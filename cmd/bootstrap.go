package cmd

import (
	"fmt"

	"steam-notion-sync/core/config"
	"steam-notion-sync/core/logger"
	"steam-notion-sync/core/retry"
	"steam-notion-sync/feature/notion"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// app holds what every command needs once configuration is loaded.
type app struct {
	cfg    *config.Config
	runID  string
	logger *zap.Logger
	http   *retry.Client
	notion *notion.Client
}

func bootstrap() (*app, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if debugFlag {
		cfg.Log = logger.WithDebug(cfg.Log)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	runID := uuid.NewString()
	l = logger.WithRunID(l, runID)

	if err := cfg.Validate(); err != nil {
		_ = l.Sync()
		return nil, err
	}

	l.Debug("Configuration loaded",
		zap.String("steam_api_key", logger.Mask(cfg.Steam.APIKey, 4)),
		zap.String("steam_user_id", cfg.Steam.UserID),
		zap.String("notion_api_key", logger.Mask(cfg.Notion.APIKey, 6)),
		zap.String("notion_database_id", cfg.Notion.DatabaseID),
		zap.Bool("include_played_free_games", cfg.Steam.IncludePlayedFreeGames),
		zap.Bool("enable_item_update", cfg.Sync.EnableItemUpdate),
		zap.Bool("enable_filter", cfg.Sync.EnableFilter),
		zap.Bool("dry_run", cfg.Sync.DryRun),
		zap.Int("max_retries", cfg.HTTP.MaxRetries),
		zap.Duration("retry_delay", cfg.HTTP.RetryDelay),
	)

	httpClient := retry.NewClient(cfg.HTTP, l)

	return &app{
		cfg:    cfg,
		runID:  runID,
		logger: l,
		http:   httpClient,
		notion: notion.NewClient(cfg.Notion, httpClient, l),
	}, nil
}
