// Package config provides configuration management for the sync tool.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file (loaded through godotenv). Defaults live next to each field in
// `default` struct tags and are registered by reflection, so a key exists even when
// no environment variable sets it.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Steam: Web API key, user id, free-game toggle and endpoints
//   - Notion: integration token, database id, API version and column names
//   - Sync: update/filter/dry-run toggles
//   - HTTP: retry budget, retry delay and per-request timeout
//   - Log: logging level, format and debug file sink
//   - Storage: optional S3/MinIO export of run reports
//
// Nested keys map to environment variables by replacing "." with "_"
// (notion.database_id -> NOTION_DATABASE_ID). The historical lowercase toggles
// (include_played_free_games, enable_item_update, enable_filter) are bound
// explicitly through the `env` tag.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
