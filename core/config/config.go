package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"steam-notion-sync/core/logger"
	"steam-notion-sync/core/retry"
	"steam-notion-sync/core/storage"
	"steam-notion-sync/feature/notion"
	"steam-notion-sync/feature/steam"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingRequired is returned by Validate when a required setting is empty.
var ErrMissingRequired = errors.New("missing required configuration")

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Steam holds credentials and endpoints for the Steam Web API and storefront.
	Steam steam.Config `mapstructure:"steam"`
	// Notion holds credentials, endpoint and column names for the Notion database.
	Notion notion.Config `mapstructure:"notion"`
	// Sync holds the behavioural toggles of a sync run.
	Sync SyncConfig `mapstructure:"sync"`
	// HTTP holds the retry budget shared by outbound calls.
	HTTP retry.Config `mapstructure:"http"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Storage holds configuration for the optional run report export.
	Storage storage.Config `mapstructure:"storage"`
}

// SyncConfig toggles how existing rows and low-engagement games are handled.
type SyncConfig struct {
	// EnableItemUpdate updates rows that already exist instead of skipping them.
	EnableItemUpdate bool `mapstructure:"enable_item_update" default:"true" env:"enable_item_update,ENABLE_ITEM_UPDATE"`
	// EnableFilter skips games that fail the engagement heuristics.
	EnableFilter bool `mapstructure:"enable_filter" default:"false" env:"enable_filter,ENABLE_FILTER"`
	// DryRun plans every action but never writes to Notion.
	DryRun bool `mapstructure:"dry_run" default:"false"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. CI runners)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	if err := bindValues(v, Config{}, ""); err != nil {
		return nil, err
	}

	// STEAM_API_KEY -> steam.api_key
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		stringToBoolHook(),
	))
	if err := v.Unmarshal(&config, hooks); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}

	return &config, nil
}

// Validate reports every required setting that is still empty.
func (c *Config) Validate() error {
	required := map[string]string{
		"STEAM_API_KEY":      c.Steam.APIKey,
		"STEAM_USER_ID":      c.Steam.UserID,
		"NOTION_API_KEY":     c.Notion.APIKey,
		"NOTION_DATABASE_ID": c.Notion.DatabaseID,
	}

	var missing []string
	for _, name := range []string{"STEAM_API_KEY", "STEAM_USER_ID", "NOTION_API_KEY", "NOTION_DATABASE_ID"} {
		if strings.TrimSpace(required[name]) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingRequired, strings.Join(missing, ", "))
	}
	return nil
}

// stringToBoolHook reads a toggle as true only when it spells "true" (any
// case). Other values such as "yes" or "1" are false instead of an error.
func stringToBoolHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.Bool {
			return data, nil
		}
		return strings.EqualFold(strings.TrimSpace(data.(string)), "true"), nil
	}
}

// bindValues walks the struct and registers every key with Viper, using the
// 'default' tag as its default value and the optional 'env' tag as explicit
// environment variable names (needed for the lowercase toggles).
func bindValues(v *viper.Viper, iface any, prefix string) error {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			if err := bindValues(v, reflect.New(field.Type).Elem().Interface(), key); err != nil {
				return err
			}
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))

		if names := field.Tag.Get("env"); names != "" {
			input := append([]string{key}, strings.Split(names, ",")...)
			if err := v.BindEnv(input...); err != nil {
				return fmt.Errorf("bind env for %s: %w", key, err)
			}
		}
	}
	return nil
}
