package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugFile is the file sink enabled by the --debug flag when none is configured.
const DebugFile = "app.log"

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
			config.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	// Set format based on configuration
	if cfg.Format == "console" {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.File != "" {
		config.OutputPaths = append(config.OutputPaths, cfg.File)
	}

	return config.Build()
}

// WithDebug returns a copy of cfg forced to debug level with a file sink,
// which is what the --debug flag asks for.
func WithDebug(cfg Config) Config {
	cfg.Level = "debug"
	if cfg.File == "" {
		cfg.File = DebugFile
	}
	return cfg
}

// WithRunID returns a logger with the run_id field set.
func WithRunID(l *zap.Logger, runID string) *zap.Logger {
	if runID == "" {
		return l
	}
	return l.With(zap.String("run_id", runID))
}

// Mask keeps the first n characters of a secret so it can be logged.
func Mask(secret string, n int) string {
	if len(secret) <= n {
		return secret + "..."
	}
	return secret[:n] + "..."
}
