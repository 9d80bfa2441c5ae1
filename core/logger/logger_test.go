package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"steam-notion-sync/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  logger.Config
	}{
		{"DebugConsole", logger.Config{Level: "debug", Format: "console"}},
		{"InfoJSON", logger.Config{Level: "info", Format: "json"}},
		{"WarnConsole", logger.Config{Level: "warn", Format: "console"}},
		{"UnknownLevel", logger.Config{Level: "loud", Format: "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(&tt.cfg)
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := logger.New(&logger.Config{Level: "debug", Format: "json", File: path})
	require.NoError(t, err)

	l.Info("hello from test")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello from test")
}

func TestWithDebug(t *testing.T) {
	cfg := logger.WithDebug(logger.Config{Level: "info", Format: "console"})
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, logger.DebugFile, cfg.File)

	cfg = logger.WithDebug(logger.Config{Level: "info", File: "custom.log"})
	assert.Equal(t, "custom.log", cfg.File)
}

func TestMask(t *testing.T) {
	assert.Equal(t, "abcd...", logger.Mask("abcdefgh", 4))
	assert.Equal(t, "ab...", logger.Mask("ab", 4))
}
