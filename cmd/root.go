package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"steam-notion-sync/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var debugFlag bool

// RootCmd runs a full sync when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "steam-notion-sync",
	Short: "Sync a Steam library into a Notion database",
	Long: `Steam Notion Sync reads the owned games of a Steam account, with playtime,
achievements, store metadata and reviews, and writes one row per game into a
Notion database. Existing rows are updated in place.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runSync,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		// Console logger with ISO8601 timestamps, whatever the configured format
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		stop()
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging and write logs to app.log")
}
