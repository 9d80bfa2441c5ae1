package cmd

import (
	"time"

	"steam-notion-sync/core/storage"
	"steam-notion-sync/feature/library"
	"steam-notion-sync/feature/report"
	"steam-notion-sync/feature/steam"
	"steam-notion-sync/feature/storefront"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	started := time.Now()

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	a.logger.Info("Starting Steam library sync")

	svc := library.NewService(
		steam.NewClient(a.cfg.Steam, a.http, a.logger),
		storefront.NewClient(a.cfg.Steam, a.http, a.logger),
		a.notion,
		a.cfg.Steam.UserID,
		library.Options{
			EnableUpdate: a.cfg.Sync.EnableItemUpdate,
			EnableFilter: a.cfg.Sync.EnableFilter,
			DryRun:       a.cfg.Sync.DryRun,
		},
		a.logger,
	)

	result, err := svc.Run(ctx)
	if err != nil {
		return err
	}

	r := report.New(a.runID, started, time.Now(), a.cfg.Sync.DryRun, result)
	report.Log(a.logger, r)

	if a.cfg.Storage.Enabled {
		client, err := storage.NewClient(a.cfg.Storage)
		if err != nil {
			a.logger.Warn("Report storage unavailable", zap.Error(err))
			return nil
		}
		// The sync already happened; a failed upload is only reported.
		if _, err := report.NewExporter(client, a.cfg.Storage, a.logger).Export(ctx, r); err != nil {
			a.logger.Warn("Run report upload failed", zap.Error(err))
		}
	}

	if result.Interrupted {
		a.logger.Warn("Sync stopped before every game was processed")
	}
	return nil
}
