package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"

	"steam-notion-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Exporter writes reports to the report bucket.
type Exporter struct {
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
}

// NewExporter creates a new report exporter.
func NewExporter(client storage.Client, cfg storage.Config, logger *zap.Logger) *Exporter {
	return &Exporter{client: client, cfg: cfg, logger: logger}
}

// ObjectKey returns {prefix}/{YYYY-MM-DD}/{run_id}.json for a report.
func ObjectKey(prefix string, r *Report) string {
	return path.Join(prefix, r.StartedAt.Format("2006-01-02"), r.RunID+".json")
}

// Export uploads the report and returns its object key.
func (e *Exporter) Export(ctx context.Context, r *Report) (string, error) {
	if err := storage.EnsureBucket(ctx, e.client, e.cfg.Bucket, e.cfg.Region); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	key := ObjectKey(e.cfg.Prefix, r)
	_, err = e.client.PutObject(ctx, e.cfg.Bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("upload report %s: %w", key, err)
	}

	e.logger.Info("Run report uploaded", zap.String("bucket", e.cfg.Bucket), zap.String("key", key))
	return key, nil
}

// Log writes the summary of a report as one structured line.
func Log(logger *zap.Logger, r *Report) {
	logger.Info("Run report",
		zap.String("run_id", r.RunID),
		zap.Int64("duration_ms", r.DurationMS),
		zap.Bool("dry_run", r.DryRun),
		zap.Bool("interrupted", r.Interrupted),
		zap.Any("summary", r.Summary),
	)
}
