package report

import (
	"time"

	"steam-notion-sync/core/reconcile"
	"steam-notion-sync/feature/library"
)

// Report is the record of one sync run.
type Report struct {
	RunID       string            `json:"run_id"`
	StartedAt   time.Time         `json:"started_at"`
	FinishedAt  time.Time         `json:"finished_at"`
	DurationMS  int64             `json:"duration_ms"`
	DryRun      bool              `json:"dry_run"`
	Interrupted bool              `json:"interrupted"`
	Schema      *SchemaSummary    `json:"schema,omitempty"`
	Summary     reconcile.Summary `json:"summary"`
	Games       []Game            `json:"games"`
}

// SchemaSummary lists the schema problems found at startup.
type SchemaSummary struct {
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
}

// Game is the outcome of one game.
type Game struct {
	AppID   string `json:"appid"`
	Name    string `json:"name"`
	Action  string `json:"action"`
	Applied bool   `json:"applied"`
	PageID  string `json:"page_id,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Error   string `json:"error,omitempty"`
}

// New builds the report of a finished run.
func New(runID string, started, finished time.Time, dryRun bool, result *library.Result) *Report {
	r := &Report{
		RunID:       runID,
		StartedAt:   started,
		FinishedAt:  finished,
		DurationMS:  finished.Sub(started).Milliseconds(),
		DryRun:      dryRun,
		Interrupted: result.Interrupted,
		Summary:     result.Summary,
		Games:       make([]Game, 0, len(result.Outcomes)),
	}

	if result.Schema != nil {
		r.Schema = &SchemaSummary{
			Matched:        result.Schema.Matched,
			MissingColumns: result.Schema.MissingColumns,
			TypeMismatches: result.Schema.TypeMismatches,
		}
	}

	for _, o := range result.Outcomes {
		r.Games = append(r.Games, Game{
			AppID:   o.Action.Key,
			Name:    o.Action.Name,
			Action:  string(o.Action.Type),
			Applied: o.Applied,
			PageID:  o.Action.RecordID,
			Reason:  o.Action.Reason,
			Error:   o.Error,
		})
	}
	return r
}
