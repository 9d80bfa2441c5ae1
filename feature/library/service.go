package library

import (
	"context"
	"fmt"

	"steam-notion-sync/core/reconcile"
	"steam-notion-sync/feature/notion"
	"steam-notion-sync/feature/steam"
	"steam-notion-sync/feature/storefront"

	"go.uber.org/zap"
)

// GameSource lists owned games and their achievements.
type GameSource interface {
	GetOwnedGames(ctx context.Context) (*steam.OwnedGames, error)
	GetAchievements(ctx context.Context, game steam.Game) steam.AchievementInfo
}

// StoreSource provides storefront metadata and the user's reviews.
type StoreSource interface {
	GetStoreData(ctx context.Context, game steam.Game) storefront.StoreData
	GetReview(ctx context.Context, steamID string, game steam.Game) string
}

// Database is the Notion side of a sync.
type Database interface {
	PageStore
	ValidateSchema(ctx context.Context) (*notion.SchemaReport, error)
}

// Options are the sync toggles.
type Options struct {
	EnableUpdate bool
	EnableFilter bool
	DryRun       bool
}

// Result is the outcome of a sync run.
type Result struct {
	Schema   *notion.SchemaReport
	Summary  reconcile.Summary
	Outcomes []reconcile.Outcome
	// Interrupted is set when the context was cancelled before every game ran.
	Interrupted bool
}

// Service syncs a Steam library into the games database.
type Service struct {
	games   GameSource
	store   StoreSource
	db      Database
	steamID string
	opts    Options
	logger  *zap.Logger
}

// NewService creates a new sync service.
func NewService(games GameSource, store StoreSource, db Database, steamID string, opts Options, logger *zap.Logger) *Service {
	return &Service{
		games:   games,
		store:   store,
		db:      db,
		steamID: steamID,
		opts:    opts,
		logger:  logger,
	}
}

// Run validates the schema, fetches the library and reconciles every game in
// order. It fails only when the schema or the library cannot be fetched;
// per-game problems are recorded in the result.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	schema, err := s.db.ValidateSchema(ctx)
	if err != nil {
		return nil, fmt.Errorf("validating database structure: %w", err)
	}

	owned, err := s.games.GetOwnedGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching owned games: %w", err)
	}

	adapter := NewAdapter(s.db, schema, s.logger)
	opts := reconcile.Options{EnableUpdate: s.opts.EnableUpdate, DryRun: s.opts.DryRun}
	result := &Result{Schema: schema, Outcomes: make([]reconcile.Outcome, 0, len(owned.Games))}

	for _, game := range owned.Games {
		if ctx.Err() != nil {
			s.logger.Warn("Sync interrupted", zap.Int("remaining", len(owned.Games)-len(result.Outcomes)))
			result.Interrupted = true
			break
		}

		outcome := s.syncGame(ctx, adapter, game, opts)
		result.Summary.Add(outcome)
		result.Outcomes = append(result.Outcomes, outcome)
	}

	s.logger.Info("Sync finished",
		zap.Int("total", result.Summary.Total),
		zap.Int("created", result.Summary.Created),
		zap.Int("updated", result.Summary.Updated),
		zap.Int("skipped", result.Summary.Skipped),
		zap.Int("filtered", result.Summary.Filtered),
		zap.Int("blocked", result.Summary.Blocked),
		zap.Int("failed", result.Summary.Failed),
		zap.Int("planned", result.Summary.Planned),
	)
	return result, nil
}

func (s *Service) syncGame(ctx context.Context, adapter *Adapter, game steam.Game, opts reconcile.Options) reconcile.Outcome {
	l := s.logger.With(zap.String("game", game.Name), zap.Int("appid", game.AppID))

	if game.RTimeLastPlayed == nil {
		l.Info("No last played time, using 0")
	}

	ach := s.games.GetAchievements(ctx, game)

	if s.opts.EnableFilter && !ShouldRecord(game, ach) {
		l.Info("Game filtered out", zap.Float64("hours", PlaytimeHours(game)), zap.Int("achievements", ach.Total))
		return reconcile.Outcome{Action: reconcile.Action{
			Type:   reconcile.ActionFiltered,
			Key:    game.Key(),
			Name:   game.Name,
			Reason: "low engagement",
		}}
	}

	record := Record{
		Game:         game,
		Achievements: ach,
		Review:       s.store.GetReview(ctx, s.steamID, game),
		Store:        s.store.GetStoreData(ctx, game),
	}
	l.Info("Review fetched", zap.String("review", record.Review))

	action := reconcile.Plan(ctx, adapter, record, opts)
	switch action.Type {
	case reconcile.ActionSkip:
		l.Info("Game already exists, updates disabled", zap.String("page_id", action.RecordID))
	case reconcile.ActionBlocked:
		l.Error("Lookup failed, game left untouched", zap.String("reason", action.Reason))
	default:
		if opts.DryRun {
			l.Info("Dry run, not writing", zap.String("action", string(action.Type)), zap.String("reason", action.Reason))
		}
	}

	return reconcile.Apply(ctx, adapter, record, action, opts)
}
