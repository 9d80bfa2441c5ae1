package library

import (
	"context"

	"steam-notion-sync/core/reconcile"
	"steam-notion-sync/feature/notion"

	"go.uber.org/zap"
)

// PageStore is the part of the Notion client the adapter needs.
type PageStore interface {
	QueryDatabase(ctx context.Context, q notion.Query) ([]notion.Page, error)
	CreatePage(ctx context.Context, page notion.PageWrite) (*notion.Page, error)
	UpdatePage(ctx context.Context, pageID string, page notion.PageWrite) (*notion.Page, error)
}

// Adapter reconciles records against the games database.
type Adapter struct {
	store  PageStore
	schema *notion.SchemaReport
	logger *zap.Logger
}

var _ reconcile.Adapter[Record] = (*Adapter)(nil)

// NewAdapter creates an adapter for a validated schema.
func NewAdapter(store PageStore, schema *notion.SchemaReport, logger *zap.Logger) *Adapter {
	return &Adapter{store: store, schema: schema, logger: logger}
}

func (a *Adapter) Key(r Record) string {
	return r.Game.Key()
}

func (a *Adapter) DisplayName(r Record) string {
	return r.Game.Name
}

func (a *Adapter) log(r Record) *zap.Logger {
	return a.logger.With(zap.String("game", r.Game.Name), zap.Int("appid", r.Game.AppID))
}

// Lookup finds the row of a game. With an AppID column the appid is tried
// first, then the title; a title match is only accepted when its AppID is
// empty or equal, so renamed or same-named games stay distinct.
func (a *Adapter) Lookup(ctx context.Context, r Record) reconcile.Lookup {
	l := a.log(r)
	names := a.schema.Names()

	if a.schema.HasAppID() {
		pages, err := a.store.QueryDatabase(ctx, notion.Query{
			Filter: notion.NumberEquals(names.AppID, float64(r.Game.AppID)),
		})
		if err != nil {
			l.Error("Query by AppID failed", zap.Error(err))
			return reconcile.Failed(err)
		}
		if len(pages) > 0 {
			if len(pages) > 1 {
				l.Warn("Several rows share this AppID, updating the first", zap.Int("rows", len(pages)))
			}
			return reconcile.Found(pages[0].ID, "appid")
		}
	}

	pages, err := a.store.QueryDatabase(ctx, notion.Query{
		Filter: notion.TitleEquals(names.Title, r.Game.Name),
	})
	if err != nil {
		l.Error("Query by title failed", zap.Error(err))
		return reconcile.Failed(err)
	}

	if !a.schema.HasAppID() {
		if len(pages) == 0 {
			return reconcile.NotFound()
		}
		return reconcile.Found(pages[0].ID, "title")
	}

	for _, page := range pages {
		value, ok := page.Properties[names.AppID]
		if !ok || value.Number == nil || int(*value.Number) == r.Game.AppID {
			return reconcile.Found(page.ID, "title")
		}
	}
	if len(pages) > 0 {
		l.Info("Title matches a row of another AppID, treating as a new game")
	}
	return reconcile.NotFound()
}

func (a *Adapter) Create(ctx context.Context, r Record) error {
	l := a.log(r)
	l.Info("Adding game to Notion")

	if _, err := a.store.CreatePage(ctx, BuildPage(r, a.schema, l)); err != nil {
		l.Error("Add failed", zap.Error(err))
		return err
	}
	l.Info("Game added")
	return nil
}

func (a *Adapter) Update(ctx context.Context, pageID string, r Record) error {
	l := a.log(r).With(zap.String("page_id", pageID))
	l.Info("Updating game in Notion")

	if _, err := a.store.UpdatePage(ctx, pageID, BuildPage(r, a.schema, l)); err != nil {
		l.Error("Update failed", zap.Error(err))
		return err
	}
	l.Info("Game updated")
	return nil
}
