package storefront

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"steam-notion-sync/core/retry"
	"steam-notion-sync/feature/steam"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// Client reads storefront and community pages.
type Client struct {
	storeURL     string
	communityURL string
	http         *retry.Client
	logger       *zap.Logger
}

// NewClient creates a storefront client using the endpoints of the Steam configuration.
func NewClient(cfg steam.Config, httpClient *retry.Client, logger *zap.Logger) *Client {
	return &Client{
		storeURL:     cfg.StoreURL,
		communityURL: cfg.CommunityURL,
		http:         httpClient,
		logger:       logger,
	}
}

// GetStoreData returns the description and tags of a game. Store page user
// tags are preferred; appdetails genres are used when the page has none.
func (c *Client) GetStoreData(ctx context.Context, game steam.Game) StoreData {
	l := c.logger.With(zap.String("game", game.Name), zap.Int("appid", game.AppID))

	data := StoreData{Tags: []any{}}

	details, err := c.appDetails(ctx, game.AppID)
	if err != nil {
		l.Warn("Store details unavailable", zap.Error(err))
	} else {
		data.Info = details.Data.ShortDescription
	}

	tags, err := c.userTags(ctx, game.AppID)
	if err != nil {
		l.Warn("Store page unavailable", zap.Error(err))
	}
	for _, t := range tags {
		data.Tags = append(data.Tags, t)
	}

	if len(data.Tags) == 0 && details != nil {
		for _, g := range details.Data.Genres {
			data.Tags = append(data.Tags, map[string]any{"name": g.Description})
		}
	}

	l.Debug("Store data fetched", zap.Int("tags", len(data.Tags)))
	return data
}

func (c *Client) appDetails(ctx context.Context, appID int) (*appDetailsEntry, error) {
	id := strconv.Itoa(appID)
	resp, err := c.http.SendOnce(ctx, retry.Request{
		Method: http.MethodGet,
		URL:    c.storeURL + "/api/appdetails",
		Query:  url.Values{"appids": {id}},
	})
	if err != nil {
		return nil, err
	}

	var payload map[string]appDetailsEntry
	if err := resp.Decode(&payload); err != nil {
		return nil, err
	}
	entry, ok := payload[id]
	if !ok || !entry.Success {
		return nil, fmt.Errorf("appdetails has no data for %s", id)
	}
	return &entry, nil
}

func (c *Client) userTags(ctx context.Context, appID int) ([]string, error) {
	doc, err := c.page(ctx, fmt.Sprintf("%s/app/%d/", c.storeURL, appID))
	if err != nil {
		return nil, err
	}

	var tags []string
	for _, n := range findAll(doc, "a", "app_tag") {
		if t := text(n); t != "" {
			tags = append(tags, t)
		}
	}
	return tags, nil
}

// GetReview returns the text of the user's review of a game, "" when there is
// none or the page cannot be read.
func (c *Client) GetReview(ctx context.Context, steamID string, game steam.Game) string {
	l := c.logger.With(zap.String("game", game.Name), zap.Int("appid", game.AppID))

	doc, err := c.page(ctx, fmt.Sprintf("%s/profiles/%s/recommended/%d/", c.communityURL, steamID, game.AppID))
	if err != nil {
		l.Warn("Review page unavailable", zap.Error(err))
		return ""
	}

	node := findByID(doc, "ReviewText")
	if node == nil {
		l.Debug("No review found")
		return ""
	}
	return text(node)
}

func (c *Client) page(ctx context.Context, pageURL string) (*html.Node, error) {
	resp, err := c.http.SendOnce(ctx, retry.Request{
		Method: http.MethodGet,
		URL:    pageURL,
		// Skips the age gate on mature titles.
		Header: http.Header{"Cookie": {"birthtime=0; wants_mature_content=1"}},
	})
	if err != nil {
		return nil, err
	}

	doc, err := html.Parse(bytes.NewReader(resp.Body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}
	return doc, nil
}
