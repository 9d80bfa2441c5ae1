package steam

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"steam-notion-sync/core/retry"
	"steam-notion-sync/core/utils"

	"go.uber.org/zap"
)

const (
	ownedGamesPath   = "/IPlayerService/GetOwnedGames/v0001/"
	achievementsPath = "/ISteamUserStats/GetPlayerAchievements/v0001/"
)

// ErrNoGames is returned when Steam answers without a games list
// (private profile, wrong id or key).
var ErrNoGames = errors.New("steam returned no game data")

// Client fetches library and achievement data from the Steam Web API.
type Client struct {
	cfg    Config
	http   *retry.Client
	logger *zap.Logger
}

// NewClient creates a Steam client.
func NewClient(cfg Config, httpClient *retry.Client, logger *zap.Logger) *Client {
	return &Client{cfg: cfg, http: httpClient, logger: logger}
}

// GetOwnedGames lists the user's library through the retrying client.
func (c *Client) GetOwnedGames(ctx context.Context) (*OwnedGames, error) {
	params := url.Values{
		"key":             {c.cfg.APIKey},
		"steamid":         {c.cfg.UserID},
		"include_appinfo": {"true"},
		"format":          {"json"},
	}
	if c.cfg.IncludePlayedFreeGames {
		params.Set("include_played_free_games", "true")
	}

	c.logger.Info("Fetching owned games from Steam")

	resp, err := c.http.Send(ctx, retry.Request{
		Method: http.MethodGet,
		URL:    c.cfg.BaseURL + ownedGamesPath,
		Query:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching owned games: %w", err)
	}

	var payload ownedGamesResponse
	if err := resp.Decode(&payload); err != nil {
		return nil, fmt.Errorf("parsing owned games: %w", err)
	}
	if payload.Response.Games == nil {
		return nil, ErrNoGames
	}

	c.logger.Info("Owned games fetched", zap.Int("count", len(*payload.Response.Games)))

	return &OwnedGames{
		GameCount: payload.Response.GameCount,
		Games:     *payload.Response.Games,
	}, nil
}

// GetAchievements counts the player's achievements for a game. It makes a
// single attempt and never fails: every problem maps to NoAchievements.
func (c *Client) GetAchievements(ctx context.Context, game Game) AchievementInfo {
	l := c.logger.With(zap.String("game", game.Name), zap.Int("appid", game.AppID))
	l.Info("Querying achievements")

	resp, err := c.http.SendOnce(ctx, retry.Request{
		Method: http.MethodGet,
		URL:    c.cfg.BaseURL + achievementsPath,
		Query: url.Values{
			"key":     {c.cfg.APIKey},
			"steamid": {c.cfg.UserID},
			"appid":   {strconv.Itoa(game.AppID)},
		},
	})
	if err != nil {
		l.Error("Achievement query failed", zap.Error(err))
		l.Info("Game has no achievement info")
		return NoAchievements
	}

	var payload achievementsResponse
	if err := resp.Decode(&payload); err != nil {
		l.Error("Achievement response is not JSON", zap.Error(err))
		l.Info("Game has no achievement info")
		return NoAchievements
	}

	return countAchievements(l, payload)
}

func countAchievements(l *zap.Logger, payload achievementsResponse) AchievementInfo {
	stats := payload.PlayerStats
	if !stats.Success {
		l.Info("Game has no achievement info", zap.String("steam_error", stats.Error))
		return NoAchievements
	}
	if stats.Achievements == nil {
		l.Info("Game has no achievements")
		return NoAchievements
	}

	info := AchievementInfo{}
	for _, a := range *stats.Achievements {
		info.Total++
		if utils.Truthy(a.Achieved) {
			info.Achieved++
		}
	}

	l.Info("Achievements counted", zap.Int("total", info.Total), zap.Int("achieved", info.Achieved))
	return info
}
