package steam

import "strconv"

// Game is an owned game as listed by GetOwnedGames.
type Game struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	PlaytimeForever int    `json:"playtime_forever"`
	// RTimeLastPlayed is nil when Steam omits the field.
	RTimeLastPlayed *int64 `json:"rtime_last_played,omitempty"`
	ImgIconURL      string `json:"img_icon_url"`
}

// LastPlayed returns the last played unix time, 0 when unknown.
func (g Game) LastPlayed() int64 {
	if g.RTimeLastPlayed == nil {
		return 0
	}
	return *g.RTimeLastPlayed
}

// Key returns the appid as a string.
func (g Game) Key() string {
	return strconv.Itoa(g.AppID)
}

// OwnedGames is the decoded GetOwnedGames payload.
type OwnedGames struct {
	GameCount int    `json:"game_count"`
	Games     []Game `json:"games"`
}

type ownedGamesResponse struct {
	Response struct {
		GameCount int     `json:"game_count"`
		Games     *[]Game `json:"games"`
	} `json:"response"`
}

// AchievementInfo counts a player's achievements for one game.
type AchievementInfo struct {
	Total    int `json:"total"`
	Achieved int `json:"achieved"`
}

// NoAchievements is the sentinel for "no achievement data available". It is
// distinct from {0, 0}, which is a game with achievements and none earned.
var NoAchievements = AchievementInfo{Total: -1, Achieved: -1}

// Available reports whether achievement data exists.
func (a AchievementInfo) Available() bool {
	return a != NoAchievements
}

type achievementsResponse struct {
	PlayerStats struct {
		SteamID      string         `json:"steamID"`
		GameName     string         `json:"gameName"`
		Achievements *[]achievement `json:"achievements"`
		Success      bool           `json:"success"`
		Error        string         `json:"error"`
	} `json:"playerstats"`
}

type achievement struct {
	APIName    string `json:"apiname"`
	Achieved   any    `json:"achieved"`
	UnlockTime int64  `json:"unlocktime"`
}
