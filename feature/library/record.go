package library

import (
	"fmt"
	"time"

	"steam-notion-sync/core/utils"
	"steam-notion-sync/feature/steam"
	"steam-notion-sync/feature/storefront"
)

const (
	storeURLFormat = "https://store.steampowered.com/app/%d"
	iconURLFormat  = "https://media.steampowered.com/steamcommunity/public/images/apps/%d/%s.jpg"
	coverURLFormat = "https://steamcdn-a.akamaihd.net/steam/apps/%d/header.jpg"
	dateLayout     = "2006-01-02"
)

// Record is everything gathered for one game before it is written.
type Record struct {
	Game         steam.Game
	Achievements steam.AchievementInfo
	Review       string
	Store        storefront.StoreData
}

// Derived holds the computed values written to the row.
type Derived struct {
	PlaytimeHours float64
	LastPlayed    string
	StoreURL      string
	IconURL       string
	CoverURL      string
	// Completion is a percentage with one decimal, -1 when the game has no
	// achievements or no achievement data.
	Completion float64
}

// Derive computes the row values of a record.
func Derive(r Record) Derived {
	g := r.Game
	return Derived{
		PlaytimeHours: PlaytimeHours(g),
		LastPlayed:    time.Unix(g.LastPlayed(), 0).In(time.Local).Format(dateLayout),
		StoreURL:      fmt.Sprintf(storeURLFormat, g.AppID),
		IconURL:       fmt.Sprintf(iconURLFormat, g.AppID, g.ImgIconURL),
		CoverURL:      fmt.Sprintf(coverURLFormat, g.AppID),
		Completion:    Completion(r.Achievements),
	}
}

// Completion returns achieved/total as a percentage, -1 when total <= 0.
func Completion(ach steam.AchievementInfo) float64 {
	if ach.Total <= 0 {
		return -1
	}
	return utils.Round(float64(ach.Achieved)/float64(ach.Total)*100, 1)
}
