package library

import (
	"time"

	"steam-notion-sync/core/utils"
	"steam-notion-sync/feature/steam"
)

const (
	minHours        = 0.1
	staleHours      = 6.0
	minAchievements = 1
)

// staleBefore is the last played cutoff below which lightly played games
// without achievements are dropped.
func staleBefore() int64 {
	return time.Date(2020, time.January, 1, 0, 0, 0, 0, time.Local).Unix()
}

// ShouldRecord reports whether a game is worth a row. Games with achievement
// data missing count as having none.
func ShouldRecord(game steam.Game, ach steam.AchievementInfo) bool {
	return shouldRecord(PlaytimeHours(game), game.LastPlayed(), ach.Total)
}

func shouldRecord(hours float64, lastPlayed int64, total int) bool {
	if hours < minHours && total < minAchievements {
		return false
	}
	if lastPlayed < staleBefore() && total < minAchievements && hours < staleHours {
		return false
	}
	return true
}

// PlaytimeHours converts the minutes reported by Steam to hours, one decimal.
func PlaytimeHours(game steam.Game) float64 {
	return utils.Round(float64(game.PlaytimeForever)/60, 1)
}
