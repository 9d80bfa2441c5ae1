// Package steam fetches a user's library and achievement counts from the Steam Web API.
//
// GetOwnedGames goes through the retrying HTTP client and fails the run when no
// games list comes back. GetAchievements makes one attempt per game and degrades
// every failure to the NoAchievements sentinel ({-1, -1}) so one broken game never
// stops the sync.
package steam
