package steam

// Config holds configuration for the Steam Web API and storefront.
type Config struct {
	// APIKey is the Steam Web API key.
	APIKey string `mapstructure:"api_key" default:""`
	// UserID is the 64-bit SteamID whose library is synced.
	UserID string `mapstructure:"user_id" default:""`
	// IncludePlayedFreeGames asks Steam to list free games the user has played.
	IncludePlayedFreeGames bool `mapstructure:"include_played_free_games" default:"true" env:"include_played_free_games,INCLUDE_PLAYED_FREE_GAMES"`
	// BaseURL is the Steam Web API root.
	BaseURL string `mapstructure:"base_url" default:"http://api.steampowered.com"`
	// StoreURL is the storefront root (appdetails and store pages).
	StoreURL string `mapstructure:"store_url" default:"https://store.steampowered.com"`
	// CommunityURL is the community root hosting user reviews.
	CommunityURL string `mapstructure:"community_url" default:"https://steamcommunity.com"`
}
