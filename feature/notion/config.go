package notion

// Config holds credentials, endpoint and column names for the target database.
type Config struct {
	APIKey     string `mapstructure:"api_key"`
	DatabaseID string `mapstructure:"database_id"`
	// Version is sent as the Notion-Version header.
	Version    string        `mapstructure:"version" default:"2022-06-28"`
	BaseURL    string        `mapstructure:"base_url" default:"https://api.notion.com"`
	Properties PropertyNames `mapstructure:"properties"`
}

// PropertyNames maps each logical field to its column name in the database.
type PropertyNames struct {
	Title                string `mapstructure:"title" default:"游戏名称"`
	Playtime             string `mapstructure:"playtime" default:"游玩时长 (h)"`
	LastPlayed           string `mapstructure:"last_played" default:"上次游玩时间"`
	StoreURL             string `mapstructure:"store_url" default:"商店链接"`
	Completion           string `mapstructure:"completion" default:"完成度"`
	TotalAchievements    string `mapstructure:"total_achievements" default:"总成就数"`
	AchievedAchievements string `mapstructure:"achieved_achievements" default:"已完成成就数"`
	Review               string `mapstructure:"review" default:"评测"`
	Info                 string `mapstructure:"info" default:"游戏简介"`
	Tags                 string `mapstructure:"tags" default:"游戏标签"`
	// AppID is optional. Rows are matched by title when the column is absent.
	AppID string `mapstructure:"app_id" default:"AppID"`
}

// Field is a logical column of the games database.
type Field string

const (
	FieldTitle                Field = "TITLE"
	FieldPlaytime             Field = "PLAYTIME"
	FieldLastPlayed           Field = "LAST_PLAYED"
	FieldStoreURL             Field = "STORE_URL"
	FieldCompletion           Field = "COMPLETION"
	FieldTotalAchievements    Field = "TOTAL_ACHIEVEMENTS"
	FieldAchievedAchievements Field = "ACHIEVED_ACHIEVEMENTS"
	FieldReview               Field = "REVIEW"
	FieldInfo                 Field = "INFO"
	FieldTags                 Field = "TAGS"
	FieldAppID                Field = "APPID"
)

// RequiredFields lists the fields every database is expected to have, in
// validation order.
var RequiredFields = []Field{
	FieldTitle,
	FieldPlaytime,
	FieldLastPlayed,
	FieldStoreURL,
	FieldCompletion,
	FieldTotalAchievements,
	FieldAchievedAchievements,
	FieldReview,
	FieldInfo,
	FieldTags,
}

// ExpectedTypes is the column type each field is written as by default.
var ExpectedTypes = map[Field]string{
	FieldTitle:                TypeTitle,
	FieldPlaytime:             TypeNumber,
	FieldLastPlayed:           TypeDate,
	FieldStoreURL:             TypeURL,
	FieldCompletion:           TypeMultiSelect,
	FieldTotalAchievements:    TypeNumber,
	FieldAchievedAchievements: TypeNumber,
	FieldReview:               TypeRichText,
	FieldInfo:                 TypeRichText,
	FieldTags:                 TypeMultiSelect,
	FieldAppID:                TypeNumber,
}

// Column returns the configured column name of a field.
func (p PropertyNames) Column(f Field) string {
	switch f {
	case FieldTitle:
		return p.Title
	case FieldPlaytime:
		return p.Playtime
	case FieldLastPlayed:
		return p.LastPlayed
	case FieldStoreURL:
		return p.StoreURL
	case FieldCompletion:
		return p.Completion
	case FieldTotalAchievements:
		return p.TotalAchievements
	case FieldAchievedAchievements:
		return p.AchievedAchievements
	case FieldReview:
		return p.Review
	case FieldInfo:
		return p.Info
	case FieldTags:
		return p.Tags
	case FieldAppID:
		return p.AppID
	}
	return ""
}
