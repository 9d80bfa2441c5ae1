package library

import (
	"strconv"

	"steam-notion-sync/core/utils"
	"steam-notion-sync/feature/notion"

	"go.uber.org/zap"
)

// BuildPage serializes a record for the given schema. The result is the same
// for creation and update.
func BuildPage(r Record, schema *notion.SchemaReport, logger *zap.Logger) notion.PageWrite {
	d := Derive(r)
	names := schema.Names()

	props := notion.Properties{
		names.Title:                notion.TitleValue(r.Game.Name),
		names.Playtime:             notion.NumberValue(d.PlaytimeHours),
		names.LastPlayed:           notion.DateValue(d.LastPlayed),
		names.StoreURL:             notion.URLValue(d.StoreURL),
		names.TotalAchievements:    notion.NumberValue(float64(r.Achievements.Total)),
		names.AchievedAchievements: notion.NumberValue(float64(r.Achievements.Achieved)),
		names.Review:               notion.RichTextValue(r.Review),
		names.Info:                 notion.RichTextValue(r.Store.Info),
		names.Completion:           completionValue(d.Completion, schema.TypeOf(notion.FieldCompletion)),
		names.Tags:                 tagsValue(r.Store.Tags, schema.TypeOf(notion.FieldTags), logger),
	}
	if schema.HasAppID() {
		props[names.AppID] = notion.NumberValue(float64(r.Game.AppID))
	}

	return notion.PageWrite{
		Properties: props,
		Cover:      notion.External(d.CoverURL),
		Icon:       notion.External(d.IconURL),
	}
}

func completionValue(completion float64, columnType string) notion.PropertyValue {
	if columnType != notion.TypeMultiSelect {
		return notion.NumberValue(completion)
	}
	if completion < 0 {
		return notion.MultiSelectValue(nil)
	}
	return notion.MultiSelectValue([]notion.SelectOption{
		{Name: strconv.FormatFloat(completion, 'f', 1, 64) + "%"},
	})
}

func tagsValue(tags []any, columnType string, logger *zap.Logger) notion.PropertyValue {
	if columnType == notion.TypeCheckbox {
		return notion.CheckboxValue(len(tags) > 0)
	}
	return notion.MultiSelectValue(NormalizeTags(tags, logger))
}

// NormalizeTags turns decoded tag values into select options. Strings and
// scalars are used as names, maps contribute their "name" member and maps
// without one are dropped with a warning.
func NormalizeTags(tags []any, logger *zap.Logger) []notion.SelectOption {
	options := make([]notion.SelectOption, 0, len(tags))
	for _, tag := range tags {
		switch v := tag.(type) {
		case map[string]any:
			name, ok := v["name"]
			if !ok {
				logger.Warn("Invalid tag format", zap.Any("tag", v))
				continue
			}
			options = append(options, notion.SelectOption{Name: utils.ToString(name)})
		default:
			options = append(options, notion.SelectOption{Name: utils.ToString(v)})
		}
	}
	return options
}
