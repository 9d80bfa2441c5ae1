package notion

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// SchemaReport compares the live database columns with the expected ones.
type SchemaReport struct {
	Database       string            `json:"database"`
	Matched        bool              `json:"matched"`
	Columns        map[string]string `json:"columns"`
	MissingColumns []string          `json:"missing_columns"`
	TypeMismatches []string          `json:"type_mismatches"`

	names PropertyNames
}

// ValidateSchema fetches the live schema and warns about every missing column
// or type mismatch. It only fails when the schema cannot be fetched.
func (c *Client) ValidateSchema(ctx context.Context) (*SchemaReport, error) {
	c.logger.Info("Validating database structure")

	db, err := c.GetDatabase(ctx)
	if err != nil {
		return nil, err
	}

	report := CompareSchema(db, c.cfg.Properties)
	for _, column := range report.MissingColumns {
		c.logger.Warn("Database is missing property", zap.String("property", column))
	}
	for _, mismatch := range report.TypeMismatches {
		c.logger.Warn("Property type mismatch", zap.String("detail", mismatch))
	}

	appID := c.cfg.Properties.AppID
	if actual, ok := report.Columns[appID]; !ok || appID == "" {
		c.logger.Info("No AppID column, rows are matched by title", zap.String("property", appID))
	} else if actual != TypeNumber {
		c.logger.Warn("AppID column is not a number, rows are matched by title",
			zap.String("property", appID), zap.String("type", actual))
	}

	if report.Matched {
		c.logger.Info("Database structure validated")
	}
	return report, nil
}

// CompareSchema builds the report for a fetched database.
func CompareSchema(db *Database, names PropertyNames) *SchemaReport {
	report := &SchemaReport{
		Database:       db.ID,
		Matched:        true,
		Columns:        make(map[string]string, len(db.Properties)),
		MissingColumns: []string{},
		TypeMismatches: []string{},
		names:          names,
	}
	for name, prop := range db.Properties {
		report.Columns[name] = prop.Type
	}

	for _, field := range RequiredFields {
		column := names.Column(field)
		expected := ExpectedTypes[field]

		actual, ok := report.Columns[column]
		if !ok {
			report.MissingColumns = append(report.MissingColumns, column)
			report.Matched = false
			continue
		}
		if actual != expected {
			report.TypeMismatches = append(report.TypeMismatches,
				fmt.Sprintf("%s: expected %s, got %s", column, expected, actual))
			report.Matched = false
		}
	}
	return report
}

// TypeOf returns the live type of a field's column, falling back to the
// expected type when the column is not in the database.
func (r *SchemaReport) TypeOf(f Field) string {
	if actual, ok := r.Columns[r.names.Column(f)]; ok {
		return actual
	}
	return ExpectedTypes[f]
}

// HasAppID reports whether rows can be matched by a number AppID column.
func (r *SchemaReport) HasAppID() bool {
	column := r.names.Column(FieldAppID)
	return column != "" && r.Columns[column] == TypeNumber
}

// Names returns the column names the report was built with.
func (r *SchemaReport) Names() PropertyNames {
	return r.names
}
