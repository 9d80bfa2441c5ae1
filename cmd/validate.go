package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// validateCmd checks the database schema without syncing anything
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the Notion database columns against the expected schema",
	Long:  `Fetches the database schema and reports missing columns and type mismatches. Outputs a summary by default or the full report with --json.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.logger.Sync()

		schema, err := a.notion.ValidateSchema(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to validate database structure: %w", err)
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(schema)
		}

		a.logger.Info("Schema report",
			zap.Bool("matched", schema.Matched),
			zap.Strings("missing_columns", schema.MissingColumns),
			zap.Strings("type_mismatches", schema.TypeMismatches),
			zap.Bool("appid_matching", schema.HasAppID()),
		)
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("json", false, "Print the full report as JSON")
	RootCmd.AddCommand(validateCmd)
}
