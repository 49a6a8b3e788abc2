package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/deckbuilder/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [catalog]",
	Short: "Validate a card catalog against the game rules",
	Long: `Validate checks that a catalog CSV has the expected columns and values, and
that it holds enough suits, ranks and affinity cards to build a deck under the
configured game rules. Without an argument the configured catalog is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		catalogPath := cfg.ResolveCatalogPath()
		if len(args) == 1 {
			catalogPath = args[0]

			// Check if path exists
			if _, err := os.Stat(catalogPath); os.IsNotExist(err) {
				return fmt.Errorf("catalog not found: %s", catalogPath)
			}
		}

		name := catalogPath
		if name == "" {
			name = "built-in catalog"
		}

		// Create validator and run validation
		v := validator.NewValidator(catalogPath, cfg.Rules)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		// Display validation results
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Catalog '%s' is valid for the current game rules.\n", name)
		} else {
			fmt.Fprintf(out, "❌ Catalog '%s' has %d validation errors:\n", name, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
