package cmd

import (
	"fmt"
	"os"

	"github.com/arcanaland/deckhand/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a deck profile file",
	Long: `Validate checks that a deck profile file is well formed.
It verifies the [profile] table, the deck kind and that the deck count fits the kind.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		profilePath := args[0]

		// Check if path exists
		if _, err := os.Stat(profilePath); os.IsNotExist(err) {
			return fmt.Errorf("profile file not found: %s", profilePath)
		}

		v := validator.NewValidator(profilePath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "✅ Profile '%s' is valid.\n", profilePath)
		} else {
			fmt.Fprintf(out, "❌ Profile '%s' has %d validation errors:\n", profilePath, len(results.Errors))
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
