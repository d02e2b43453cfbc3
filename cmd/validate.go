package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moltimon/cardsmith/internal/config"
	"github.com/moltimon/cardsmith/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card library directory",
	Long: `Validate checks a card library before its cards are rendered: the manifest,
every card file, field limits, art dimensions and stray art files.

Off-size art is a warning, since it is normalized when rendered. Use --strict
(or strict_art in the config) to make it an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := args[0]
		out := cmd.OutOrStdout()

		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			return fmt.Errorf("library directory not found: %s", libraryPath)
		}

		v := validator.NewValidator(libraryPath, logger)
		v.StrictArt = strictArt(cmd)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "✅ Library '%s' is valid.\n", libraryPath)
		} else {
			fmt.Fprintf(out, "❌ Library '%s' has %d validation errors:\n", libraryPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if !results.Valid() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().Bool("strict", false, "Treat art that is not exactly 70x26 as an error (default from config)")
}

func strictArt(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("strict") {
		strict, _ := cmd.Flags().GetBool("strict")
		return strict
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Debug("Could not read config", zap.Error(err))
		return false
	}
	return cfg.StrictArt
}
