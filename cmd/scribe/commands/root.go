// Package commands implements the CLI commands for scribe.
package commands

import (
	"github.com/irahardianto/scribe/internal/platform/logger"
	"github.com/spf13/cobra"
)

// Global flag values accessible to all commands.
var (
	flagJSON    bool
	flagVerbose bool
	flagNoColor bool
)

// rootCmd is the base command for the scribe CLI.
var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "AI-drafted git commit messages",
	Long: `Scribe is a git prepare-commit-msg hook that drafts a commit message from
the staged diff using the Google Gemini API. The drafted message is a short
summary followed by a conventional-commit bullet list; edit it in your
editor like any other commit message.

Run 'scribe install' inside a repository to set up the hook.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		l := logger.New(flagVerbose, flagJSON)
		ctx := logger.WithContext(cmd.Context(), l)
		cmd.SetContext(ctx)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output results as JSON to stdout")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging and raw message output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

// Execute runs the root command. Returns an error if the command fails.
func Execute() error {
	return rootCmd.Execute()
}
