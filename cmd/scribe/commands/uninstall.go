package commands

import (
	"fmt"

	"github.com/irahardianto/scribe/internal/engine/git"
	"github.com/irahardianto/scribe/internal/platform/logger"
	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the prepare-commit-msg hook",
	Long: `Remove the scribe-managed prepare-commit-msg hook from the current
repository. Configuration in ~/.config/scribe/ is preserved.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		log.Info("uninstall started")

		projectDir, err := getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}

		gitSvc := git.NewExecService(projectDir)
		if err := gitSvc.RemoveHook(ctx); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "🗑  scribe prepare-commit-msg hook removed")
		log.Info("uninstall completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
