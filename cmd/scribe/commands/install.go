package commands

import (
	"fmt"
	"os"

	"github.com/irahardianto/scribe/internal/engine/git"
	"github.com/irahardianto/scribe/internal/platform/logger"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the prepare-commit-msg hook in the current repository",
	Long: `Write an executable prepare-commit-msg stub into .git/hooks/ that invokes
this scribe binary. Re-running refreshes a scribe-managed stub; a hook
installed by something else is never overwritten.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		log.Info("install started")

		projectDir, err := getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}

		execPath, err := executable()
		if err != nil {
			// Fall back to PATH lookup at hook time.
			log.Debug("could not resolve binary path, using bare name", "error", err)
			execPath = "scribe"
		}

		gitSvc := git.NewExecService(projectDir)
		if err := gitSvc.InstallHook(ctx, execPath); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✏️  scribe prepare-commit-msg hook installed")
		log.Info("install completed")
		return nil
	},
}

// getwd and executable are variables for testability.
var (
	getwd      = os.Getwd
	executable = os.Executable
)

func init() {
	rootCmd.AddCommand(installCmd)
}
