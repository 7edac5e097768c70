package commands

import (
	"github.com/irahardianto/scribe/internal/platform/logger"
	"github.com/spf13/cobra"
)

var hookCmd = &cobra.Command{
	Use:   "hook <commit-msg-file> [source] [sha]",
	Short: "Draft a commit message into the given file (invoked by git)",
	Long: `The prepare-commit-msg entry point. Git invokes this through the installed
hook stub with the commit-message file path, the commit source, and
optionally a commit SHA.

Merge commits are skipped. When the source is "message" (git commit -m),
the pre-populated text is passed to the model as a hint. With no staged
changes the hook exits 0 and leaves the file untouched.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)

		opts := DraftOpts{MsgFile: args[0]}
		if len(args) > 1 {
			opts.Source = args[1]
		}

		// Merge commits are skipped before any config or credential
		// loading; a missing API key must not break a merge.
		if opts.Source == sourceMerge {
			log.Info("merge commit detected, skipping")
			return nil
		}

		d, err := newDraft(ctx)
		if err == nil {
			err = d.Execute(ctx, opts)
		}
		if err != nil {
			log.Error("draft failed", "error", err)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(hookCmd)
}
