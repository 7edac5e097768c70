package commands

import (
	"fmt"

	"github.com/irahardianto/scribe/internal/engine/formatter"
	"github.com/irahardianto/scribe/internal/platform/logger"
	"github.com/spf13/cobra"
)

var flagHint string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Draft a commit message from the staged diff and print it",
	Long: `Run the generation pipeline against the staged diff and print the drafted
message to stdout without writing any file. Useful for inspecting what the
hook would produce, or with --json for scripting.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		d, err := newDraft(ctx)
		if err != nil {
			return err
		}

		result, ok, err := d.Generate(ctx, flagHint)
		if err != nil {
			logger.FromContext(ctx).Error("draft failed", "error", err)
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "Nothing to draft — stage some changes first")
			return nil
		}

		var fmtr formatter.Formatter
		if flagJSON {
			fmtr = formatter.NewJSONFormatter()
		} else {
			fmtr = formatter.NewCLIFormatter(!flagNoColor, flagVerbose)
		}
		fmt.Fprint(cmd.OutOrStdout(), fmtr.Format(*result))

		return nil
	},
}

func init() {
	previewCmd.Flags().StringVar(&flagHint, "hint", "", "Hint passed to the model alongside the diff")
	rootCmd.AddCommand(previewCmd)
}
