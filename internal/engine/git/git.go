// Package git abstracts git operations for testability.
package git

import (
	"context"
)

// Service abstracts git operations for testability.
type Service interface {
	// StagedDiff returns the unified diff of staged changes.
	// An empty string means there is nothing staged; that is not an error.
	StagedDiff(ctx context.Context) (string, error)
	// StagedFiles returns the list of staged file paths.
	StagedFiles(ctx context.Context) ([]string, error)
	// CurrentBranch returns the abbreviated name of the current branch.
	CurrentBranch(ctx context.Context) (string, error)

	// InstallHook creates a prepare-commit-msg hook script in .git/hooks/
	// invoking the scribe binary at execPath.
	InstallHook(ctx context.Context, execPath string) error
	// RemoveHook removes the scribe prepare-commit-msg hook.
	RemoveHook(ctx context.Context) error
}
