package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/irahardianto/scribe/internal/platform/logger"
)

// ExecService implements Service by running git commands via os/exec.
type ExecService struct {
	// WorkDir is the working directory for git commands.
	// If empty, the current directory is used.
	WorkDir string
}

// NewExecService creates a new ExecService with the given working directory.
func NewExecService(workDir string) *ExecService {
	return &ExecService{WorkDir: workDir}
}

// StagedDiff returns the unified diff of staged changes.
// A non-zero exit from the diff command itself means there is nothing to
// diff against (e.g. an empty repository); that is reported as an empty
// diff, not an error. A missing git binary or unreachable repository is
// still an error.
func (s *ExecService) StagedDiff(ctx context.Context) (string, error) {
	logger.FromContext(ctx).Debug("getting staged diff")

	out, err := s.runGit(ctx, "diff", "--staged")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", nil
		}
		return "", fmt.Errorf("getting staged diff: %w", err)
	}

	return out, nil
}

// StagedFiles returns the list of staged file paths.
func (s *ExecService) StagedFiles(ctx context.Context) ([]string, error) {
	logger.FromContext(ctx).Debug("getting staged file list")

	out, err := s.runGit(ctx, "diff", "--staged", "--name-only")
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, nil
		}
		return nil, fmt.Errorf("getting staged files: %w", err)
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return nil, nil
	}

	return strings.Split(out, "\n"), nil
}

// CurrentBranch returns the abbreviated name of the current branch.
// Callers treat failures (detached HEAD, unborn branch) as "no branch"
// since the name is only cosmetic context for the prompt.
func (s *ExecService) CurrentBranch(ctx context.Context) (string, error) {
	logger.FromContext(ctx).Debug("resolving current branch")

	out, err := s.runGit(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("resolving branch: %w", err)
	}

	return strings.TrimSpace(out), nil
}

// runGit executes a git command and returns its stdout.
func (s *ExecService) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...) // #nosec G204 -- args are controlled by the application, not user input
	cmd.Dir = s.WorkDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w (stderr: %s)", strings.Join(args, " "), err, stderr.String())
	}

	return stdout.String(), nil
}
