package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/irahardianto/scribe/internal/platform/logger"
)

const (
	hookName   = "prepare-commit-msg"
	hookMarker = "# scribe-managed"

	// hookTemplate is the shell stub written into .git/hooks/.
	// git invokes it with the commit-msg file path, the commit source,
	// and optionally a commit SHA; all three are forwarded.
	hookTemplate = `#!/bin/sh
# scribe-managed
# This hook was installed by scribe. Do not edit manually.
# Run 'scribe uninstall' to remove.
exec "%s" hook "$1" "$2" "$3"
`
)

// InstallHook writes a prepare-commit-msg hook that invokes the scribe
// binary at execPath. A hook already managed by scribe is overwritten,
// which keeps the embedded binary path current. A foreign hook is never
// clobbered and results in an error.
func (s *ExecService) InstallHook(ctx context.Context, execPath string) error {
	log := logger.FromContext(ctx)
	log.Info("installing prepare-commit-msg hook")

	gitDir, err := s.findGitDir(ctx)
	if err != nil {
		return fmt.Errorf("finding .git directory: %w", err)
	}

	hooksDir := filepath.Join(gitDir, "hooks")
	hookPath := filepath.Join(hooksDir, hookName)

	// Refuse to overwrite a hook scribe does not own.
	if data, err := os.ReadFile(hookPath); err == nil { // #nosec G304 -- path is constructed from .git dir, not user input
		if !strings.Contains(string(data), hookMarker) {
			return fmt.Errorf("%s hook already exists at %s — remove it first or back it up", hookName, hookPath)
		}
	}

	if err := os.MkdirAll(hooksDir, 0o750); err != nil {
		return fmt.Errorf("creating hooks directory: %w", err)
	}

	script := fmt.Sprintf(hookTemplate, shellEscape(execPath))
	if err := os.WriteFile(hookPath, []byte(script), 0o755); err != nil { // #nosec G306 -- hook must be executable
		return fmt.Errorf("writing hook script: %w", err)
	}

	// WriteFile does not change the mode of an existing file, so make sure
	// a previously installed hook stays executable for the owner.
	info, err := os.Stat(hookPath)
	if err != nil {
		return fmt.Errorf("checking hook permissions: %w", err)
	}
	if err := os.Chmod(hookPath, info.Mode()|0o100); err != nil {
		return fmt.Errorf("marking hook executable: %w", err)
	}

	log.Info("prepare-commit-msg hook installed", "path", hookPath)
	return nil
}

// RemoveHook removes the scribe-managed prepare-commit-msg hook.
// Returns nil if no hook exists; refuses to remove a foreign hook.
func (s *ExecService) RemoveHook(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("removing prepare-commit-msg hook")

	gitDir, err := s.findGitDir(ctx)
	if err != nil {
		return fmt.Errorf("finding .git directory: %w", err)
	}

	hookPath := filepath.Join(gitDir, "hooks", hookName)

	data, err := os.ReadFile(hookPath) // #nosec G304 -- path is constructed from .git dir, not user input
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Info("no prepare-commit-msg hook found, nothing to remove")
			return nil
		}
		return fmt.Errorf("reading hook: %w", err)
	}

	if !strings.Contains(string(data), hookMarker) {
		return fmt.Errorf("%s hook exists but is not managed by scribe — will not remove", hookName)
	}

	if err := os.Remove(hookPath); err != nil {
		return fmt.Errorf("removing hook: %w", err)
	}

	log.Info("prepare-commit-msg hook removed", "path", hookPath)
	return nil
}

// findGitDir locates the .git directory by running `git rev-parse --git-dir`.
func (s *ExecService) findGitDir(ctx context.Context) (string, error) {
	out, err := s.runGit(ctx, "rev-parse", "--git-dir")
	if err != nil {
		return "", err
	}

	gitDir := strings.TrimSpace(out)
	if !filepath.IsAbs(gitDir) && s.WorkDir != "" {
		gitDir = filepath.Join(s.WorkDir, gitDir)
	}

	return gitDir, nil
}

// shellEscape makes a path safe inside a double-quoted sh string literal.
func shellEscape(path string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		`"`, `\"`,
		"$", `\$`,
		"`", "\\`",
	)
	return r.Replace(path)
}
