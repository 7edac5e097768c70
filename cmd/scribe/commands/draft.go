package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/irahardianto/scribe/internal/engine/config"
	"github.com/irahardianto/scribe/internal/engine/formatter"
	"github.com/irahardianto/scribe/internal/engine/git"
	"github.com/irahardianto/scribe/internal/engine/llm"
	"github.com/irahardianto/scribe/internal/engine/message"
	"github.com/irahardianto/scribe/internal/platform/logger"
)

// Commit sources passed by git as the hook's second argument.
const (
	sourceMerge   = "merge"
	sourceMessage = "message"
)

// DraftOpts holds per-invocation options for the draft pipeline.
type DraftOpts struct {
	// MsgFile is the commit-message file path git passed to the hook.
	MsgFile string
	// Source is the commit source ("merge", "message", "template", ...).
	Source string
}

// Draft orchestrates the full generation pipeline with injected dependencies.
// This struct enables testing the orchestration logic without real
// infrastructure.
type Draft struct {
	// Git provides staged diff, branch, and staged file lookups.
	Git git.Service

	// Client drafts the commit message from a prompt.
	Client llm.Client

	// FS reads and writes the commit-message file.
	FS MessageFS

	// Config holds the pre-loaded user configuration.
	Config *config.Config
}

// Execute runs the hook flow: resolve the hint, generate a draft, and
// overwrite the commit-message file. The file is only written when a
// non-empty message was generated; every other path leaves it untouched.
func (d *Draft) Execute(ctx context.Context, opts DraftOpts) error {
	log := logger.FromContext(ctx)

	if opts.Source == sourceMerge {
		log.Info("merge commit detected, skipping")
		return nil
	}

	// A pre-populated message (git commit -m, -t) becomes a hint for the
	// model rather than being discarded.
	hint := ""
	if opts.Source == sourceMessage {
		data, err := d.FS.ReadFile(opts.MsgFile)
		if err != nil {
			return fmt.Errorf("reading commit message file: %w", err)
		}
		hint = strings.TrimSpace(string(data))
	}

	result, ok, err := d.Generate(ctx, hint)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := d.FS.WriteFile(opts.MsgFile, []byte(result.Message.Raw), 0o644); err != nil { // #nosec G306 -- commit message, not sensitive
		return fmt.Errorf("writing commit message file: %w", err)
	}

	log.Info("commit message written", "path", opts.MsgFile)
	return nil
}

// Generate runs the pipeline up to and including the API call.
// The second return value is false when there is nothing to draft: no
// staged changes, or the model returned no usable text. Both are expected
// conditions, not errors.
func (d *Draft) Generate(ctx context.Context, hint string) (*formatter.DraftResult, bool, error) {
	log := logger.FromContext(ctx)

	// Credentials are checked before any git or network activity.
	if err := d.Config.Validate(); err != nil {
		return nil, false, err
	}

	diff, err := d.Git.StagedDiff(ctx)
	if err != nil {
		return nil, false, err
	}
	if strings.TrimSpace(diff) == "" {
		log.Info("no staged changes found, nothing to draft")
		return nil, false, nil
	}

	// Branch name is cosmetic context; lookup failure is not fatal.
	branch, err := d.Git.CurrentBranch(ctx)
	if err != nil {
		log.Debug("branch lookup failed, continuing without it", "error", err)
		branch = ""
	}

	files, err := d.Git.StagedFiles(ctx)
	if err != nil {
		log.Debug("staged file lookup failed, continuing without it", "error", err)
		files = nil
	}

	prompt := llm.BuildPrompt(diff, branch, hint)

	start := time.Now()
	text, err := d.Client.Draft(ctx, prompt)
	if err != nil {
		return nil, false, err
	}
	if text == "" {
		log.Warn("model returned no text, leaving commit message untouched")
		return nil, false, nil
	}

	result := &formatter.DraftResult{
		Branch:     branch,
		Model:      d.Config.Model,
		Files:      files,
		DurationMs: time.Since(start).Milliseconds(),
		Message:    message.Parse(text),
	}
	return result, true, nil
}
