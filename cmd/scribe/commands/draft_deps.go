package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/irahardianto/scribe/internal/engine/config"
	"github.com/irahardianto/scribe/internal/engine/git"
	"github.com/irahardianto/scribe/internal/engine/llm"
	"github.com/irahardianto/scribe/internal/platform/logger"
)

// MessageFS abstracts commit-message file access for testability.
type MessageFS interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

// osMessageFS implements MessageFS using the os package.
type osMessageFS struct{}

func (o *osMessageFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) // #nosec G304 -- path comes from git's hook invocation
}

func (o *osMessageFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(name, data, perm) // #nosec G306 -- commit message, not sensitive
}

// newDraft wires real infrastructure for the draft pipeline.
// This is a composition root — it instantiates production dependencies.
func newDraft(ctx context.Context) (*Draft, error) {
	log := logger.FromContext(ctx)

	// Pick up GEMINI_API_KEY and friends from a project .env, if present.
	if err := godotenv.Load(); err == nil {
		log.Debug("loaded environment from .env")
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	projectDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	return &Draft{
		Git:    git.NewExecService(projectDir),
		Client: llm.NewGeminiClient(string(cfg.GeminiAPIKey), cfg.Model, llm.DefaultClientFactory),
		FS:     &osMessageFS{},
		Config: cfg,
	}, nil
}
