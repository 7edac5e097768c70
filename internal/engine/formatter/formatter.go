// Package formatter renders drafted commit messages for CLI and JSON output.
package formatter

import (
	"github.com/irahardianto/scribe/internal/engine/message"
)

// DraftResult holds the outcome of one generation run for display.
type DraftResult struct {
	Branch     string          `json:"branch,omitempty"`
	Model      string          `json:"model"`
	Files      []string        `json:"files,omitempty"`
	DurationMs int64           `json:"duration_ms"`
	Message    message.Message `json:"message"`
}

// Formatter formats a DraftResult into a human-readable or machine-readable string.
type Formatter interface {
	Format(result DraftResult) string
}
