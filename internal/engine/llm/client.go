// Package llm drafts commit messages through a generative language model.
package llm

import (
	"context"
)

// Client abstracts LLM API interaction for testability.
type Client interface {
	// Draft sends a prompt to the LLM and returns the drafted commit
	// message. An empty string with a nil error means the model returned
	// no usable text; callers treat that as "nothing to write".
	Draft(ctx context.Context, prompt string) (string, error)
}
