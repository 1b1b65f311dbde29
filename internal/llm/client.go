// Package llm is the completion gateway used for review drafting and the
// SIF synthesis. Two providers are supported: any OpenAI-compatible chat
// completions endpoint, and the Anthropic Messages API.
package llm

import (
	"context"
	"errors"
)

var ErrEmptyResponse = errors.New("llm: empty completion")

// Request is a single-turn completion.
type Request struct {
	System    string
	Prompt    string
	MaxTokens int
	// JSON asks the provider for a single JSON object.
	JSON bool
}

type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}
