package conversation

import "context"

// LLMRequest is a single-shot prompt. The matcher always sends one
// system prompt plus one user message and expects a short constrained
// reply (a number, YES/NO, a date, or strict JSON).
type LLMRequest struct {
	System      string
	User        string
	MaxTokens   int32
	Temperature float32
}

// LLMClient is the boundary to a text-generation service. Errors are
// always recoverable for callers: the matcher degrades to regex
// heuristics when a call fails.
type LLMClient interface {
	Complete(ctx context.Context, req LLMRequest) (string, error)
}
