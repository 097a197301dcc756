package llm

import "context"

// CompletionRequest describes one call to a text-completion provider: a
// fixed system instruction, a single user message, and model parameters.
type CompletionRequest struct {
	Model             string
	SystemInstruction string
	UserMessage       string
	MaxOutputTokens   int32
	Temperature       float32
}

// Completer is the seam to the text-completion provider. It returns a single
// text block per call, which is expected to contain JSON. Modeling it as an
// interface allows deterministic test doubles.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
