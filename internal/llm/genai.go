package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// genaiCompleter implements Completer on top of the Gemini API.
type genaiCompleter struct {
	client *genai.Client
}

// NewGenAICompleter wraps a genai client as a Completer.
func NewGenAICompleter(client *genai.Client) Completer {
	return &genaiCompleter{client: client}
}

func (c *genaiCompleter) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	res, err := c.client.Models.GenerateContent(ctx, req.Model, []*genai.Content{
		genai.NewContentFromText(req.UserMessage, genai.RoleUser),
	}, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleModel),
		ResponseMIMEType:  "application/json",
		MaxOutputTokens:   req.MaxOutputTokens,
		Temperature:       genai.Ptr(req.Temperature),
	})
	if err != nil {
		return "", fmt.Errorf("llm: calling GenerateContent: %w", err)
	}
	if len(res.Candidates) != 1 || len(res.Candidates[0].Content.Parts) != 1 || res.Candidates[0].Content.Parts[0].Text == "" {
		return "", fmt.Errorf("llm: unexpected response from provider: %v", res)
	}
	return res.Candidates[0].Content.Parts[0].Text, nil
}
