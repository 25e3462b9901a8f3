// Package ai defines the LLM provider abstraction used by the advisor engine.
package ai

import "context"

// GenerateRequest is a single prompt run against an LLM provider.
type GenerateRequest struct {
	System      string
	Prompt      string
	Temperature *float64
}

// Provider defines the LLM interface used by the advisor engine.
type Provider interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}
