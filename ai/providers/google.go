package providers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"knowli_cli/ai"
	"knowli_cli/config"

	"google.golang.org/genai"
)

const (
	googleDefaultModel   = "gemini-2.0-flash-001"
	googleDefaultTimeout = 60
)

type googleModelsClient interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

var newGoogleClient = func(ctx context.Context, cfg *genai.ClientConfig) (*genai.Client, error) {
	return genai.NewClient(ctx, cfg)
}

// GoogleProvider implements the Provider interface using the native Google AI SDK.
type GoogleProvider struct {
	models             googleModelsClient
	defaultModel       string
	defaultTemperature float64
	defaultTimeout     time.Duration
}

// NewGoogleProvider creates a new Google provider from config.
func NewGoogleProvider(cfg config.GoogleConfig) (ai.Provider, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("google api_key is required")
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = googleDefaultModel
	}

	timeoutSeconds := cfg.APITimeoutSeconds
	if timeoutSeconds <= 0 {
		timeoutSeconds = googleDefaultTimeout
	}

	client, err := newGoogleClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create google client: %w", err)
	}

	slog.Debug("google_provider_ready",
		"model", model,
		"timeout_seconds", timeoutSeconds,
	)
	return &GoogleProvider{
		models:             client.Models,
		defaultModel:       model,
		defaultTemperature: cfg.Temperature,
		defaultTimeout:     time.Duration(timeoutSeconds) * time.Second,
	}, nil
}

// Generate runs a single prompt and returns the model's visible text.
func (p *GoogleProvider) Generate(ctx context.Context, req ai.GenerateRequest) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", fmt.Errorf("prompt is required")
	}

	contents := []*genai.Content{
		{
			Role: genai.RoleUser,
			Parts: []*genai.Part{
				{Text: req.Prompt},
			},
		},
	}

	temperature := p.defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(temperature)),
	}
	if system := strings.TrimSpace(req.System); system != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{
				{Text: system},
			},
		}
	}

	callCtx, cancel := p.withTimeout(ctx)
	defer cancel()

	resp, err := p.models.GenerateContent(callCtx, p.defaultModel, contents, cfg)
	if err != nil {
		return "", err
	}
	return visibleText(resp), nil
}

func (p *GoogleProvider) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline || p.defaultTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, p.defaultTimeout)
}

// visibleText joins the text parts of the first candidate, skipping
// thought parts emitted by reasoning-capable models.
func visibleText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			b.WriteString(part.Text)
		}
		break
	}
	return b.String()
}
