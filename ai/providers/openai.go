package providers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"knowli_cli/ai"
	"knowli_cli/config"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	openAIDefaultAPIURL  = "https://api.openai.com/v1"
	openAIDefaultModel   = "gpt-4o"
	openAIDefaultTimeout = 30
)

// OpenAIProvider implements the Provider interface using the OpenAI API.
type OpenAIProvider struct {
	client             openai.Client
	defaultModel       string
	defaultTemperature float64
}

// NewOpenAIProvider creates a new OpenAI provider from config.
func NewOpenAIProvider(cfg config.OpenAIConfig) (ai.Provider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("openai api_key is required")
	}

	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = openAIDefaultAPIURL
	}

	model := cfg.Model
	if model == "" {
		model = openAIDefaultModel
	}

	timeout := cfg.APITimeoutSeconds
	if timeout <= 0 {
		timeout = openAIDefaultTimeout
	}

	httpClient := &http.Client{Timeout: time.Duration(timeout) * time.Second}

	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(apiURL),
		option.WithHTTPClient(httpClient),
	)

	return &OpenAIProvider{
		client:             client,
		defaultModel:       model,
		defaultTemperature: cfg.Temperature,
	}, nil
}

// Generate runs a single prompt and returns the completion text.
func (p *OpenAIProvider) Generate(ctx context.Context, req ai.GenerateRequest) (string, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return "", fmt.Errorf("prompt is required")
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if system := strings.TrimSpace(req.System); system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}
	messages = append(messages, openai.UserMessage(req.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.defaultModel),
		Messages: messages,
	}

	temperature := p.defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}
	if temperature > 0 {
		params.Temperature = openai.Float(temperature)
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

// New builds the provider selected by the server configuration.
func New(cfg config.ServerConfig) (ai.Provider, error) {
	switch cfg.Provider {
	case config.ProviderGoogle:
		return NewGoogleProvider(cfg.Google)
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg.OpenAI)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
