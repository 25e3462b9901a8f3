package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"knowli_cli/ai"
	"knowli_cli/config"

	"google.golang.org/genai"
)

// fakeGoogleModels records the last GenerateContent call and returns a
// scripted response.
type fakeGoogleModels struct {
	lastModel    string
	lastContents []*genai.Content
	lastConfig   *genai.GenerateContentConfig
	response     *genai.GenerateContentResponse
	err          error
}

func (f *fakeGoogleModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.lastModel = model
	f.lastContents = contents
	f.lastConfig = cfg
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func googleReply(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: parts}},
		},
	}
}

func TestNewGoogleProvider_RequiresAPIKey(t *testing.T) {
	if _, err := NewGoogleProvider(config.GoogleConfig{}); err == nil {
		t.Fatal("Expected error for missing API key")
	}
}

func TestGoogleProvider_Generate(t *testing.T) {
	models := &fakeGoogleModels{
		response: googleReply(&genai.Part{Text: "Product: Revitalift"}),
	}
	p := &GoogleProvider{
		models:             models,
		defaultModel:       "gemini-2.0-flash-001",
		defaultTemperature: 0.4,
	}

	text, err := p.Generate(context.Background(), ai.GenerateRequest{
		System: "You are a beauty advisor.",
		Prompt: "I need a serum",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "Product: Revitalift" {
		t.Errorf("Unexpected reply: %s", text)
	}

	if models.lastModel != "gemini-2.0-flash-001" {
		t.Errorf("Unexpected model: %s", models.lastModel)
	}
	if len(models.lastContents) != 1 || models.lastContents[0].Parts[0].Text != "I need a serum" {
		t.Errorf("Unexpected contents: %+v", models.lastContents)
	}
	if models.lastConfig.SystemInstruction == nil ||
		models.lastConfig.SystemInstruction.Parts[0].Text != "You are a beauty advisor." {
		t.Error("Expected system instruction passed through")
	}
	if models.lastConfig.Temperature == nil || *models.lastConfig.Temperature != 0.4 {
		t.Errorf("Unexpected temperature: %v", models.lastConfig.Temperature)
	}
}

func TestGoogleProvider_GenerateRequiresPrompt(t *testing.T) {
	p := &GoogleProvider{models: &fakeGoogleModels{}}
	if _, err := p.Generate(context.Background(), ai.GenerateRequest{Prompt: "  "}); err == nil {
		t.Fatal("Expected error for empty prompt")
	}
}

func TestVisibleText_SkipsThoughtParts(t *testing.T) {
	resp := googleReply(
		&genai.Part{Text: "internal reasoning", Thought: true},
		&genai.Part{Text: "Hello"},
		&genai.Part{Text: " there"},
	)
	if got := visibleText(resp); got != "Hello there" {
		t.Errorf("visibleText = %q, want %q", got, "Hello there")
	}

	if got := visibleText(nil); got != "" {
		t.Errorf("Expected empty text for nil response, got %q", got)
	}
}

func TestNewOpenAIProvider_RequiresAPIKey(t *testing.T) {
	if _, err := NewOpenAIProvider(config.OpenAIConfig{}); err == nil {
		t.Fatal("Expected error for missing API key")
	}
}

func TestOpenAIProvider_Generate(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "chatcmpl-test",
			"object": "chat.completion",
			"model": "gpt-4o",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Product: Elvive"}}]
		}`))
	}))
	defer ts.Close()

	p, err := NewOpenAIProvider(config.OpenAIConfig{
		APIKey: "test-key",
		APIURL: ts.URL,
	})
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	text, err := p.Generate(context.Background(), ai.GenerateRequest{
		System: "You are a beauty advisor.",
		Prompt: "I need a shampoo",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "Product: Elvive" {
		t.Errorf("Unexpected reply: %s", text)
	}

	if !strings.HasSuffix(gotPath, "/chat/completions") {
		t.Errorf("Unexpected request path: %s", gotPath)
	}
	messages, _ := gotBody["messages"].([]any)
	if len(messages) != 2 {
		t.Fatalf("Expected system + user messages, got %d", len(messages))
	}
	first, _ := messages[0].(map[string]any)
	if first["role"] != "system" {
		t.Errorf("Expected system message first, got %v", first["role"])
	}
}

func TestNew_SelectsProvider(t *testing.T) {
	if _, err := New(config.ServerConfig{Provider: "mystery"}); err == nil {
		t.Error("Expected error for unknown provider")
	}

	if _, err := New(config.ServerConfig{Provider: config.ProviderGoogle}); err == nil {
		t.Error("Expected error for google provider without API key")
	}

	p, err := New(config.ServerConfig{
		Provider: config.ProviderOpenAI,
		OpenAI:   config.OpenAIConfig{APIKey: "test-key"},
	})
	if err != nil {
		t.Fatalf("Failed to create openai provider: %v", err)
	}
	if _, ok := p.(*OpenAIProvider); !ok {
		t.Errorf("Expected an OpenAI provider, got %T", p)
	}
}
