// Package advisor composes chat replies for the beauty-product advisory
// assistant: a product JSON payload followed by emoji-headed narrative
// sections, assembled from a fixed battery of LLM prompts.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"knowli_cli/ai"
	"knowli_cli/api"
)

const noAnswerReply = "I apologize, I couldn't generate a response."

// Section header emoji shared with the client-side reply parser.
const (
	emojiIngredients = "👩🏼‍🔬"
	emojiAdvantages  = "🌟"
	emojiSuitability = "✨"
	emojiQuestions   = "💫"
)

// Engine composes advisor replies over an LLM provider.
type Engine struct {
	provider ai.Provider
}

// NewEngine creates an engine over the given provider.
func NewEngine(provider ai.Provider) *Engine {
	return &Engine{provider: provider}
}

// productSummary is the JSON payload embedded at the head of the reply text.
type productSummary struct {
	Name        string   `json:"name"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Advantages  []string `json:"advantages"`
	Suitability []string `json:"suitability"`
	Questions   []string `json:"questions"`
}

// Compose builds the assistant reply for the given conversation. The last
// message is the current user turn; earlier messages provide context
// (previously recommended product, mentioned hair/skin concerns).
func (e *Engine) Compose(ctx context.Context, messages []api.Message) (*api.ChatResponse, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("at least one message is required")
	}
	current := messages[len(messages)-1].Content
	history := messages[:len(messages)-1]

	previousProduct := ""
	var concerns []string
	seen := make(map[string]bool)
	for _, msg := range history {
		if name := ExtractProductName(msg.Content); name != "" {
			previousProduct = name
		}
		for _, concern := range ExtractConcerns(msg.Content) {
			if !seen[concern] {
				seen[concern] = true
				concerns = append(concerns, concern)
			}
		}
	}

	wantsIngredients := strings.Contains(strings.ToLower(current), "ingredients")

	var productName, recommendation string
	if previousProduct != "" && wantsIngredients {
		// Direct ingredients question about the product already on the table.
		productName = previousProduct
		recommendation = "Product: " + productName
	} else {
		system := recommendationPrompt
		if previousProduct != "" {
			system += fmt.Sprintf("\n\nNote: User previously asked about %s.", previousProduct)
		}
		if len(concerns) > 0 {
			system += fmt.Sprintf("\n\nUser mentioned these conditions: %s.", strings.Join(concerns, ", "))
		}

		text, err := e.generate(ctx, "recommendation", system, current)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(text) == "" {
			return &api.ChatResponse{Text: noAnswerReply, Products: []api.Product{}}, nil
		}
		recommendation = text
		productName = ExtractProductName(text)
		if productName == "" {
			slog.Debug("No product name in recommendation, returning raw reply",
				"reply_size", len(text))
			return &api.ChatResponse{Text: text, Products: []api.Product{}}, nil
		}
	}

	slog.Info("Composing product reply",
		"product", productName,
		"concerns", len(concerns),
		"wants_ingredients", wantsIngredients)

	suitabilitySystem := fmt.Sprintf(suitabilityPrompt, productName)
	if len(concerns) > 0 {
		suitabilitySystem += fmt.Sprintf("\n\nAddress these specific concerns: %s.", strings.Join(concerns, ", "))
	}
	suitabilityText, err := e.generate(ctx, "suitability", suitabilitySystem,
		fmt.Sprintf("Why is %s right for the user?", productName))
	if err != nil {
		return nil, err
	}

	advantagesSystem := fmt.Sprintf(advantagesPrompt, productName)
	if len(concerns) > 0 {
		advantagesSystem += fmt.Sprintf("\n\nHighlight benefits relevant to: %s.", strings.Join(concerns, ", "))
	}
	advantagesText, err := e.generate(ctx, "advantages", advantagesSystem,
		fmt.Sprintf("What are the main advantages of %s", productName))
	if err != nil {
		return nil, err
	}

	reviewSystem := fmt.Sprintf(reviewPrompt, productName)
	if len(concerns) > 0 {
		reviewSystem += fmt.Sprintf("\n\nFocus on reviews relevant to: %s.", strings.Join(concerns, ", "))
	}
	reviewText, err := e.generate(ctx, "review", reviewSystem,
		fmt.Sprintf("What do users say about %s", productName))
	if err != nil {
		return nil, err
	}
	reviewSummary := ExtractReviewSummary(reviewText)

	imageText, err := e.generate(ctx, "image", fmt.Sprintf(imagePrompt, productName),
		fmt.Sprintf("Give me the image url for the product: %s", productName))
	if err != nil {
		return nil, err
	}
	imageURL := ExtractImageURL(imageText)

	ingredients := []string{}
	ingredientsText := ""
	if wantsIngredients {
		ingredientsText, err = e.generate(ctx, "ingredients", fmt.Sprintf(ingredientsPrompt, productName),
			fmt.Sprintf("Tell me about the ingredients in %s", productName))
		if err != nil {
			return nil, err
		}
		ingredients = SectionItems(ingredientsText, emojiIngredients)
	}

	questionsSystem := fmt.Sprintf(questionsPrompt, productName)
	if len(concerns) > 0 {
		questionsSystem += fmt.Sprintf("\n\nConsider these concerns in your questions: %s.", strings.Join(concerns, ", "))
	}
	questionsText, err := e.generate(ctx, "questions", questionsSystem,
		fmt.Sprintf("What follow-up questions should we ask about %s", productName))
	if err != nil {
		return nil, err
	}

	summary := productSummary{
		Name:        productName,
		ImageURL:    imageURL,
		Description: reviewSummary,
		Ingredients: ingredients,
		Advantages:  SectionItems(advantagesText, emojiAdvantages),
		Suitability: SectionItems(suitabilityText, emojiSuitability),
		Questions:   SectionItems(questionsText, emojiQuestions),
	}
	summaryJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal product summary: %w", err)
	}

	parts := []string{string(summaryJSON), recommendation, suitabilityText, reviewText}
	if ingredientsText != "" {
		parts = append(parts, ingredientsText)
	}
	parts = append(parts, questionsText)

	product := api.Product{
		Name:        productName,
		Description: reviewSummary,
		ImageURL:    imageURL,
		Ingredients: ingredients,
		Advantages:  summary.Advantages,
		Suitability: summary.Suitability,
		Questions:   summary.Questions,
	}
	product.ApplyDefaults()

	return &api.ChatResponse{
		Text:     strings.Join(parts, "\n\n"),
		Products: []api.Product{product},
	}, nil
}

func (e *Engine) generate(ctx context.Context, step, system, prompt string) (string, error) {
	text, err := e.provider.Generate(ctx, ai.GenerateRequest{System: system, Prompt: prompt})
	if err != nil {
		return "", fmt.Errorf("%s: %w", step, err)
	}
	slog.Debug("Prompt step completed", "step", step, "reply_size", len(text))
	return text, nil
}
