package api

// Message roles used in a conversation.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents a single message in the conversation
type Message struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest represents the request body sent to the advisor API
type ChatRequest struct {
	Messages []Message `json:"messages"`
}

// ChatResponse represents the response body returned by the advisor API.
// Only Text is consumed by the client rendering path; Products is reserved.
type ChatResponse struct {
	Text     string    `json:"text"`
	Products []Product `json:"products,omitempty"`
}

// Defaults applied to product fields absent from the source JSON.
const (
	DefaultPrice    = "€18.99"
	DefaultURL      = "#"
	DefaultImageURL = "/placeholder.png"
)

// Product represents a single product recommendation
type Product struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	URL         string   `json:"url"`
	ImageURL    string   `json:"image_url"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Advantages  []string `json:"advantages"`
	Suitability []string `json:"suitability"`
	Questions   []string `json:"questions"`
}

// ApplyDefaults fills absent fields with their documented defaults.
// List fields are never nil afterwards.
func (p *Product) ApplyDefaults() {
	if p.Price == "" {
		p.Price = DefaultPrice
	}
	if p.URL == "" {
		p.URL = DefaultURL
	}
	if p.ImageURL == "" {
		p.ImageURL = DefaultImageURL
	}
	if p.Ingredients == nil {
		p.Ingredients = []string{}
	}
	if p.Advantages == nil {
		p.Advantages = []string{}
	}
	if p.Suitability == nil {
		p.Suitability = []string{}
	}
	if p.Questions == nil {
		p.Questions = []string{}
	}
}

// ErrorResponse is the JSON error body returned by the advisor API.
type ErrorResponse struct {
	Error string `json:"error"`
}
