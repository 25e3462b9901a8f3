package reply

import (
	"reflect"
	"testing"

	"knowli_cli/api"
)

func TestExtractProduct_SimpleObject(t *testing.T) {
	text := `Here is my recommendation:
{"name": "Revitalift Serum", "description": "Brightens skin"}
Hope that helps!`

	p := ExtractProduct(text)
	if p == nil {
		t.Fatal("Expected a product, got nil")
	}
	if p.Name != "Revitalift Serum" {
		t.Errorf("Expected name 'Revitalift Serum', got '%s'", p.Name)
	}
	if p.Description != "Brightens skin" {
		t.Errorf("Expected description 'Brightens skin', got '%s'", p.Description)
	}

	// Optional fields default deterministically
	if p.Price != api.DefaultPrice {
		t.Errorf("Expected default price '%s', got '%s'", api.DefaultPrice, p.Price)
	}
	if p.URL != api.DefaultURL {
		t.Errorf("Expected default URL '%s', got '%s'", api.DefaultURL, p.URL)
	}
	if p.ImageURL != api.DefaultImageURL {
		t.Errorf("Expected default image URL '%s', got '%s'", api.DefaultImageURL, p.ImageURL)
	}
	for field, list := range map[string][]string{
		"ingredients": p.Ingredients,
		"advantages":  p.Advantages,
		"suitability": p.Suitability,
		"questions":   p.Questions,
	} {
		if list == nil {
			t.Errorf("Expected %s to default to an empty list, got nil", field)
		}
		if len(list) != 0 {
			t.Errorf("Expected %s to be empty, got %v", field, list)
		}
	}
}

func TestExtractProduct_NoObject(t *testing.T) {
	if p := ExtractProduct("No product here, just advice about moisturizing."); p != nil {
		t.Errorf("Expected nil for text without braces, got %+v", p)
	}
	if p := ExtractProduct(""); p != nil {
		t.Errorf("Expected nil for empty text, got %+v", p)
	}
}

func TestExtractProduct_NestedBraces(t *testing.T) {
	text := `{"name": "Elvive Mask", "description": "Repairs hair", "meta": {"line": "Elvive"}}`

	p := ExtractProduct(text)
	if p == nil {
		t.Fatal("Expected a product from nested JSON, got nil")
	}
	if p.Name != "Elvive Mask" {
		t.Errorf("Expected name 'Elvive Mask', got '%s'", p.Name)
	}
}

func TestExtractProduct_DeeplyNestedBraces(t *testing.T) {
	// The depth scanner handles arbitrary nesting, not just one level.
	text := `{"name": "Age Perfect", "description": "d", "a": {"b": {"c": 1}}}`

	p := ExtractProduct(text)
	if p == nil {
		t.Fatal("Expected a product from deeply nested JSON, got nil")
	}
	if p.Name != "Age Perfect" {
		t.Errorf("Expected name 'Age Perfect', got '%s'", p.Name)
	}
}

func TestExtractProduct_BracesInsideStrings(t *testing.T) {
	text := `{"name": "Mix {2-in-1}", "description": "Contains \"quoted\" text and a } in a string"}`

	p := ExtractProduct(text)
	if p == nil {
		t.Fatal("Expected a product, got nil")
	}
	if p.Name != "Mix {2-in-1}" {
		t.Errorf("Expected braces preserved inside string, got '%s'", p.Name)
	}
}

func TestExtractProduct_MalformedJSON(t *testing.T) {
	if p := ExtractProduct("{not valid json}"); p != nil {
		t.Errorf("Expected nil for malformed JSON, got %+v", p)
	}
	// Unbalanced object never closes
	if p := ExtractProduct(`{"name": "x"`); p != nil {
		t.Errorf("Expected nil for unbalanced braces, got %+v", p)
	}
}

func TestExtractProduct_FirstObjectOnly(t *testing.T) {
	text := `{"name": "First"} and later {"name": "Second"}`

	p := ExtractProduct(text)
	if p == nil {
		t.Fatal("Expected a product, got nil")
	}
	if p.Name != "First" {
		t.Errorf("Expected only the first object to be considered, got '%s'", p.Name)
	}
}

func TestSections_NoHeader(t *testing.T) {
	sections := Sections("Just plain advice with no headers.\n• stray bullet")
	if len(sections) != 0 {
		t.Errorf("Expected zero sections without a recognized header, got %d", len(sections))
	}
}

func TestSections_SingleSection(t *testing.T) {
	sections := Sections("## 🌟 Title\n•A\n•B")
	if len(sections) != 1 {
		t.Fatalf("Expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != "## 🌟 Title" {
		t.Errorf("Expected title '## 🌟 Title', got '%s'", sections[0].Title)
	}
	if !reflect.DeepEqual(sections[0].Bullets, []string{"A", "B"}) {
		t.Errorf("Expected bullets [A B], got %v", sections[0].Bullets)
	}
}

func TestSections_DropsPreamble(t *testing.T) {
	text := `{"name": "Product JSON payload"}

Some narrative preamble.

## ✨ WHY IT'S RIGHT FOR YOU
• Suits oily skin
• Lightweight texture`

	sections := Sections(text)
	if len(sections) != 1 {
		t.Fatalf("Expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != "## ✨ WHY IT'S RIGHT FOR YOU" {
		t.Errorf("Unexpected title: '%s'", sections[0].Title)
	}
	if len(sections[0].Bullets) != 2 {
		t.Errorf("Expected 2 bullets, got %v", sections[0].Bullets)
	}
}

func TestSections_OrderPreserved(t *testing.T) {
	text := "## 🌟 Main Product Benefits\n• Hydrates\n\n" +
		"## ✨ WHY IT'S RIGHT FOR YOU\n• For dry skin\n\n" +
		"## 💫 PERSONALIZATION QUESTIONS\n• What is your routine?\n\n" +
		"## 👩🏼‍🔬 Key Ingredients:\n• Hyaluronic acid"

	sections := Sections(text)
	if len(sections) != 4 {
		t.Fatalf("Expected 4 sections, got %d", len(sections))
	}
	wantTitles := []string{
		"## 🌟 Main Product Benefits",
		"## ✨ WHY IT'S RIGHT FOR YOU",
		"## 💫 PERSONALIZATION QUESTIONS",
		"## 👩🏼‍🔬 Key Ingredients:",
	}
	for i, want := range wantTitles {
		if sections[i].Title != want {
			t.Errorf("Section %d: expected title '%s', got '%s'", i, want, sections[i].Title)
		}
	}
}

func TestSections_BulletTrimming(t *testing.T) {
	sections := Sections("## 🌟 Benefits\n•   spaced out   \n•\n•last")
	if len(sections) != 1 {
		t.Fatalf("Expected 1 section, got %d", len(sections))
	}
	if !reflect.DeepEqual(sections[0].Bullets, []string{"spaced out", "last"}) {
		t.Errorf("Expected trimmed bullets without empties, got %v", sections[0].Bullets)
	}
}

func TestSections_UnrecognizedHeaderIgnored(t *testing.T) {
	// The review header (💭) is not in the marker set and must not split.
	text := "## 💭 What other users say about this product:\nGreat stuff.\n\n## 🌟 Benefits\n• Shine"

	sections := Sections(text)
	if len(sections) != 1 {
		t.Fatalf("Expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != "## 🌟 Benefits" {
		t.Errorf("Unexpected title: '%s'", sections[0].Title)
	}
}
