package advisor

import (
	"regexp"
	"strings"
)

var (
	productNamePattern   = regexp.MustCompile(`(?i)Product:\s*([^\n]+)`)
	reviewSummaryPattern = regexp.MustCompile(`(?i)Reviews Summary:\s*([^\n]+(?:\.[^\n]+){0,2}\.)`)

	// Image URL candidates, most specific first.
	imageURLPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)PRODUCT_IMAGE_URL:\s*(https?://[^\s]+)`),
		regexp.MustCompile(`(?i)(?:image_url|image|img|src):\s*(https?://[^\s]+)`),
		regexp.MustCompile(`(?i)https?://[^\s]+\.(?:jpg|jpeg|png|gif|webp)`),
	}

	concernPattern = regexp.MustCompile(`(?:have|my)\s+((?:very|really|extremely|slightly)?\s*(?:oily|dry|damaged|sensitive|frizzy|thin|thick|colored|treated|curly|straight)\s+(?:hair|skin))`)
)

// ExtractProductName pulls the product name from a "Product: ..." line.
func ExtractProductName(text string) string {
	m := productNamePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ExtractReviewSummary pulls up to three sentences following a
// "Reviews Summary:" marker.
func ExtractReviewSummary(text string) string {
	m := reviewSummaryPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// ExtractImageURL finds a product image URL in the model reply, trying the
// declared PRODUCT_IMAGE_URL format first and falling back to looser
// patterns. Trailing punctuation is stripped.
func ExtractImageURL(text string) string {
	for _, pattern := range imageURLPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		url := m[0]
		if len(m) > 1 {
			url = m[1]
		}
		return strings.TrimRight(strings.TrimSpace(url), ".,)")
	}
	return ""
}

// SectionItems extracts the bullet items of the "## <emoji> ..." section.
func SectionItems(text, emoji string) []string {
	pattern := regexp.MustCompile(`## ` + regexp.QuoteMeta(emoji) + `[^\n]*\s*((?:•[^\n]+\n?)+)`)
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return []string{}
	}

	items := []string{}
	for _, line := range strings.Split(m[1], "\n") {
		if !strings.Contains(line, "•") {
			continue
		}
		item := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "•"))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ExtractConcerns pulls hair/skin condition phrases the user mentioned,
// in order of first appearance.
func ExtractConcerns(text string) []string {
	matches := concernPattern.FindAllStringSubmatch(strings.ToLower(text), -1)
	var concerns []string
	seen := make(map[string]bool)
	for _, m := range matches {
		concern := strings.Join(strings.Fields(m[1]), " ")
		if !seen[concern] {
			seen[concern] = true
			concerns = append(concerns, concern)
		}
	}
	return concerns
}
