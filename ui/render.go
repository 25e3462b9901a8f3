package ui

import (
	"strings"

	"knowli_cli/api"
	"knowli_cli/reply"
	"knowli_cli/ui/styles"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

const (
	userPrefix      = "You: "
	assistantPrefix = "💄 Advisor"
	separator       = "───────────────────────"
)

// Transcript renders the full conversation for the viewport.
func Transcript(messages []api.Message, width int) string {
	var sb strings.Builder
	for i, msg := range messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if msg.Role == api.RoleUser {
			if i > 0 {
				sb.WriteString(styles.TextMutedStyle.Render(separator))
				sb.WriteString("\n\n")
			}
			line := styles.UserPrefixStyle.Render(userPrefix) + styles.TextStyle.Render(msg.Content)
			sb.WriteString(wrapTo(line, width))
		} else {
			sb.WriteString(styles.AssistantPrefixStyle.Render(assistantPrefix))
			sb.WriteString("\n")
			sb.WriteString(renderAssistant(msg.Content, width))
		}
	}
	return sb.String()
}

// renderAssistant renders one assistant reply: an optional product card
// followed by the parsed narrative sections. A reply that yields neither a
// product nor sections is shown verbatim, so greetings and fallback errors
// stay visible.
func renderAssistant(content string, width int) string {
	product := reply.ExtractProduct(content)
	sections := reply.Sections(content)

	if product == nil && len(sections) == 0 {
		return wrapTo(styles.TextStyle.Render(content), width)
	}

	var parts []string
	if product != nil {
		parts = append(parts, renderProductCard(product, width))
	}
	for _, section := range sections {
		parts = append(parts, renderSection(section, width))
	}
	return strings.Join(parts, "\n\n")
}

// wrapTo soft-wraps s to width. The viewport truncates long lines instead
// of wrapping, so everything headed for it must be wrapped here.
func wrapTo(s string, width int) string {
	if width <= 0 {
		return s
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

func renderProductCard(p *api.Product, width int) string {
	innerWidth := width - 8 // card border and padding
	if innerWidth < 20 {
		innerWidth = 20
	}

	var lines []string
	lines = append(lines, styles.ProductNameStyle.Render(p.Name))
	lines = append(lines, styles.PriceStyle.Render("Price: "+p.Price))
	if p.URL != api.DefaultURL {
		lines = append(lines, styles.TextMutedStyle.Render(runewidth.Truncate(p.URL, innerWidth, "…")))
	}
	if p.Description != "" {
		lines = append(lines, "", styles.TextStyle.Render(p.Description))
	}
	lines = append(lines, "", styles.TextMutedStyle.Render("🛍️ Visit the product page to buy"))

	return styles.CardStyle.Render(wrapTo(strings.Join(lines, "\n"), innerWidth))
}

func renderSection(section reply.Section, width int) string {
	title := strings.TrimSpace(strings.TrimPrefix(section.Title, "##"))

	var sb strings.Builder
	sb.WriteString(wrapTo(styles.SectionTitleStyle.Render(title), width))
	for _, bullet := range section.Bullets {
		sb.WriteString("\n")
		sb.WriteString(wrapTo(styles.TextStyle.Render("  • "+bullet), width))
	}
	return sb.String()
}
