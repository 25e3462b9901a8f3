// Package styles provides the theme and style system for the knowli UI.
package styles

import (
	"charm.land/lipgloss/v2"
)

// Color palette - ANSI 256 colors used throughout the application
var (
	// Primary accent color (pink, the advisor brand color)
	ColorAccent = lipgloss.Color("212")

	// Text colors
	ColorText       = lipgloss.Color("252") // Primary text
	ColorTextMuted  = lipgloss.Color("245") // Secondary/muted text
	ColorTextBright = lipgloss.Color("15")  // Bright/highlighted text

	// Semantic colors
	ColorError   = lipgloss.Color("196") // Error messages
	ColorSuccess = lipgloss.Color("42")  // Success messages
	ColorPrice   = lipgloss.Color("220") // Product price

	// Border colors
	ColorBorder      = lipgloss.Color("212") // Default border (matches accent)
	ColorBorderMuted = lipgloss.Color("62")  // Muted border
)

// Panel/Box styles
var (
	// CardStyle frames a product recommendation
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)

	// InputStyle frames the message input area
	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderMuted)
)

// Text styles
var (
	// TitleStyle for the application header
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// SectionTitleStyle for narrative section headers
	SectionTitleStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	// ProductNameStyle for the product card headline
	ProductNameStyle = lipgloss.NewStyle().
				Foreground(ColorTextBright).
				Bold(true)

	// PriceStyle for the product price line
	PriceStyle = lipgloss.NewStyle().
			Foreground(ColorPrice).
			Bold(true)

	// TextStyle for normal text
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// TextMutedStyle for secondary/helper text
	TextMutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	// UserPrefixStyle for the "You:" transcript prefix
	UserPrefixStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	// AssistantPrefixStyle for the advisor transcript prefix
	AssistantPrefixStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	// SpinnerStyle for the in-flight indicator
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)
)
