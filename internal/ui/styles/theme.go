package styles

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Theme defines the fallback colors of the quote block.
type Theme struct {
	Quote  lipgloss.Color // Quote text (bright)
	Source lipgloss.Color // Source and date (dimmed)
	Author lipgloss.Color // Author accent (purple)
}

var defaultTheme = Theme{
	Quote:  lipgloss.Color("#e6e6e6"),
	Source: lipgloss.Color("#969696"),
	Author: lipgloss.Color("#a78bfa"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// QuoteStyles holds the styles used to print a quote.
type QuoteStyles struct {
	Quote  lipgloss.Style
	Source lipgloss.Style // italic
	Author lipgloss.Style
}

// NewQuoteStyles builds the quote styles from configured colors.
// A nil color falls back to the default theme.
func NewQuoteStyles(quote, source, author color.Color) QuoteStyles {
	t := T()
	return QuoteStyles{
		Quote:  lipgloss.NewStyle().Foreground(orDefault(quote, t.Quote)),
		Source: lipgloss.NewStyle().Foreground(orDefault(source, t.Source)).Italic(true),
		Author: lipgloss.NewStyle().Foreground(orDefault(author, t.Author)),
	}
}

func orDefault(c color.Color, fallback lipgloss.Color) lipgloss.Color {
	if c == nil {
		return fallback
	}
	return lipgloss.Color(ColorToHex(c))
}

// ColorToHex converts a color.Color to a "#rrggbb" string.
func ColorToHex(c color.Color) string {
	cf, ok := c.(colorful.Color)
	if !ok {
		cf, _ = colorful.MakeColor(c)
	}
	return cf.Hex()
}
