package components

import (
	"charm.land/lipgloss/v2"

	"github.com/przant/jeopardy-trainer/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for all board sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for the card border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 2).
		Render(content)
}

// TitleBanner renders a game title in a double border, centered in width.
func TitleBanner(title string, width int) string {
	banner := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Foreground(theme.Accent).
		Bold(true).
		Padding(0, 3).
		Render(title)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, banner)
}

// Divider renders a horizontal rule at most 60 columns wide.
func Divider(width int) string {
	w := min(width-8, 60)
	if w < 0 {
		w = 0
	}
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(repeat("─", w))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, rule)
}

func repeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
