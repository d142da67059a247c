package components

import (
	"charm.land/lipgloss/v2"

	"github.com/przant/jeopardy-trainer/internal/ui/theme"
)

// Notice is a blocking message box. While Visible, screens route every key
// to dismissing it.
type Notice struct {
	Title   string
	Message string
	Visible bool
}

// ShowNotice returns a visible notice.
func ShowNotice(title, message string) Notice {
	return Notice{Title: title, Message: message, Visible: true}
}

// Dismiss hides the notice.
func (n Notice) Dismiss() Notice {
	n.Visible = false
	return n
}

// View renders the notice centered in width.
func (n Notice) View(width int) string {
	if !n.Visible {
		return ""
	}
	w := min(width-8, 56)
	if w < 20 {
		w = 20
	}
	body := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(n.Title) +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Text).Width(w-4).Render(n.Message) +
		"\n\n" +
		theme.Hint.Render("press any key to continue")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Error).
		Padding(1, 2).
		Width(w).
		Render(body)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
