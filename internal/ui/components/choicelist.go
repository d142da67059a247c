package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/przant/jeopardy-trainer/internal/quiz"
	"github.com/przant/jeopardy-trainer/internal/ui/theme"
)

// ChoiceList renders the options of a multiple-choice question. The cursor
// moves freely; a choice is only picked on an explicit key.
type ChoiceList struct {
	Choices []quiz.Choice
	Cursor  int
}

// NewChoiceList builds a list from a question binding. The cursor starts on
// the previously selected choice, if any.
func NewChoiceList(b quiz.Binding) ChoiceList {
	c := ChoiceList{Choices: b.Choices}
	if i := b.SelectedIndex(); i >= 0 {
		c.Cursor = i
	}
	return c
}

// Update handles cursor movement. It returns the index of a picked choice,
// or -1 when the key did not pick anything. Space picks the choice under
// the cursor; digits pick by position and letters by label.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, int) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Choices) == 0 {
		return c, -1
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
		return c, -1
	case "down", "j":
		if c.Cursor < len(c.Choices)-1 {
			c.Cursor++
		}
		return c, -1
	case "space", " ":
		return c, c.Cursor
	}

	if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(c.Choices) {
		c.Cursor = n - 1
		return c, c.Cursor
	}
	if len([]rune(key)) == 1 {
		for i, ch := range c.Choices {
			if strings.EqualFold(ch.Label, key) {
				c.Cursor = i
				return c, i
			}
		}
	}
	return c, -1
}

// Sync copies selection state from a fresh binding.
func (c ChoiceList) Sync(b quiz.Binding) ChoiceList {
	c.Choices = b.Choices
	return c
}

// View renders the options, marking the selected one.
func (c ChoiceList) View(width int) string {
	var b strings.Builder
	for i, ch := range c.Choices {
		marker := "( )"
		if ch.Selected {
			marker = "(•)"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %s", prefix, marker, ch.Text)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case ch.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		case i == c.Cursor:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Width(width).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
