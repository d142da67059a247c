package components

import (
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/przant/jeopardy-trainer/internal/ui/theme"
)

// FocusDelay is how long a freshly rendered answer field waits before it
// takes focus.
const FocusDelay = 100 * time.Millisecond

// FocusMsg asks the input with the matching ID to take focus.
type FocusMsg struct {
	ID string
}

// TextInput wraps bubbles/textinput with app styling. ID ties delayed
// focus requests to the question the input was built for.
type TextInput struct {
	Model    textinput.Model
	ID       string
	MaxWidth int
}

// NewTextInput creates a new styled, unfocused text input holding value.
func NewTextInput(id, placeholder, value string, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.SetValue(value)

	return TextInput{
		Model:    ti,
		ID:       id,
		MaxWidth: maxWidth,
	}
}

// FocusLater returns a command that focuses the input after FocusDelay.
func (t TextInput) FocusLater() tea.Cmd {
	id := t.ID
	return tea.Tick(FocusDelay, func(time.Time) tea.Msg {
		return FocusMsg{ID: id}
	})
}

// Focused reports whether the input accepts keystrokes.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Update handles messages. A FocusMsg for another ID is ignored, which
// drops focus requests that outlive their question.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if fm, ok := msg.(FocusMsg); ok {
		if fm.ID != t.ID {
			return t, nil
		}
		return t, t.Model.Focus()
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	border := theme.Border
	if t.Model.Focused() {
		border = theme.Primary
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	if t.MaxWidth > 0 {
		style = style.Width(t.MaxWidth)
	}
	return style.Render(t.Model.View())
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}
