package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/przant/jeopardy-trainer/internal/quiz"
	"github.com/przant/jeopardy-trainer/internal/ui/components"
	"github.com/przant/jeopardy-trainer/internal/ui/theme"
)

func (s *GameScreen) View(width, height int) string {
	if s.notice.Visible {
		return "\n\n" + s.notice.View(width)
	}
	if s.confirmQuit {
		return renderQuitConfirm(width, s.session.Answered())
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the displayed question with its input and
// the navigation affordances.
func (s *GameScreen) renderQuestionView(width int) string {
	q := s.binding.Question
	cw := components.ContentWidth(width)

	var b strings.Builder

	// Position and badges.
	position := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.session.Index()+1, s.session.Len()))
	badges := badge(q.Difficulty) + " " + badge(typeLabel(q.Type))
	infoLine := position
	if pad := width - lipgloss.Width(position) - lipgloss.Width(badges) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + badges
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question text.
	text := s.renderer.Render(q.Text, cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Foreground(theme.Text).Bold(true).Render(text)))
	b.WriteString("\n\n")

	// Input area.
	var input string
	if q.Type == quiz.TypeMultipleChoice {
		input = s.choices.View(cw)
	} else {
		input = s.input.View()
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, input))
	b.WriteString("\n\n")

	// Navigation.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderButtons()))
	b.WriteString("\n\n")

	progress := components.NewProgressBar("Answered", s.session.Answered(), s.session.Len(), min(cw, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))

	if s.submitting {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render(s.spinner.View() + " Scoring your answers..."))
	}

	return b.String()
}

// renderButtons draws the previous and next affordances. Previous is inert
// on the first question and next becomes submit on the last.
func (s *GameScreen) renderButtons() string {
	prev := components.NewButton("Previous", "⇧Tab")
	prev.Disabled = s.session.AtFirst() || s.submitting

	next := components.NewButton("Next", "Tab")
	if s.session.AtLast() {
		next = components.NewButton("Submit", "Enter")
		next.Active = true
	}
	next.Disabled = s.submitting

	return lipgloss.JoinHorizontal(lipgloss.Center, prev.View(), "   ", next.View())
}

func renderQuitConfirm(width, answered int) string {
	msg := "Abandon this game?"
	detail := fmt.Sprintf("%d answers will be discarded.", answered)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(msg))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detail))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Y to leave   N to keep playing"))
	return b.String()
}

func badge(label string) string {
	if label == "" {
		return ""
	}
	return theme.Badge.Render(label)
}

func typeLabel(t quiz.QuestionType) string {
	switch t {
	case quiz.TypeMultipleChoice:
		return "multiple choice"
	case quiz.TypeFillBlank:
		return "fill in the blank"
	}
	return string(t)
}
