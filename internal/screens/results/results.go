package results

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/przant/jeopardy-trainer/internal/domain"
	"github.com/przant/jeopardy-trainer/internal/markup"
	"github.com/przant/jeopardy-trainer/internal/pages"
	"github.com/przant/jeopardy-trainer/internal/quiz"
	"github.com/przant/jeopardy-trainer/internal/screen"
	"github.com/przant/jeopardy-trainer/internal/ui/components"
	"github.com/przant/jeopardy-trainer/internal/ui/layout"
	"github.com/przant/jeopardy-trainer/internal/ui/theme"
)

// NoAnswer stands in for an empty user answer.
const NoAnswer = "(no answer)"

// ResultsScreen displays the scored outcome of a submitted session.
type ResultsScreen struct {
	domain   domain.Domain
	report   *quiz.Report
	player   *quiz.Player
	renderer markup.Renderer

	offset   int
	retrying bool
	notice   components.Notice
	spinner  spinner.Model
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.EscapeHandler = (*ResultsScreen)(nil)

// New creates a ResultsScreen.
func New(d domain.Domain, report *quiz.Report, player *quiz.Player, renderer markup.Renderer) *ResultsScreen {
	if renderer == nil {
		renderer = markup.Plain{}
	}
	return &ResultsScreen{
		domain:   d,
		report:   report,
		player:   player,
		renderer: renderer,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return s.domain.ResultsTitle()
}

// HandlesEscape reports that Esc goes home instead of popping.
func (s *ResultsScreen) HandlesEscape() bool { return true }

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.notice.Visible {
		return []layout.KeyHint{{Key: "any key", Description: "Dismiss"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Play again"},
		{Key: "H/Esc", Description: "Home"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pages.StartFailedMsg:
		s.retrying = false
		s.notice = components.ShowNotice("Could not start a new game", msg.Err.Error())
		return s, nil

	case spinner.TickMsg:
		if !s.retrying {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		if s.notice.Visible {
			s.notice = s.notice.Dismiss()
			return s, nil
		}
		if s.retrying {
			return s, nil
		}
		switch msg.String() {
		case "r":
			s.retrying = true
			return s, tea.Batch(pages.Start(s.player, s.domain), s.spinner.Tick)
		case "h", "esc":
			return s, pages.Home()
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		case "home", "g":
			s.offset = 0
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	if s.notice.Visible {
		return "\n\n" + s.notice.View(width)
	}

	lines := strings.Split(s.render(width), "\n")
	if s.offset > len(lines)-height {
		s.offset = max(len(lines)-height, 0)
	}
	end := min(s.offset+height, len(lines))
	return strings.Join(lines[s.offset:end], "\n")
}

func (s *ResultsScreen) render(width int) string {
	rep := s.report
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(components.TitleBanner(s.domain.ResultsTitle(), width))
	b.WriteString("\n\n")

	score := fmt.Sprintf("Score: %d/%d   %s", rep.Score, rep.Total, FormatPercentage(rep.Percentage))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(score))
	b.WriteString("\n")
	bar := components.NewProgressBar("", rep.Score, rep.Total, min(cw, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
		Render(fmt.Sprintf("%d incorrect", rep.Incorrect())))
	b.WriteString("\n\n")

	if s.retrying {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render(s.spinner.View() + " Dealing a new board..."))
		b.WriteString("\n\n")
	}

	b.WriteString(components.Divider(width))
	b.WriteString("\n\n")

	for i, item := range rep.Items {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			components.Card(s.renderItem(i, item, cw-10), cw)))
		b.WriteString("\n")
	}
	return b.String()
}

// renderItem renders one verdict. The user's answer is only shown when it
// was wrong.
func (s *ResultsScreen) renderItem(i int, item quiz.ResultItem, width int) string {
	var b strings.Builder

	mark := theme.Correct.Render("✅ Correct")
	if !item.IsCorrect {
		mark = theme.Incorrect.Render("❌ Incorrect")
	}
	b.WriteString(fmt.Sprintf("%d. %s\n", i+1, mark))
	b.WriteString(s.renderer.Render(item.QuestionText, width))
	b.WriteString("\n\n")

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	if !item.IsCorrect {
		answer := item.UserAnswer
		if answer == "" {
			answer = NoAnswer
		}
		b.WriteString(label.Render("Your answer:    ") + theme.Incorrect.Render(answer) + "\n")
	}
	b.WriteString(label.Render("Correct answer: ") + theme.Correct.Render(item.CorrectAnswer) + "\n")
	if item.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(item.Explanation))
	}
	return b.String()
}

// FormatPercentage renders a percentage without trailing zeros, e.g.
// "70%" or "66.7%".
func FormatPercentage(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}
