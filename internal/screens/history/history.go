package history

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/przant/jeopardy-trainer/internal/screen"
	"github.com/przant/jeopardy-trainer/internal/store"
	"github.com/przant/jeopardy-trainer/internal/ui/layout"
	"github.com/przant/jeopardy-trainer/internal/ui/theme"
)

// listLimit caps how many games the screen loads.
const listLimit = 50

// Source reads locally recorded games.
type Source interface {
	List(ctx context.Context, opts store.QueryOpts) ([]store.SessionRecord, error)
	Get(ctx context.Context, id string) (*store.SessionRecord, error)
}

type historyLoadedMsg struct {
	Records []store.SessionRecord
	Err     error
}

type detailLoadedMsg struct {
	ID     string
	Record *store.SessionRecord
	Err    error
}

// HistoryScreen displays past games and, on demand, their answers.
type HistoryScreen struct {
	src      Source
	records  []store.SessionRecord
	details  map[string]*store.SessionRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(src Source) *HistoryScreen {
	return &HistoryScreen{
		src:      src,
		details:  make(map[string]*store.SessionRecord),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	src := s.src
	return func() tea.Msg {
		records, err := src.List(context.Background(), store.QueryOpts{Limit: listLimit})
		return historyLoadedMsg{Records: records, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
		}
		s.loaded = true
		return s, nil

	case detailLoadedMsg:
		if msg.Err == nil {
			s.details[msg.ID] = msg.Record
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if len(s.records) == 0 {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, s.loadDetail(s.records[s.selected].ID)
		}
	}
	return s, nil
}

// loadDetail fetches a record's items once.
func (s *HistoryScreen) loadDetail(id string) tea.Cmd {
	if _, ok := s.details[id]; ok {
		return nil
	}
	src := s.src
	return func() tea.Msg {
		rec, err := src.Get(context.Background(), id)
		return detailLoadedMsg{ID: id, Record: rec, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games yet. Pick a board!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.records {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-10s  %d/%d  %s",
			prefix, rec.SubmittedAt.Local().Format("Jan 02, 2006 15:04"), rec.Domain.Title(),
			rec.Score, rec.Total, strconv.FormatFloat(rec.Percentage, 'f', -1, 64)+"%")

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(s.renderDetail(rec.ID, width))
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderDetail(id string, width int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	rec, ok := s.details[id]
	if !ok {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    loading...")) + "\n"
	}
	if len(rec.Items) == 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render("    No answers recorded")) + "\n"
	}

	var b strings.Builder
	for _, it := range rec.Items {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		mark := "✓"
		if !it.IsCorrect {
			style = lipgloss.NewStyle().Foreground(theme.Error)
			mark = "✗"
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(fmt.Sprintf("    %s %s  →  %s", mark, firstLine(it.QuestionText), it.CorrectAnswer))))
		b.WriteString("\n")
	}
	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
