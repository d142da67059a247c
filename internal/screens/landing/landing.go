package landing

import (
	"fmt"
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/przant/jeopardy-trainer/internal/domain"
	"github.com/przant/jeopardy-trainer/internal/pages"
	"github.com/przant/jeopardy-trainer/internal/quiz"
	"github.com/przant/jeopardy-trainer/internal/screen"
	"github.com/przant/jeopardy-trainer/internal/ui/components"
	"github.com/przant/jeopardy-trainer/internal/ui/layout"
	"github.com/przant/jeopardy-trainer/internal/ui/theme"
)

// LandingScreen lets the user pick a domain and shows per-domain stats.
type LandingScreen struct {
	player  *quiz.Player
	stats   StatsSource
	history HistorySource
	initial domain.Domain
	logger  *slog.Logger

	menu     components.Menu
	domains  []domain.Domain
	gen      int
	loading  bool
	starting domain.Domain
	notice   components.Notice
	spinner  spinner.Model
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)
var _ screen.Resumer = (*LandingScreen)(nil)

// Option configures a LandingScreen.
type Option func(*LandingScreen)

// WithLogger logs stats and history failures to l.
func WithLogger(l *slog.Logger) Option {
	return func(s *LandingScreen) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a LandingScreen. When initial is a valid domain the screen
// starts a session for it as soon as it is shown.
func New(player *quiz.Player, stats StatsSource, history HistorySource, initial domain.Domain, opts ...Option) *LandingScreen {
	s := &LandingScreen{
		player:  player,
		stats:   stats,
		history: history,
		initial: initial,
		logger:  slog.New(slog.DiscardHandler),
		domains: domain.All(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	items := make([]components.MenuItem, len(s.domains))
	for i, d := range s.domains {
		items[i] = components.MenuItem{
			Label:  d.Title() + "  " + d.Blurb(),
			Detail: "loading stats...",
			Action: s.startCmd(d),
		}
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *LandingScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.refresh()}
	if s.initial.Valid() {
		d := s.initial
		s.initial = ""
		cmds = append(cmds, s.startCmd(d)())
	}
	return tea.Batch(cmds...)
}

// Resume refreshes stats when the user comes back from a game.
func (s *LandingScreen) Resume() tea.Cmd {
	s.starting = ""
	return s.refresh()
}

func (s *LandingScreen) Title() string {
	return "Choose a board"
}

func (s *LandingScreen) KeyHints() []layout.KeyHint {
	if s.notice.Visible {
		return []layout.KeyHint{{Key: "any key", Description: "Dismiss"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "R", Description: "Refresh stats"},
		{Key: "H", Description: "History"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *LandingScreen) refresh() tea.Cmd {
	s.gen++
	s.loading = true
	return loadStats(s.gen, s.stats, s.history)
}

func (s *LandingScreen) startCmd(d domain.Domain) func() tea.Cmd {
	return func() tea.Cmd {
		s.starting = d
		return tea.Batch(pages.Start(s.player, d), s.spinner.Tick)
	}
}

func (s *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Gen != s.gen {
			return s, nil
		}
		s.applyStats(msg)
		return s, nil

	case pages.StartFailedMsg:
		s.starting = ""
		s.notice = components.ShowNotice("Could not start "+msg.Domain.Title(), msg.Err.Error())
		return s, nil

	case spinner.TickMsg:
		if s.starting == "" {
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
		if s.starting != "" {
			return s, nil
		}
		switch msg.String() {
		case "r":
			return s, s.refresh()
		case "h":
			return s, pages.ShowHistory()
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *LandingScreen) applyStats(msg statsLoadedMsg) {
	s.loading = false
	if msg.HistErr != nil {
		s.logger.Warn("history unavailable", "error", msg.HistErr)
	}
	for i, d := range s.domains {
		if err := msg.Errs[d]; err != nil {
			s.logger.Warn("stats unavailable", "domain", d.String(), "error", err)
		}
		line := statsLine(msg.Stats[d], msg.Errs[d])
		if rec, ok := msg.Latest[d]; ok {
			line += "   " + lastScoreLine(rec)
		}
		s.menu.SetDetail(i, line)
	}
}

func (s *LandingScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(components.TitleBanner("JEOPARDY TRAINER", width))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Pick a board and answer %d questions.", s.player.QuestionCount())))
	b.WriteString("\n\n")

	if s.notice.Visible {
		b.WriteString(s.notice.View(width))
		return b.String()
	}

	cw := components.ContentWidth(width)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Card(s.menu.View(), cw)))
	b.WriteString("\n\n")

	status := ""
	switch {
	case s.starting != "":
		status = s.spinner.View() + " Dealing " + s.starting.Title() + " questions..."
	case s.loading:
		status = "refreshing stats..."
	}
	if status != "" {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(status))
	}
	return b.String()
}
