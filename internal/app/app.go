package app

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/przant/jeopardy-trainer/internal/domain"
	"github.com/przant/jeopardy-trainer/internal/markup"
	"github.com/przant/jeopardy-trainer/internal/pages"
	"github.com/przant/jeopardy-trainer/internal/quiz"
	"github.com/przant/jeopardy-trainer/internal/router"
	"github.com/przant/jeopardy-trainer/internal/screen"
	"github.com/przant/jeopardy-trainer/internal/screens/game"
	"github.com/przant/jeopardy-trainer/internal/screens/history"
	"github.com/przant/jeopardy-trainer/internal/screens/landing"
	"github.com/przant/jeopardy-trainer/internal/screens/results"
	"github.com/przant/jeopardy-trainer/internal/ui/layout"
	"github.com/przant/jeopardy-trainer/internal/ui/theme"
)

// Options holds the dependencies the screens need.
type Options struct {
	Player   *quiz.Player
	Stats    landing.StatsSource
	History  landing.HistorySource
	Records  history.Source
	Renderer markup.Renderer
	Logger   *slog.Logger

	// InitialDomain, when set, starts a session right away.
	InitialDomain domain.Domain

	// Status is shown on the right of the header, e.g. the server address.
	Status string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	page   pages.Page
	width  int
	height int
}

// newAppModel creates a new AppModel with the landing screen.
func newAppModel(opts Options) AppModel {
	if opts.Renderer == nil {
		opts.Renderer = markup.Plain{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	theme.Apply(theme.DefaultName)
	root := landing.New(opts.Player, opts.Stats, opts.History, opts.InitialDomain,
		landing.WithLogger(opts.Logger))
	return AppModel{
		opts:   opts,
		router: router.New(root),
		page:   pages.Landing,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if eh, ok := m.router.Active().(screen.EscapeHandler); ok && eh.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}

	case pages.ShowGameMsg:
		d := msg.Session.Domain()
		theme.Apply(d.Theme())
		m.transition(pages.Game, "domain", d.String(), "questions", msg.Session.Len())
		g := game.New(msg.Session, m.opts.Player, m.opts.Renderer)
		if m.router.Depth() == 1 {
			return m, m.router.Push(g)
		}
		return m, m.router.Replace(g)

	case pages.ShowResultsMsg:
		m.transition(pages.Results, "domain", msg.Session.Domain().String(),
			"score", msg.Report.Score, "total", msg.Report.Total)
		r := results.New(msg.Session.Domain(), msg.Report, m.opts.Player, m.opts.Renderer)
		return m, m.router.Replace(r)

	case pages.ShowLandingMsg:
		theme.Apply(theme.DefaultName)
		m.transition(pages.Landing)
		return m, m.router.Reset()

	case pages.ShowHistoryMsg:
		if m.opts.Records == nil || m.router.Depth() > 1 {
			return m, nil
		}
		m.transition(pages.History)
		return m, m.router.Push(history.New(m.opts.Records))

	case pages.StartFailedMsg:
		m.opts.Logger.Warn("start failed", "domain", msg.Domain.String(), "error", msg.Err)

	case pages.SubmitFailedMsg:
		m.opts.Logger.Warn("submit failed", "error", msg.Err)
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m *AppModel) transition(to pages.Page, attrs ...any) {
	m.opts.Logger.Info("page", append([]any{"from", m.page.String(), "to", to.String()}, attrs...)...)
	m.page = to
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.opts.Status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := max(m.height-headerHeight-footerHeight, 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
