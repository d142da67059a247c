package game

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/przant/jeopardy-trainer/internal/markup"
	"github.com/przant/jeopardy-trainer/internal/pages"
	"github.com/przant/jeopardy-trainer/internal/quiz"
	"github.com/przant/jeopardy-trainer/internal/screen"
	"github.com/przant/jeopardy-trainer/internal/ui/components"
	"github.com/przant/jeopardy-trainer/internal/ui/layout"
)

// inputWidth is the width of the fill-blank answer field.
const inputWidth = 40

// GameScreen walks the user through the questions of one session.
type GameScreen struct {
	session  *quiz.Session
	player   *quiz.Player
	renderer markup.Renderer

	binding     quiz.Binding
	choices     components.ChoiceList
	input       components.TextInput
	submitting  bool
	confirmQuit bool
	notice      components.Notice
	spinner     spinner.Model
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.EscapeHandler = (*GameScreen)(nil)

// New creates a GameScreen for a freshly started session.
func New(session *quiz.Session, player *quiz.Player, renderer markup.Renderer) *GameScreen {
	if renderer == nil {
		renderer = markup.Plain{}
	}
	return &GameScreen{
		session:  session,
		player:   player,
		renderer: renderer,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (s *GameScreen) Init() tea.Cmd {
	return s.bind()
}

func (s *GameScreen) Title() string {
	return s.session.Domain().Title()
}

// HandlesEscape reports that Esc asks for confirmation instead of
// leaving the game.
func (s *GameScreen) HandlesEscape() bool { return true }

func (s *GameScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.notice.Visible:
		return []layout.KeyHint{{Key: "any key", Description: "Dismiss"}}
	case s.confirmQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon game"},
			{Key: "N", Description: "Keep playing"},
		}
	case s.submitting:
		return []layout.KeyHint{{Key: "", Description: "Scoring..."}}
	}

	next := "Next"
	if s.session.AtLast() {
		next = "Submit"
	}
	hints := []layout.KeyHint{
		{Key: "Tab/Enter", Description: next},
		{Key: "Shift+Tab", Description: "Previous"},
	}
	if s.binding.Question.Type == quiz.TypeMultipleChoice {
		hints = append(hints, layout.KeyHint{Key: "↑↓ Space/1-9", Description: "Choose"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

// bind rebuilds the input widgets from the displayed question and its
// recorded answer.
func (s *GameScreen) bind() tea.Cmd {
	s.binding = s.session.Bind()
	q := s.binding.Question
	if q.Type == quiz.TypeMultipleChoice {
		s.choices = components.NewChoiceList(s.binding)
		return nil
	}
	s.input = components.NewTextInput(q.ID, "Type your answer...", s.binding.Value, inputWidth)
	return s.input.FocusLater()
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.FocusMsg:
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case pages.SubmitFailedMsg:
		s.submitting = false
		s.notice = components.ShowNotice("Submit failed", msg.Err.Error()+"\n\nYour answers are kept. Submit again when ready.")
		return s, nil

	case spinner.TickMsg:
		if !s.submitting {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.binding.Question.Type == quiz.TypeFillBlank && !s.submitting {
		return s, s.updateInput(msg)
	}
	return s, nil
}

func (s *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.notice.Visible {
		s.notice = s.notice.Dismiss()
		return s, nil
	}
	if s.submitting {
		return s, nil
	}
	if s.confirmQuit {
		switch key {
		case "y", "Y":
			return s, pages.Home()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "tab":
		return s, s.navigate(quiz.Forward)
	case "shift+tab":
		return s, s.navigate(quiz.Backward)
	case "enter":
		if s.session.AtLast() {
			return s, s.submit()
		}
		return s, s.navigate(quiz.Forward)
	}

	if s.binding.Question.Type == quiz.TypeMultipleChoice {
		return s, s.handleChoiceKey(msg)
	}
	return s, s.updateInput(msg)
}

func (s *GameScreen) handleChoiceKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "h":
		return s.navigate(quiz.Backward)
	case "right", "l":
		return s.navigate(quiz.Forward)
	}

	var picked int
	s.choices, picked = s.choices.Update(msg)
	if picked < 0 {
		return nil
	}
	b, err := s.binding.Choose(picked)
	if err != nil {
		return nil
	}
	s.binding = b
	s.choices = s.choices.Sync(b)
	return nil
}

// updateInput feeds the answer field and records every change as it
// happens, whether it came from a key press or a paste.
func (s *GameScreen) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if v := s.input.Value(); v != s.binding.Value {
		if b, err := s.binding.Record(v); err == nil {
			s.binding = b
		}
	}
	return cmd
}

// navigate moves one question and rebinds. Out-of-range moves do nothing.
func (s *GameScreen) navigate(dir quiz.Direction) tea.Cmd {
	if !s.session.Navigate(dir) {
		return nil
	}
	return s.bind()
}

func (s *GameScreen) submit() tea.Cmd {
	s.submitting = true
	return tea.Batch(pages.Submit(s.player, s.session), s.spinner.Tick)
}
