// Package pages holds the messages that move the app between its views.
package pages

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/przant/jeopardy-trainer/internal/domain"
	"github.com/przant/jeopardy-trainer/internal/quiz"
)

// Page identifies one of the app views.
type Page int

const (
	Landing Page = iota
	Game
	Results
	History
)

func (p Page) String() string {
	switch p {
	case Landing:
		return "landing"
	case Game:
		return "game"
	case Results:
		return "results"
	case History:
		return "history"
	}
	return "unknown"
}

// ShowGameMsg installs a freshly started session and displays its first
// question.
type ShowGameMsg struct {
	Session *quiz.Session
}

// ShowResultsMsg displays the scored outcome of a submitted session.
type ShowResultsMsg struct {
	Session *quiz.Session
	Report  *quiz.Report
}

// ShowLandingMsg discards the current session and returns to the domain
// picker.
type ShowLandingMsg struct{}

// ShowHistoryMsg opens the list of locally recorded games.
type ShowHistoryMsg struct{}

// StartFailedMsg reports a failed start. The sender's view stays put.
type StartFailedMsg struct {
	Domain domain.Domain
	Err    error
}

// SubmitFailedMsg reports a failed submit. The session is unchanged.
type SubmitFailedMsg struct {
	Err error
}

// Start returns a command that starts a session for d and reports either
// ShowGameMsg or StartFailedMsg.
func Start(p *quiz.Player, d domain.Domain) tea.Cmd {
	return func() tea.Msg {
		s, err := p.Start(context.Background(), d)
		if err != nil {
			return StartFailedMsg{Domain: d, Err: err}
		}
		return ShowGameMsg{Session: s}
	}
}

// Submit returns a command that submits s and reports either
// ShowResultsMsg or SubmitFailedMsg.
func Submit(p *quiz.Player, s *quiz.Session) tea.Cmd {
	return func() tea.Msg {
		rep, err := p.Submit(context.Background(), s)
		if err != nil {
			return SubmitFailedMsg{Err: err}
		}
		return ShowResultsMsg{Session: s, Report: rep}
	}
}

// Home returns a command that goes back to the domain picker.
func Home() tea.Cmd {
	return func() tea.Msg { return ShowLandingMsg{} }
}

// ShowHistory returns a command that opens the local history.
func ShowHistory() tea.Cmd {
	return func() tea.Msg { return ShowHistoryMsg{} }
}
