package game

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/przant/jeopardy-trainer/internal/domain"
	"github.com/przant/jeopardy-trainer/internal/pages"
	"github.com/przant/jeopardy-trainer/internal/quiz"
	"github.com/przant/jeopardy-trainer/internal/ui/components"
)

// mockService implements quiz.Service for testing.
type mockService struct {
	submitErr error
	payload   []quiz.Submission
}

func (m *mockService) StartSession(context.Context, domain.Domain, int) ([]quiz.Question, error) {
	return []quiz.Question{
		{ID: "go-Q001", Type: quiz.TypeMultipleChoice, Difficulty: "easy", Text: "Zero value of a slice?",
			Options: []string{"A) nil", "B) []", "C) 0"}},
		{ID: "go-Q002", Type: quiz.TypeFillBlank, Difficulty: "medium", Text: "Start a goroutine with ____"},
		{ID: "go-Q003", Type: quiz.TypeMultipleChoice, Difficulty: "hard", Text: "Unbuffered send blocks until?",
			Options: []string{"A) receive", "B) close"}},
	}, nil
}

func (m *mockService) SubmitSession(_ context.Context, _ domain.Domain, answers []quiz.Submission) (*quiz.Report, error) {
	m.payload = answers
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	return &quiz.Report{Score: 1, Total: len(answers)}, nil
}

func newTestGame(t *testing.T) (*GameScreen, *mockService) {
	t.Helper()
	svc := &mockService{}
	p := quiz.NewPlayer(svc)
	s, err := p.Start(context.Background(), domain.Go)
	if err != nil {
		t.Fatal(err)
	}
	g := New(s, p, nil)
	g.Init()
	return g, svc
}

func press(g *GameScreen, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = g.Update(keyMsg(k))
	}
	return cmd
}

func keyMsg(k string) tea.KeyPressMsg {
	switch k {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "shift+tab":
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Code: r, Text: k}
}

func TestPreviousIsInertOnFirstQuestion(t *testing.T) {
	g, _ := newTestGame(t)
	press(g, "shift+tab")
	if g.session.Index() != 0 {
		t.Errorf("index = %d, want 0", g.session.Index())
	}
}

func TestChoiceSelectionSurvivesNavigation(t *testing.T) {
	g, _ := newTestGame(t)

	press(g, "2")
	if v, _ := g.session.Answer("go-Q001"); v != "B" {
		t.Fatalf("answer = %q, want B", v)
	}

	press(g, "tab", "shift+tab")
	if g.session.Index() != 0 {
		t.Fatalf("index = %d", g.session.Index())
	}
	if g.binding.SelectedIndex() != 1 || g.choices.Cursor != 1 {
		t.Errorf("selection not restored: selected=%d cursor=%d", g.binding.SelectedIndex(), g.choices.Cursor)
	}
	if !strings.Contains(g.View(100, 30), "(•) B) []") {
		t.Error("restored selection not rendered")
	}
}

func TestCursorAloneDoesNotAnswer(t *testing.T) {
	g, _ := newTestGame(t)
	press(g, "down")
	if _, ok := g.session.Answer("go-Q001"); ok {
		t.Error("moving the cursor recorded an answer")
	}
	press(g, "space")
	if v, _ := g.session.Answer("go-Q001"); v != "B" {
		t.Errorf("answer = %q, want B", v)
	}
}

func TestFillBlankRecordsEveryChange(t *testing.T) {
	g, _ := newTestGame(t)
	cmd := press(g, "tab")
	if cmd == nil {
		t.Fatal("expected delayed focus command for fill-blank")
	}
	g.Update(components.FocusMsg{ID: "go-Q002"})

	press(g, "g")
	if v, _ := g.session.Answer("go-Q002"); v != "g" {
		t.Errorf("after first key answer = %q", v)
	}
	press(g, "o")
	if v, _ := g.session.Answer("go-Q002"); v != "go" {
		t.Errorf("after second key answer = %q", v)
	}

	press(g, "tab", "shift+tab")
	if g.input.Value() != "go" {
		t.Errorf("field not pre-populated: %q", g.input.Value())
	}
}

func TestFillBlankRecordsPaste(t *testing.T) {
	g, _ := newTestGame(t)
	press(g, "tab")
	g.Update(components.FocusMsg{ID: "go-Q002"})

	g.Update(tea.PasteMsg{Content: "go"})
	if v, ok := g.session.Answer("go-Q002"); !ok || v != "go" {
		t.Fatalf("answer = %q (present=%v), want go", v, ok)
	}

	press(g, "tab", "shift+tab")
	if g.input.Value() != "go" {
		t.Errorf("field not pre-populated after paste: %q", g.input.Value())
	}
	if got := g.session.Payload()[1].UserAnswer; got != "go" {
		t.Errorf("payload[1] = %q, want go", got)
	}
}

func TestStaleFocusIsIgnored(t *testing.T) {
	g, _ := newTestGame(t)
	press(g, "tab") // fill-blank, focus pending
	press(g, "tab") // away before the focus fires
	press(g, "shift+tab")
	g.Update(components.FocusMsg{ID: "go-Q003"})
	if g.input.Focused() {
		t.Error("focus for another question was applied")
	}
}

func TestEnterOnLastSubmits(t *testing.T) {
	g, svc := newTestGame(t)
	press(g, "1", "tab", "tab")
	if !g.session.AtLast() {
		t.Fatal("expected last question")
	}
	cmd := press(g, "enter")
	if !g.submitting || cmd == nil {
		t.Fatal("expected submit in flight")
	}

	// Input is locked while scoring.
	press(g, "shift+tab")
	if g.session.Index() != 2 {
		t.Error("navigation allowed during submit")
	}

	msg := pages.Submit(g.player, g.session)()
	if _, ok := msg.(pages.ShowResultsMsg); !ok {
		t.Fatalf("got %T", msg)
	}
	if len(svc.payload) != 3 || svc.payload[0].UserAnswer != "A" || svc.payload[1].UserAnswer != "" {
		t.Errorf("payload = %+v", svc.payload)
	}
}

func TestSubmitFailureKeepsGame(t *testing.T) {
	g, svc := newTestGame(t)
	svc.submitErr = errors.New("502 bad gateway")
	press(g, "1", "tab", "tab", "2", "enter")

	g.Update(pages.Submit(g.player, g.session)())
	if g.submitting {
		t.Error("still submitting after failure")
	}
	if !g.notice.Visible {
		t.Fatal("expected failure notice")
	}
	if g.session.Answered() != 2 || g.session.Index() != 2 {
		t.Errorf("session changed: answered=%d index=%d", g.session.Answered(), g.session.Index())
	}

	press(g, "x") // dismiss
	svc.submitErr = nil
	press(g, "enter")
	if _, ok := pages.Submit(g.player, g.session)().(pages.ShowResultsMsg); !ok {
		t.Error("resubmit should succeed")
	}
}

func TestEscConfirmsBeforeAbandoning(t *testing.T) {
	g, _ := newTestGame(t)
	if cmd := press(g, "esc"); cmd != nil || !g.confirmQuit {
		t.Fatal("esc should ask for confirmation")
	}
	press(g, "n")
	if g.confirmQuit {
		t.Fatal("n should cancel")
	}

	press(g, "esc")
	cmd := press(g, "y")
	if cmd == nil {
		t.Fatal("expected home command")
	}
	if _, ok := cmd().(pages.ShowLandingMsg); !ok {
		t.Error("y should return to landing")
	}
}

func TestViewShowsPositionAndSubmitLabel(t *testing.T) {
	g, _ := newTestGame(t)
	v := g.View(100, 30)
	if !strings.Contains(v, "Question 1/3") {
		t.Errorf("position missing:\n%s", v)
	}
	press(g, "tab", "tab")
	if !strings.Contains(g.View(100, 30), "Submit") {
		t.Error("next should read Submit on the last question")
	}
	if g.Title() != "Gopardy" {
		t.Errorf("title = %q", g.Title())
	}
}
