package results

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/przant/jeopardy-trainer/internal/domain"
	"github.com/przant/jeopardy-trainer/internal/pages"
	"github.com/przant/jeopardy-trainer/internal/quiz"
)

type mockService struct{ startErr error }

func (m mockService) StartSession(context.Context, domain.Domain, int) ([]quiz.Question, error) {
	if m.startErr != nil {
		return nil, m.startErr
	}
	return []quiz.Question{{ID: "k8s-Q009", Type: quiz.TypeFillBlank}}, nil
}

func (mockService) SubmitSession(context.Context, domain.Domain, []quiz.Submission) (*quiz.Report, error) {
	return &quiz.Report{}, nil
}

func testReport() *quiz.Report {
	return &quiz.Report{
		Score:      1,
		Total:      3,
		Percentage: 33.3,
		Items: []quiz.ResultItem{
			{QuestionText: "Smallest deployable unit?", IsCorrect: true, UserAnswer: "A", CorrectAnswer: "A", Explanation: "Pods."},
			{QuestionText: "CLI to talk to the API server: ____", IsCorrect: false, UserAnswer: "", CorrectAnswer: "kubectl"},
			{QuestionText: "Which object keeps N replicas?", IsCorrect: false, UserAnswer: "C", CorrectAnswer: "B"},
		},
	}
}

func key(k string) tea.KeyPressMsg {
	if k == "esc" {
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	}
	return tea.KeyPressMsg{Code: []rune(k)[0], Text: k}
}

func newTestResults(svc mockService) *ResultsScreen {
	return New(domain.K8s, testReport(), quiz.NewPlayer(svc), nil)
}

func TestViewShowsScoreAndVerdicts(t *testing.T) {
	s := newTestResults(mockService{})
	v := s.View(100, 200)

	for _, want := range []string{"Kuberpardy Results", "Score: 1/3", "33.3%", "✅ Correct", "❌ Incorrect", "kubectl", NoAnswer, "2 incorrect"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if got := strings.Count(v, "Your answer:"); got != 2 {
		t.Errorf("user answer shown %d times, want only for the 2 incorrect items", got)
	}
}

func TestFormatPercentage(t *testing.T) {
	tests := map[float64]string{70: "70%", 66.7: "66.7%", 0: "0%", 100: "100%"}
	for in, want := range tests {
		if got := FormatPercentage(in); got != want {
			t.Errorf("FormatPercentage(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestHomeKeys(t *testing.T) {
	for _, k := range []string{"h", "esc"} {
		s := newTestResults(mockService{})
		_, cmd := s.Update(key(k))
		if cmd == nil {
			t.Fatalf("%s: expected command", k)
		}
		if _, ok := cmd().(pages.ShowLandingMsg); !ok {
			t.Errorf("%s: expected ShowLandingMsg", k)
		}
	}
}

func TestRetryStartsSameDomain(t *testing.T) {
	s := newTestResults(mockService{})
	_, cmd := s.Update(key("r"))
	if cmd == nil || !s.retrying {
		t.Fatal("expected retry in flight")
	}
	msg := pages.Start(s.player, s.domain)()
	show, ok := msg.(pages.ShowGameMsg)
	if !ok {
		t.Fatalf("got %T", msg)
	}
	if show.Session.Domain() != domain.K8s || len(show.Session.Answers()) != 0 {
		t.Error("retry should start a fresh k8s session")
	}
}

func TestRetryFailureKeepsResults(t *testing.T) {
	s := newTestResults(mockService{startErr: errors.New("down")})
	s.Update(key("r"))
	scr, _ := s.Update(pages.Start(s.player, s.domain)())
	if scr != s || s.retrying || !s.notice.Visible {
		t.Fatalf("retrying=%v notice=%v", s.retrying, s.notice.Visible)
	}
	s.Update(key("x"))
	if s.notice.Visible {
		t.Error("notice not dismissed")
	}
	if !strings.Contains(s.View(100, 200), "Score: 1/3") {
		t.Error("results no longer displayed")
	}
}

func TestScrollIsClamped(t *testing.T) {
	s := newTestResults(mockService{})
	s.Update(key("k"))
	if s.offset != 0 {
		t.Errorf("offset = %d after scrolling above top", s.offset)
	}
	for i := 0; i < 500; i++ {
		s.Update(key("j"))
	}
	s.View(100, 10)
	total := len(strings.Split(s.render(100), "\n"))
	if s.offset != total-10 {
		t.Errorf("offset = %d, want %d", s.offset, total-10)
	}
}
