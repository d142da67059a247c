//go:build cucumber

package quiz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/przant/jeopardy-trainer/internal/domain"
)

// TestSessionFeatures runs the session state machine scenarios.
func TestSessionFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "quiz-session",
		ScenarioInitializer: InitializeSessionScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			Strict:   true,
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

// InitializeSessionScenario wires steps to a fresh scenario state.
func InitializeSessionScenario(ctx *godog.ScenarioContext) {
	state := &sessionScenario{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^the service offers (\d+) questions for domain "([^"]+)"$`, state.givenQuestions)
	ctx.Step(`^the service offers a multiple-choice question with options "([^"]+)"$`, state.givenChoiceQuestion)
	ctx.Step(`^I start a session for domain "([^"]+)"$`, state.whenStart)
	ctx.Step(`^I answer questions (\d+) through (\d+)$`, state.whenAnswerRange)
	ctx.Step(`^I navigate to question (\d+)$`, state.whenNavigateTo)
	ctx.Step(`^I navigate forward and back$`, state.whenForwardAndBack)
	ctx.Step(`^I select option (\d+)$`, state.whenSelect)
	ctx.Step(`^I submit the session$`, state.whenSubmit)
	ctx.Step(`^the scoring call fails$`, state.whenScoringFails)
	ctx.Step(`^the scoring call recovers$`, state.whenScoringRecovers)
	ctx.Step(`^the payload has (\d+) entries in question order$`, state.thenPayloadOrdered)
	ctx.Step(`^payload entry (\d+) has an empty answer$`, state.thenPayloadEntryEmpty)
	ctx.Step(`^the stored answer is "([^"]*)"$`, state.thenStoredAnswer)
	ctx.Step(`^option (\d+) is pre-selected$`, state.thenPreselected)
	ctx.Step(`^the answer map is empty$`, state.thenAnswersEmpty)
	ctx.Step(`^the current question is (\d+)$`, state.thenCurrentQuestion)
	ctx.Step(`^the submit failed$`, state.thenSubmitFailed)
	ctx.Step(`^the submit succeeded$`, state.thenSubmitSucceeded)
	ctx.Step(`^(\d+) answers are still recorded$`, state.thenAnswersRecorded)
}

type sessionScenario struct {
	svc       *fakeService
	player    *Player
	session   *Session
	submitErr error
	report    *Report
}

func (s *sessionScenario) reset() {
	s.svc = &fakeService{}
	s.player = NewPlayer(s.svc)
	s.session = nil
	s.submitErr = nil
	s.report = nil
}

func (s *sessionScenario) givenQuestions(n int, d string) error {
	s.svc.questions = testQuestions(d, n)
	return nil
}

func (s *sessionScenario) givenChoiceQuestion(options string) error {
	s.svc.questions = []Question{
		{ID: "go-Q001", Type: TypeMultipleChoice, Options: strings.Split(options, ",")},
		{ID: "go-Q002", Type: TypeFillBlank},
	}
	return nil
}

func (s *sessionScenario) whenStart(d string) error {
	dom, err := domain.Parse(d)
	if err != nil {
		return err
	}
	sess, err := s.player.Start(context.Background(), dom)
	if err != nil {
		return err
	}
	s.session = sess
	return nil
}

func (s *sessionScenario) whenAnswerRange(from, to int) error {
	if err := s.navigateTo(from); err != nil {
		return err
	}
	for i := from; i <= to; i++ {
		b := s.session.Bind()
		var err error
		if b.Question.Type == TypeMultipleChoice {
			_, err = b.Choose(0)
		} else {
			_, err = b.Record(fmt.Sprintf("answer %d", i))
		}
		if err != nil {
			return err
		}
		if i < to {
			s.session.Navigate(Forward)
		}
	}
	return nil
}

func (s *sessionScenario) whenNavigateTo(n int) error {
	return s.navigateTo(n)
}

func (s *sessionScenario) navigateTo(n int) error {
	target := n - 1
	for s.session.Index() < target {
		if !s.session.Navigate(Forward) {
			return fmt.Errorf("cannot reach question %d", n)
		}
	}
	for s.session.Index() > target {
		if !s.session.Navigate(Backward) {
			return fmt.Errorf("cannot reach question %d", n)
		}
	}
	return nil
}

func (s *sessionScenario) whenForwardAndBack() error {
	if !s.session.Navigate(Forward) || !s.session.Navigate(Backward) {
		return errors.New("navigation did not move")
	}
	return nil
}

func (s *sessionScenario) whenSelect(n int) error {
	_, err := s.session.Bind().Choose(n - 1)
	return err
}

func (s *sessionScenario) whenSubmit() error {
	s.report, s.submitErr = s.player.Submit(context.Background(), s.session)
	return nil
}

func (s *sessionScenario) whenScoringFails() error {
	s.svc.submitErr = errTransport
	return nil
}

func (s *sessionScenario) whenScoringRecovers() error {
	s.svc.submitErr = nil
	return nil
}

func (s *sessionScenario) thenPayloadOrdered(n int) error {
	if len(s.svc.lastPayload) != n {
		return fmt.Errorf("payload has %d entries, want %d", len(s.svc.lastPayload), n)
	}
	for i, sub := range s.svc.lastPayload {
		if want := s.session.questions[i].ID; sub.QuestionID != want {
			return fmt.Errorf("payload[%d] = %q, want %q", i, sub.QuestionID, want)
		}
	}
	return nil
}

func (s *sessionScenario) thenPayloadEntryEmpty(n int) error {
	if got := s.svc.lastPayload[n-1].UserAnswer; got != "" {
		return fmt.Errorf("payload entry %d = %q, want empty", n, got)
	}
	return nil
}

func (s *sessionScenario) thenStoredAnswer(want string) error {
	got, _ := s.session.Answer(s.session.Current().ID)
	if got != want {
		return fmt.Errorf("stored answer = %q, want %q", got, want)
	}
	return nil
}

func (s *sessionScenario) thenPreselected(n int) error {
	if got := s.session.Bind().SelectedIndex(); got != n-1 {
		return fmt.Errorf("selected index = %d, want %d", got, n-1)
	}
	return nil
}

func (s *sessionScenario) thenAnswersEmpty() error {
	if len(s.session.Answers()) != 0 {
		return fmt.Errorf("answers = %v, want empty", s.session.Answers())
	}
	return nil
}

func (s *sessionScenario) thenCurrentQuestion(n int) error {
	if s.session.Index() != n-1 {
		return fmt.Errorf("current question = %d, want %d", s.session.Index()+1, n)
	}
	return nil
}

func (s *sessionScenario) thenSubmitFailed() error {
	if s.submitErr == nil {
		return errors.New("expected submit to fail")
	}
	if s.session.Consumed() {
		return errors.New("failed submit consumed the session")
	}
	return nil
}

func (s *sessionScenario) thenSubmitSucceeded() error {
	if s.submitErr != nil {
		return fmt.Errorf("submit failed: %w", s.submitErr)
	}
	if s.report == nil || s.report.Total != s.session.Len() {
		return fmt.Errorf("unexpected report %+v", s.report)
	}
	return nil
}

func (s *sessionScenario) thenAnswersRecorded(n int) error {
	if got := s.session.Answered(); got != n {
		return fmt.Errorf("answered = %d, want %d", got, n)
	}
	return nil
}
