package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/przant/jeopardy-trainer/internal/domain"
)

// fakeService implements Service for testing.
type fakeService struct {
	questions []Question
	startErr  error
	submitErr error

	startCalls  int
	submitCalls int
	lastCount   int
	lastDomain  domain.Domain
	lastPayload []Submission
}

func (f *fakeService) StartSession(_ context.Context, d domain.Domain, count int) ([]Question, error) {
	f.startCalls++
	f.lastDomain = d
	f.lastCount = count
	if f.startErr != nil {
		return nil, f.startErr
	}
	return f.questions, nil
}

func (f *fakeService) SubmitSession(_ context.Context, d domain.Domain, answers []Submission) (*Report, error) {
	f.submitCalls++
	f.lastDomain = d
	f.lastPayload = answers
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	r := &Report{Total: len(answers)}
	for _, a := range answers {
		correct := a.UserAnswer != ""
		if correct {
			r.Score++
		}
		r.Items = append(r.Items, ResultItem{
			QuestionText:  "question " + a.QuestionID,
			IsCorrect:     correct,
			UserAnswer:    a.UserAnswer,
			CorrectAnswer: "A",
		})
	}
	if r.Total > 0 {
		r.Percentage = float64(r.Score) * 100 / float64(r.Total)
	}
	return r, nil
}

// fakeRecorder implements Recorder for testing.
type fakeRecorder struct {
	reports []*Report
	err     error
}

func (f *fakeRecorder) RecordReport(_ context.Context, _ domain.Domain, r *Report) error {
	if f.err != nil {
		return f.err
	}
	f.reports = append(f.reports, r)
	return nil
}

var errTransport = errors.New("connection refused")

// testQuestions returns n questions alternating multiple-choice and fill-blank.
func testQuestions(prefix string, n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		id := fmt.Sprintf("%s-Q%03d", prefix, i+1)
		if i%2 == 0 {
			qs[i] = Question{
				ID:         id,
				Type:       TypeMultipleChoice,
				Difficulty: "basic",
				Text:       "Pick one",
				Options:    []string{"A) x", "B) y", "C) z"},
			}
		} else {
			qs[i] = Question{
				ID:         id,
				Type:       TypeFillBlank,
				Difficulty: "intermediate",
				Text:       "Fill the ____",
			}
		}
	}
	return qs
}

func mustSession(d domain.Domain, qs []Question) *Session {
	s, err := NewSession(d, qs)
	if err != nil {
		panic(err)
	}
	return s
}
