package quiz

import (
	"maps"

	"github.com/przant/jeopardy-trainer/internal/domain"
)

// Direction is a navigation step through the question list.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// AnswerMap maps question ids to the user's current answer. Keys are added
// lazily as the user interacts; an absent key means unanswered.
type AnswerMap map[string]string

// Session is the state of one quiz run. It is created by Player.Start,
// mutated in place while the user plays, consumed once by Player.Submit,
// then discarded. A new session never inherits anything from an old one.
type Session struct {
	domain    domain.Domain
	questions []Question
	index     int
	answers   AnswerMap
	consumed  bool
}

// NewSession builds a session over questions in the given order. It rejects
// question lists that could not be displayed.
func NewSession(d domain.Domain, questions []Question) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrEmptySession
	}

	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return nil, &MalformedQuestionError{Index: i, Reason: "missing id"}
		}
		if seen[q.ID] {
			return nil, &MalformedQuestionError{Index: i, ID: q.ID, Reason: "duplicate id"}
		}
		seen[q.ID] = true

		if !q.Type.Valid() {
			return nil, &MalformedQuestionError{Index: i, ID: q.ID, Reason: "unknown type " + string(q.Type)}
		}
		if q.Type == TypeMultipleChoice && len(q.Options) == 0 {
			return nil, &MalformedQuestionError{Index: i, ID: q.ID, Reason: "multiple-choice question without options"}
		}
	}

	qs := make([]Question, len(questions))
	copy(qs, questions)

	return &Session{
		domain:    d,
		questions: qs,
		answers:   make(AnswerMap),
	}, nil
}

// Domain returns the topic domain the session was started for.
func (s *Session) Domain() domain.Domain { return s.domain }

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.questions) }

// Index returns the position of the displayed question.
func (s *Session) Index() int { return s.index }

// Current returns the displayed question.
func (s *Session) Current() Question { return s.questions[s.index] }

// AtFirst reports whether the backward action is inert.
func (s *Session) AtFirst() bool { return s.index == 0 }

// AtLast reports whether the forward action is replaced by submit.
func (s *Session) AtLast() bool { return s.index == len(s.questions)-1 }

// Consumed reports whether the session has been scored.
func (s *Session) Consumed() bool { return s.consumed }

// Navigate moves the current position one step in dir. The move is applied
// only when the new index stays within the question list; otherwise the
// session is left unchanged. It reports whether the position changed.
func (s *Session) Navigate(dir Direction) bool {
	next := s.index + int(dir)
	if next < 0 || next >= len(s.questions) {
		return false
	}
	s.index = next
	return true
}

// Answer returns the recorded answer for question id and whether one exists.
func (s *Session) Answer(id string) (string, bool) {
	v, ok := s.answers[id]
	return v, ok
}

// Answers returns a copy of the answer map.
func (s *Session) Answers() AnswerMap {
	return maps.Clone(s.answers)
}

// Answered returns how many questions have a non-empty answer.
func (s *Session) Answered() int {
	n := 0
	for _, v := range s.answers {
		if v != "" {
			n++
		}
	}
	return n
}
