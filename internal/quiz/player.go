package quiz

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/przant/jeopardy-trainer/internal/domain"
)

// DefaultQuestionCount is how many questions a session requests.
const DefaultQuestionCount = 10

// Service is the remote session service: it hands out question batches and
// scores submitted answers.
type Service interface {
	StartSession(ctx context.Context, d domain.Domain, count int) ([]Question, error)
	SubmitSession(ctx context.Context, d domain.Domain, answers []Submission) (*Report, error)
}

// Recorder keeps a local record of scored sessions.
type Recorder interface {
	RecordReport(ctx context.Context, d domain.Domain, r *Report) error
}

// Player runs the start and submit transitions against the remote service.
type Player struct {
	svc      Service
	count    int
	recorder Recorder
	logger   *slog.Logger
}

// PlayerOption configures a Player.
type PlayerOption func(*Player)

// WithQuestionCount overrides how many questions a session requests.
func WithQuestionCount(n int) PlayerOption {
	return func(p *Player) {
		if n > 0 {
			p.count = n
		}
	}
}

// WithRecorder stores every scored report with r.
func WithRecorder(r Recorder) PlayerOption {
	return func(p *Player) { p.recorder = r }
}

// WithLogger sets the logger used for session lifecycle events.
func WithLogger(l *slog.Logger) PlayerOption {
	return func(p *Player) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPlayer creates a Player backed by svc.
func NewPlayer(svc Service, opts ...PlayerOption) *Player {
	p := &Player{
		svc:    svc,
		count:  DefaultQuestionCount,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// QuestionCount returns the number of questions requested per session.
func (p *Player) QuestionCount() int { return p.count }

// Start requests a fresh batch of questions for d and returns a new session
// positioned at the first question. Either a complete session is returned or
// an error; the caller's current session is never touched.
func (p *Player) Start(ctx context.Context, d domain.Domain) (*Session, error) {
	questions, err := p.svc.StartSession(ctx, d, p.count)
	if err != nil {
		p.logger.Warn("start session failed", "domain", d, "error", err)
		return nil, fmt.Errorf("start %s session: %w", d, err)
	}

	s, err := NewSession(d, questions)
	if err != nil {
		p.logger.Warn("start session returned malformed data", "domain", d, "error", err)
		return nil, fmt.Errorf("start %s session: %w", d, err)
	}

	p.logger.Info("session started", "domain", d, "questions", s.Len())
	return s, nil
}

// Submit sends every answer of s for scoring in a single call. On success
// the session is consumed and cannot be submitted again. On failure the
// session is left exactly as it was so the user may submit again.
func (p *Player) Submit(ctx context.Context, s *Session) (*Report, error) {
	if s.consumed {
		return nil, ErrSessionConsumed
	}

	payload := s.Payload()
	report, err := p.svc.SubmitSession(ctx, s.domain, payload)
	if err != nil {
		p.logger.Warn("submit session failed", "domain", s.domain, "answered", s.Answered(), "error", err)
		return nil, fmt.Errorf("submit %s session: %w", s.domain, err)
	}
	s.consumed = true

	p.logger.Info("session scored",
		"domain", s.domain,
		"score", report.Score,
		"total", report.Total,
		"percentage", report.Percentage,
	)

	if p.recorder != nil {
		// History is best-effort; the results view does not depend on it.
		if err := p.recorder.RecordReport(ctx, s.domain, report); err != nil {
			p.logger.Warn("record report failed", "domain", s.domain, "error", err)
		}
	}

	return report, nil
}
