package remote

import (
	"context"
	"log/slog"
	"time"

	"github.com/przant/jeopardy-trainer/internal/domain"
	"github.com/przant/jeopardy-trainer/internal/quiz"
)

// LoggingAPI is a decorator that logs every service call with its latency
// and outcome.
type LoggingAPI struct {
	inner  API
	logger *slog.Logger
}

// WithLogging wraps an API with request logging.
func WithLogging(api API, logger *slog.Logger) API {
	if logger == nil {
		return api
	}
	return &LoggingAPI{inner: api, logger: logger}
}

func (l *LoggingAPI) StartSession(ctx context.Context, d domain.Domain, count int) ([]quiz.Question, error) {
	start := time.Now()
	qs, err := l.inner.StartSession(ctx, d, count)
	l.log(ctx, EndpointStart, start, err, "domain", d, "count", count, "received", len(qs))
	return qs, err
}

func (l *LoggingAPI) SubmitSession(ctx context.Context, d domain.Domain, answers []quiz.Submission) (*quiz.Report, error) {
	start := time.Now()
	rep, err := l.inner.SubmitSession(ctx, d, answers)
	attrs := []any{"domain", d, "answers", len(answers)}
	if rep != nil {
		attrs = append(attrs, "score", rep.Score, "total", rep.Total)
	}
	l.log(ctx, EndpointSubmit, start, err, attrs...)
	return rep, err
}

func (l *LoggingAPI) Stats(ctx context.Context, d domain.Domain) (*Stats, error) {
	start := time.Now()
	st, err := l.inner.Stats(ctx, d)
	l.log(ctx, EndpointStats, start, err, "domain", d)
	return st, err
}

func (l *LoggingAPI) Version(ctx context.Context) (*ServiceInfo, error) {
	start := time.Now()
	info, err := l.inner.Version(ctx)
	l.log(ctx, EndpointRoot, start, err)
	return info, err
}

func (l *LoggingAPI) log(ctx context.Context, endpoint string, start time.Time, err error, attrs ...any) {
	attrs = append(attrs,
		"endpoint", endpoint,
		"latency_ms", time.Since(start).Milliseconds(),
		"success", err == nil,
	)
	if err != nil {
		l.logger.WarnContext(ctx, "service call failed", append(attrs, "error", err)...)
		return
	}
	l.logger.DebugContext(ctx, "service call", attrs...)
}
