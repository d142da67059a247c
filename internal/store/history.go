package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/przant/jeopardy-trainer/internal/domain"
	"github.com/przant/jeopardy-trainer/internal/quiz"
)

// ErrNotFound is returned when a history record does not exist.
var ErrNotFound = errors.New("record not found")

// QueryOpts filters and paginates history queries.
type QueryOpts struct {
	Limit  int           // max results (0 = unlimited)
	Domain domain.Domain // "" = all domains
	From   time.Time     // submitted_at >= From
	To     time.Time     // submitted_at <= To
}

// SessionRecord is one scored session as kept in local history.
type SessionRecord struct {
	ID          string
	Domain      domain.Domain
	Score       int
	Total       int
	Percentage  float64
	SubmittedAt time.Time
	// Items is only populated by Get.
	Items []quiz.ResultItem
}

// HistoryRepo keeps the results of submitted sessions. It satisfies
// quiz.Recorder.
type HistoryRepo interface {
	// RecordReport stores a scored report and its result items.
	RecordReport(ctx context.Context, d domain.Domain, r *quiz.Report) error

	// List returns session records, newest first, without items.
	List(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// Get returns a single record including its items.
	Get(ctx context.Context, id string) (*SessionRecord, error)

	// LatestByDomain returns the newest record of every domain that has one.
	LatestByDomain(ctx context.Context) (map[domain.Domain]SessionRecord, error)
}

var _ quiz.Recorder = (HistoryRepo)(nil)

type historyRepo struct {
	db  *sql.DB
	now func() time.Time
}

// timeLayout is fixed-width so that text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func (r *historyRepo) RecordReport(ctx context.Context, d domain.Domain, rep *quiz.Report) error {
	if rep == nil {
		return errors.New("record report: nil report")
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	id := uuid.New().String()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, domain, score, total, percentage, submitted_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, string(d), rep.Score, rep.Total, rep.Percentage, r.now().UTC().Format(timeLayout))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	for i, it := range rep.Items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO result_items (session_id, position, question, is_correct, user_answer, correct_answer, explanation)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, i, it.QuestionText, it.IsCorrect, it.UserAnswer, it.CorrectAnswer, it.Explanation)
		if err != nil {
			return fmt.Errorf("save result item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *historyRepo) List(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	var (
		where []string
		args  []any
	)
	if opts.Domain != "" {
		where = append(where, "domain = ?")
		args = append(args, string(opts.Domain))
	}
	if !opts.From.IsZero() {
		where = append(where, "submitted_at >= ?")
		args = append(args, opts.From.UTC().Format(timeLayout))
	}
	if !opts.To.IsZero() {
		where = append(where, "submitted_at <= ?")
		args = append(args, opts.To.UTC().Format(timeLayout))
	}

	q := `SELECT id, domain, score, total, percentage, submitted_at FROM sessions`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY submitted_at DESC, rowid DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *historyRepo) Get(ctx context.Context, id string) (*SessionRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, domain, score, total, percentage, submitted_at FROM sessions WHERE id = ?`, id)
	rec, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT question, is_correct, user_answer, correct_answer, explanation
		 FROM result_items WHERE session_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("query result items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it quiz.ResultItem
		if err := rows.Scan(&it.QuestionText, &it.IsCorrect, &it.UserAnswer, &it.CorrectAnswer, &it.Explanation); err != nil {
			return nil, fmt.Errorf("scan result item: %w", err)
		}
		rec.Items = append(rec.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *historyRepo) LatestByDomain(ctx context.Context) (map[domain.Domain]SessionRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, domain, score, total, percentage, submitted_at FROM sessions s
		WHERE rowid = (
			SELECT rowid FROM sessions WHERE domain = s.domain
			ORDER BY submitted_at DESC, rowid DESC LIMIT 1
		)`)
	if err != nil {
		return nil, fmt.Errorf("query latest sessions: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.Domain]SessionRecord)
	for rows.Next() {
		rec, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out[rec.Domain] = rec
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(s scanner) (SessionRecord, error) {
	var (
		rec SessionRecord
		d   string
		at  string
	)
	if err := s.Scan(&rec.ID, &d, &rec.Score, &rec.Total, &rec.Percentage, &at); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, err
		}
		return rec, fmt.Errorf("scan session: %w", err)
	}
	rec.Domain = domain.Domain(d)
	t, err := time.Parse(timeLayout, at)
	if err != nil {
		return rec, fmt.Errorf("parse submitted_at %q: %w", at, err)
	}
	rec.SubmittedAt = t
	return rec, nil
}
