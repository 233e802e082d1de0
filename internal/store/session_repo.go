package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const sessionsTable = "practice_sessions"

var sessionColumns = []string{
	"id", "module", "level", "correct", "incorrect",
	"total_questions", "time_spent", "started_at", "ended_at",
}

type sessionRepo struct {
	drv *entsql.Driver
}

func builder() *entsql.DialectBuilder { return entsql.Dialect(dialect.SQLite) }

func (r *sessionRepo) Save(ctx context.Context, rec SessionRecord) error {
	query, args := builder().Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(rec.ID, rec.Module, rec.Level, rec.Correct, rec.Incorrect,
			rec.TotalQuestions, rec.TimeSpent, rec.StartedAt.UnixNano(), rec.EndedAt.UnixNano()).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*SessionRecord, error) {
	query, args := builder().Select(sessionColumns...).
		From(entsql.Table(sessionsTable)).
		Where(entsql.EQ("id", id)).
		Query()
	recs, err := r.query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("session %q: %w", id, ErrNotFound)
	}
	return &recs[0], nil
}

func (r *sessionRepo) Recent(ctx context.Context, limit int) ([]SessionRecord, error) {
	sel := builder().Select(sessionColumns...).
		From(entsql.Table(sessionsTable)).
		OrderBy(entsql.Desc("started_at"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()
	return r.query(ctx, query, args)
}

func (r *sessionRepo) query(ctx context.Context, query string, args []any) ([]SessionRecord, error) {
	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var started, ended int64
		if err := rows.Scan(&rec.ID, &rec.Module, &rec.Level, &rec.Correct, &rec.Incorrect,
			&rec.TotalQuestions, &rec.TimeSpent, &started, &ended); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		rec.StartedAt = time.Unix(0, started).UTC()
		rec.EndedAt = time.Unix(0, ended).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *sessionRepo) StatsByModule(ctx context.Context) ([]ModuleStats, error) {
	query, args := builder().Select(
		"module",
		entsql.Count("*"),
		entsql.Sum("correct"),
		entsql.Sum("total_questions"),
		entsql.Sum("time_spent"),
		entsql.Max("ended_at"),
	).
		From(entsql.Table(sessionsTable)).
		GroupBy("module").
		OrderBy("module").
		Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var out []ModuleStats
	for rows.Next() {
		var m ModuleStats
		var last int64
		if err := rows.Scan(&m.Module, &m.Sessions, &m.Correct, &m.TotalQuestions, &m.TimeSpent, &last); err != nil {
			return nil, fmt.Errorf("scan stats: %w", err)
		}
		m.LastPlayed = time.Unix(0, last).UTC()
		out = append(out, m)
	}
	return out, rows.Err()
}
