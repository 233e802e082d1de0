package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

const (
	historyTable    = "question_history"
	defaultCooldown = 24 * time.Hour
)

// HistoryRepo is a persisted question history. It satisfies the engine's
// History interface, so repeats are skipped across processes.
type HistoryRepo struct {
	drv      *entsql.Driver
	cooldown time.Duration
}

// Seen reports whether fp was marked within the cooldown before now.
func (h *HistoryRepo) Seen(ctx context.Context, fp string, now time.Time) (bool, error) {
	query, args := builder().Select(entsql.Count("*")).
		From(entsql.Table(historyTable)).
		Where(entsql.And(
			entsql.EQ("fingerprint", fp),
			entsql.GT("seen_at", now.Add(-h.cooldown).UnixNano()),
		)).
		Query()

	var rows entsql.Rows
	if err := h.drv.Query(ctx, query, args, &rows); err != nil {
		return false, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return false, fmt.Errorf("scan history: %w", err)
		}
	}
	return n > 0, rows.Err()
}

// Mark records fp as served at now, replacing any earlier mark.
func (h *HistoryRepo) Mark(ctx context.Context, fp string, now time.Time) error {
	query, args := builder().Insert(historyTable).
		Columns("fingerprint", "seen_at").
		Values(fp, now.UnixNano()).
		OnConflict(
			entsql.ConflictColumns("fingerprint"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if err := h.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("mark history: %w", err)
	}
	return nil
}

// Cleanup forgets fingerprints whose cooldown has expired.
func (h *HistoryRepo) Cleanup(ctx context.Context, now time.Time) error {
	query, args := builder().Delete(historyTable).
		Where(entsql.LTE("seen_at", now.Add(-h.cooldown).UnixNano())).
		Query()
	if err := h.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("cleanup history: %w", err)
	}
	return nil
}

// Clear forgets every fingerprint.
func (h *HistoryRepo) Clear(ctx context.Context) error {
	query, args := builder().Delete(historyTable).Query()
	if err := h.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

// Len returns the number of remembered fingerprints.
func (h *HistoryRepo) Len(ctx context.Context) (int, error) {
	query, args := builder().Select(entsql.Count("*")).From(entsql.Table(historyTable)).Query()
	var rows entsql.Rows
	if err := h.drv.Query(ctx, query, args, &rows); err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	defer rows.Close()
	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, err
		}
	}
	return n, rows.Err()
}
