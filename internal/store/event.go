package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	entsql "entgo.io/ent/dialect/sql"
)

const nextSequenceSQL = `UPDATE event_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`

// sequenceCounter numbers events in the order they were appended. The
// event_sequence table holds a single row created by migrate.
type sequenceCounter struct {
	mu  sync.Mutex
	drv *entsql.Driver
}

// Next returns the next sequence number, starting at 1.
func (c *sequenceCounter) Next(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var rows entsql.Rows
	if err := c.drv.Query(ctx, nextSequenceSQL, []any{}, &rows); err != nil {
		return 0, fmt.Errorf("advance sequence: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return 0, err
		}
		return 0, errors.New("event_sequence row is missing")
	}
	var seq int64
	if err := rows.Scan(&seq); err != nil {
		return 0, fmt.Errorf("scan sequence: %w", err)
	}
	return seq, nil
}
