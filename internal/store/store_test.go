package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is checked with a file-based DB below.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpen_FileIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ks2maths.db")
	require.NoError(t, EnsureDir(path))

	s, err := Open(path)
	require.NoError(t, err)
	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
	require.NoError(t, s.SessionRepo().Save(context.Background(), SessionRecord{ID: "a", Module: "M01_Y4_MEAS", Level: 1}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err, "reopening must not fail on existing tables")
	defer s.Close()
	_, err = s.SessionRepo().Get(context.Background(), "a")
	assert.NoError(t, err)
}

func TestSessionRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	base := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	recs := []SessionRecord{
		{ID: "s1", Module: "M07_Y3_MEAS", Level: 1, Correct: 8, Incorrect: 2, TotalQuestions: 10, TimeSpent: 300, StartedAt: base, EndedAt: base.Add(5 * time.Minute)},
		{ID: "s2", Module: "C09_Y6_CALC", Level: 2, Correct: 5, Incorrect: 5, TotalQuestions: 10, TimeSpent: 200, StartedAt: base.Add(time.Hour), EndedAt: base.Add(time.Hour + 200*time.Second)},
		{ID: "s3", Module: "M07_Y3_MEAS", Level: 2, Correct: 9, Incorrect: 1, TotalQuestions: 10, TimeSpent: 250, StartedAt: base.Add(2 * time.Hour), EndedAt: base.Add(2*time.Hour + 250*time.Second)},
	}
	for _, r := range recs {
		require.NoError(t, repo.Save(ctx, r))
	}
	assert.Error(t, repo.Save(ctx, recs[0]), "duplicate id")

	got, err := repo.Get(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, recs[1], *got)

	_, err = repo.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "s3", recent[0].ID)
	assert.Equal(t, "s2", recent[1].ID)

	all, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	stats, err := repo.StatsByModule(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
	assert.Equal(t, "C09_Y6_CALC", stats[0].Module)
	m := stats[1]
	assert.Equal(t, "M07_Y3_MEAS", m.Module)
	assert.Equal(t, 2, m.Sessions)
	assert.Equal(t, 17, m.Correct)
	assert.Equal(t, 20, m.TotalQuestions)
	assert.Equal(t, 550, m.TimeSpent)
	assert.InDelta(t, 0.85, m.Accuracy(), 1e-9)
	assert.Equal(t, recs[2].EndedAt, m.LastPlayed)
}

func TestHistoryRepo(t *testing.T) {
	s := openTestStore(t)
	h := s.HistoryRepo(time.Hour)
	ctx := context.Background()
	now := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	seen, err := h.Seen(ctx, "fp1", now)
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, h.Mark(ctx, "fp1", now))
	require.NoError(t, h.Mark(ctx, "fp2", now.Add(-2*time.Hour)))

	seen, err = h.Seen(ctx, "fp1", now.Add(30*time.Minute))
	require.NoError(t, err)
	assert.True(t, seen)

	seen, err = h.Seen(ctx, "fp2", now)
	require.NoError(t, err)
	assert.False(t, seen, "mark older than the cooldown")

	// Marking again refreshes the timestamp.
	require.NoError(t, h.Mark(ctx, "fp2", now))
	seen, err = h.Seen(ctx, "fp2", now)
	require.NoError(t, err)
	assert.True(t, seen)

	require.NoError(t, h.Mark(ctx, "fp3", now.Add(-3*time.Hour)))
	require.NoError(t, h.Cleanup(ctx, now))
	n, err := h.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	require.NoError(t, h.Clear(ctx))
	n, err = h.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEventRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"reword", "reword", "test"} {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      purpose,
			InputTokens:  10 * (i + 1),
			OutputTokens: 5,
			LatencyMs:    int64(100 + i),
			Success:      i != 2,
			ErrorMessage: map[bool]string{true: "boom"}[i == 2],
		})
		require.NoError(t, err)
	}

	events, err := repo.RecentLLMRequests(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "test", events[0].Purpose)
	assert.False(t, events[0].Success)
	assert.Equal(t, "boom", events[0].ErrorMessage)
	assert.Greater(t, events[0].Sequence, events[1].Sequence)
	assert.Equal(t, 10, events[2].InputTokens)
	assert.True(t, events[2].Success)

	got, err := repo.GetLLMRequest(ctx, events[1].Sequence)
	require.NoError(t, err)
	assert.Equal(t, "reword", got.Purpose)
	assert.Equal(t, 20, got.InputTokens)

	_, err = repo.GetLLMRequest(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDefaultDBPath(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg")
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/xdg/ks2maths/ks2maths.db", p)
}
