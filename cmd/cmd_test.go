package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ks2maths/internal/problemgen"
	"github.com/abhisek/ks2maths/internal/store"
)

// run executes the root command with args against a temporary database.
func run(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	t.Setenv("KS2MATHS_DB", dbPath)
	t.Setenv("KS2MATHS_LLM_PROVIDER", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.ExecuteContext(context.Background()), out.String())
	return out.String()
}

func TestVersion(t *testing.T) {
	out := run(t, filepath.Join(t.TempDir(), "db"), "version")
	assert.Equal(t, "ks2maths (devel)\n", out)
}

func TestModules(t *testing.T) {
	out := run(t, filepath.Join(t.TempDir(), "db"), "modules", "--verbose")
	for _, id := range []string{"M01_Y4_MEAS", "M05_Y5_MEAS", "M07_Y6_MEAS", "M08_Y5_MEAS", "C09_Y6_CALC"} {
		assert.Contains(t, out, id)
	}
	assert.Contains(t, out, "L1  ")
}

func TestGenerate_JSON(t *testing.T) {
	out := run(t, filepath.Join(t.TempDir(), "db"),
		"generate", "--module", "M06_Y4_MEAS", "--level", "1", "--count", "3", "--json", "--seed", "7")

	var qs []problemgen.Question
	require.NoError(t, json.Unmarshal([]byte(out), &qs))
	require.Len(t, qs, 3)
	for _, q := range qs {
		assert.Equal(t, "M06_Y4_MEAS", q.Module)
		assert.Equal(t, 1, q.Level)
		assert.NotEmpty(t, q.Answer)
	}
}

func TestWorksheet(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "money.pdf")
	out := run(t, filepath.Join(dir, "db"),
		"worksheet", "--module", "M01_Y4_MEAS", "--level", "2", "--count", "6", "--out", pdf)
	assert.Contains(t, out, "Wrote 6 questions")

	b, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")))
}

func TestHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "ks2maths.db")
	assert.Contains(t, run(t, db, "history"), "No practice sessions yet.")

	st, err := store.Open(db)
	require.NoError(t, err)
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	require.NoError(t, st.SessionRepo().Save(context.Background(), store.SessionRecord{
		ID: "s1", Module: "M01_Y4_MEAS", Level: 2, Correct: 7, Incorrect: 3,
		TotalQuestions: 10, TimeSpent: 125, StartedAt: start, EndedAt: start.Add(125 * time.Second),
	}))
	require.NoError(t, st.Close())

	out := run(t, db, "history")
	assert.Contains(t, out, "M01_Y4_MEAS")
	assert.Contains(t, out, "7/10")
	assert.Contains(t, out, "70%")
	assert.Contains(t, out, "2m 5s")
}

func TestLLMList_Empty(t *testing.T) {
	out := run(t, filepath.Join(t.TempDir(), "db"), "llm", "list")
	assert.Contains(t, out, "No LLM requests recorded.")
}
