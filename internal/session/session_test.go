package session

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ks2maths/internal/problemgen"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func testQuestions() []*problemgen.Question {
	return []*problemgen.Question{
		problemgen.TextInput("Convert 3 kilometres to metres.", 3000, "1 kilometre = 1000 metres"),
		problemgen.MultipleChoice("Which is more: £2.50 or 200p?", "£2.50", []string{"£2.50", "200p", "They are equal"}, ""),
		problemgen.TextInput("Calculate: 3 + 4 × 2", 11, ""),
	}
}

func TestSession_Flow(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	s, err := New("M06_Y4_MEAS", 1, testQuestions(), WithClock(clock.now))
	require.NoError(t, err)
	require.NotEmpty(t, s.ID)

	assert.Equal(t, "1 kilometre = 1000 metres", s.ShowHint())
	clock.advance(20 * time.Second)
	correct, err := s.Answer("3,000")
	require.NoError(t, err)
	assert.True(t, correct)
	assert.Equal(t, PhaseFeedback, s.Phase)
	assert.True(t, s.Answers[0].HintUsed)
	assert.Equal(t, 20*time.Second, s.Answers[0].Elapsed)

	_, err = s.Answer("again")
	assert.ErrorIs(t, err, ErrFinished, "cannot answer twice")

	require.True(t, s.Next())
	assert.False(t, s.HintShown)
	clock.advance(30 * time.Second)
	correct, err = s.Answer("2")
	require.NoError(t, err)
	assert.False(t, correct)

	require.True(t, s.Next())
	clock.advance(75 * time.Second)
	correct, err = s.Answer("11")
	require.NoError(t, err)
	assert.True(t, correct)

	assert.False(t, s.Next())
	assert.True(t, s.Done())
	assert.Nil(t, s.Current())
	assert.False(t, s.Next())

	sum := s.Summary()
	assert.Equal(t, Summary{Score: Score{Correct: 2, Incorrect: 1}, TotalQuestions: 3, TimeSpent: 125}, sum)
	assert.Equal(t, 67, sum.Percentage())
}

func TestNew_Empty(t *testing.T) {
	_, err := New("M06_Y4_MEAS", 1, nil)
	if !errors.Is(err, problemgen.ErrNoQuestions) {
		t.Errorf("New(nil) error = %v, want ErrNoQuestions", err)
	}
}

func TestSummary_JSON(t *testing.T) {
	sum := Summary{Score: Score{Correct: 7, Incorrect: 3}, TotalQuestions: 10, TimeSpent: 95}
	data, err := json.Marshal(sum)
	require.NoError(t, err)
	assert.JSONEq(t, `{"score":{"correct":7,"incorrect":3},"totalQuestions":10,"timeSpent":95}`, string(data))
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		correct, total int
		want           int
	}{
		{0, 0, 0},
		{10, 10, 100},
		{2, 3, 67},
		{1, 3, 33},
		{1, 8, 13},
	}
	for _, tc := range tests {
		got := Summary{Score: Score{Correct: tc.correct}, TotalQuestions: tc.total}.Percentage()
		if got != tc.want {
			t.Errorf("Percentage(%d/%d) = %d, want %d", tc.correct, tc.total, got, tc.want)
		}
	}
}

func TestPerformance(t *testing.T) {
	tests := []struct {
		pct   int
		title string
	}{
		{100, "Outstanding!"},
		{90, "Outstanding!"},
		{89, "Great Job!"},
		{70, "Great Job!"},
		{69, "Good Effort!"},
		{50, "Good Effort!"},
		{49, "Keep Trying!"},
		{0, "Keep Trying!"},
	}
	for _, tc := range tests {
		if got := Performance(tc.pct).Title; got != tc.title {
			t.Errorf("Performance(%d) = %q, want %q", tc.pct, got, tc.title)
		}
	}
}

func TestFormatTimeSpent(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0s"},
		{45, "45s"},
		{60, "1m 0s"},
		{125, "2m 5s"},
	}
	for _, tc := range tests {
		if got := FormatTimeSpent(tc.in); got != tc.want {
			t.Errorf("FormatTimeSpent(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
