package problemgen

import (
	"context"
	"testing"
	"time"
)

func TestFingerprint(t *testing.T) {
	a := mcQuestion()
	b := mcQuestion()
	b.Choices = []string{"They are the same", "250p", "£3"}
	if Fingerprint(a) != Fingerprint(b) {
		t.Error("option order should not change the fingerprint")
	}

	c := mcQuestion()
	c.Text = "Which  is MORE: £3 or 250p?"
	if Fingerprint(a) != Fingerprint(c) {
		t.Error("case and whitespace should not change the fingerprint")
	}

	d := mcQuestion()
	d.Level = 2
	if Fingerprint(a) == Fingerprint(d) {
		t.Error("level should change the fingerprint")
	}
}

func TestMemoryHistory(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewMemoryHistory(0)

	if seen, _ := h.Seen(ctx, "fp", t0); seen {
		t.Fatal("empty history reports seen")
	}
	_ = h.Mark(ctx, "fp", t0)

	tests := []struct {
		at   time.Duration
		want bool
	}{
		{time.Minute, true},
		{23 * time.Hour, true},
		{24 * time.Hour, false},
		{48 * time.Hour, false},
	}
	for _, tc := range tests {
		if got, _ := h.Seen(ctx, "fp", t0.Add(tc.at)); got != tc.want {
			t.Errorf("Seen after %v = %v, want %v", tc.at, got, tc.want)
		}
	}

	_ = h.Cleanup(ctx, t0.Add(time.Hour))
	if h.Len() != 1 {
		t.Errorf("Len after early cleanup = %d, want 1", h.Len())
	}
	_ = h.Cleanup(ctx, t0.Add(DefaultCooldown))
	if h.Len() != 0 {
		t.Errorf("Len after cleanup = %d, want 0", h.Len())
	}
}
