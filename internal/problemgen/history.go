package problemgen

import (
	"context"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultCooldown is how long a question fingerprint blocks a repeat.
const DefaultCooldown = 24 * time.Hour

var whitespaceRe = regexp.MustCompile(`\s+`)

// Fingerprint identifies a question by its content: module, level, type,
// text, answer and the sorted options.
func Fingerprint(q *Question) string {
	parts := []string{q.Module, strconv.Itoa(q.Level), string(q.Format), q.Text, q.Answer}
	if len(q.Choices) > 0 {
		parts = append(parts, strings.Join(slices.Sorted(slices.Values(q.Choices)), "|"))
	}
	fp := strings.ToLower(strings.Join(parts, "::"))
	return whitespaceRe.ReplaceAllString(fp, "_")
}

// History remembers recently served questions so a batch can skip repeats.
type History interface {
	// Seen reports whether fp was marked within the cooldown before now.
	Seen(ctx context.Context, fp string, now time.Time) (bool, error)

	// Mark records fp as served at now.
	Mark(ctx context.Context, fp string, now time.Time) error

	// Cleanup forgets fingerprints whose cooldown has expired.
	Cleanup(ctx context.Context, now time.Time) error
}

// MemoryHistory is an in-process History.
type MemoryHistory struct {
	mu       sync.Mutex
	cooldown time.Duration
	marks    map[string]time.Time
}

// NewMemoryHistory returns an empty history. A non-positive cooldown uses
// DefaultCooldown.
func NewMemoryHistory(cooldown time.Duration) *MemoryHistory {
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &MemoryHistory{cooldown: cooldown, marks: make(map[string]time.Time)}
}

func (h *MemoryHistory) Seen(_ context.Context, fp string, now time.Time) (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	at, ok := h.marks[fp]
	return ok && now.Sub(at) < h.cooldown, nil
}

func (h *MemoryHistory) Mark(_ context.Context, fp string, now time.Time) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.marks[fp] = now
	return nil
}

func (h *MemoryHistory) Cleanup(_ context.Context, now time.Time) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for fp, at := range h.marks {
		if now.Sub(at) >= h.cooldown {
			delete(h.marks, fp)
		}
	}
	return nil
}

// Len returns the number of remembered fingerprints.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.marks)
}
