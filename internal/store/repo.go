package store

import (
	"context"
	"time"
)

// SessionRecord is one finished practice session.
type SessionRecord struct {
	ID             string
	Module         string
	Level          int
	Correct        int
	Incorrect      int
	TotalQuestions int
	TimeSpent      int // seconds
	StartedAt      time.Time
	EndedAt        time.Time
}

// ModuleStats aggregates the sessions of one module.
type ModuleStats struct {
	Module         string
	Sessions       int
	Correct        int
	TotalQuestions int
	TimeSpent      int
	LastPlayed     time.Time
}

// Accuracy returns Correct / TotalQuestions, or 0.
func (m ModuleStats) Accuracy() float64 {
	if m.TotalQuestions == 0 {
		return 0
	}
	return float64(m.Correct) / float64(m.TotalQuestions)
}

// SessionRepo persists finished practice sessions.
type SessionRepo interface {
	// Save stores a session. Saving the same ID twice is an error.
	Save(ctx context.Context, rec SessionRecord) error

	// Get returns a session by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*SessionRecord, error)

	// Recent returns up to limit sessions, newest first.
	Recent(ctx context.Context, limit int) ([]SessionRecord, error)

	// StatsByModule aggregates all sessions per module, ordered by module.
	StatsByModule(ctx context.Context) ([]ModuleStats, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLM request.
type LLMRequestEvent struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RecentLLMRequests returns up to limit events, newest first.
	RecentLLMRequests(ctx context.Context, limit int) ([]LLMRequestEvent, error)

	// GetLLMRequest returns one event with its request and response
	// bodies, or ErrNotFound.
	GetLLMRequest(ctx context.Context, sequence int64) (*LLMRequestEvent, error)
}
