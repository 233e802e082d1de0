package problemgen

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/ks2maths/internal/params"
)

// batchAttemptFactor bounds a batch to count*batchAttemptFactor generations.
const batchAttemptFactor = 10

// Engine is the registry of topic generators. It looks up parameters, runs
// the generator and the validator chain, and assembles deduplicated batches.
// It is safe for concurrent use.
type Engine struct {
	generators map[string]Generator
	validators []Validator
	history    History
	logger     *zap.Logger
	lookup     func(module string, level int) (params.Level, error)
	now        func() time.Time
	pending    []Generator

	mu  sync.Mutex // guards rng
	rng *Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithGenerators registers generators at construction.
func WithGenerators(gens ...Generator) Option {
	return func(e *Engine) { e.pending = append(e.pending, gens...) }
}

// WithValidators replaces the default validator chain.
func WithValidators(vs ...Validator) Option {
	return func(e *Engine) { e.validators = vs }
}

// WithHistory enables cross-batch deduplication.
func WithHistory(h History) Option {
	return func(e *Engine) { e.history = h }
}

// WithRand sets the random source, e.g. NewRand(seed) for reproducible runs.
func WithRand(r *Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock overrides time.Now for history bookkeeping.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithParams overrides the parameter lookup, for tests.
func WithParams(lookup func(module string, level int) (params.Level, error)) Option {
	return func(e *Engine) { e.lookup = lookup }
}

// NewEngine creates an engine. It fails if two generators claim the same
// module id.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		generators: make(map[string]Generator),
		validators: DefaultValidators(),
		logger:     zap.NewNop(),
		lookup:     params.Lookup,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = NewRand(0)
	}
	pending := e.pending
	e.pending = nil
	for _, g := range pending {
		if err := e.Register(g); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Register adds a generator.
func (e *Engine) Register(g Generator) error {
	id := g.Module()
	if id == "" {
		return errors.New("generator has an empty module id")
	}
	if _, dup := e.generators[id]; dup {
		return fmt.Errorf("duplicate generator for module %q", id)
	}
	e.generators[id] = g
	return nil
}

// Modules returns the registered module ids, sorted.
func (e *Engine) Modules() []string {
	ids := make([]string, 0, len(e.generators))
	for id := range e.generators {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Generator returns the generator registered for module.
func (e *Engine) Generator(module string) (Generator, bool) {
	g, ok := e.generators[module]
	return g, ok
}

// GenerateOne produces a single validated question.
func (e *Engine) GenerateOne(ctx context.Context, module string, level int) (*Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g, ok := e.generators[module]
	if !ok {
		return nil, &UnknownModuleError{Module: module}
	}
	if level < params.MinLevel || level > params.MaxLevel {
		return nil, ErrInvalidLevel
	}
	p, err := e.lookup(module, level)
	if err != nil {
		return nil, fmt.Errorf("lookup params: %w", err)
	}

	e.mu.Lock()
	q, err := g.Generate(p, level, e.rng)
	e.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if verr := RunValidators(q, e.validators); verr != nil {
		return nil, verr
	}
	q.ID = uuid.NewString()

	e.logger.Debug("question generated",
		zap.String("module", module),
		zap.Int("level", level),
		zap.String("operation", q.Operation),
	)
	return q, nil
}

// Generate produces up to count distinct questions, skipping any whose
// fingerprint the History saw within its cooldown. When fewer than count
// could be produced within count*10 attempts it returns the partial batch
// together with a *ShortBatchError.
func (e *Engine) Generate(ctx context.Context, module string, level, count int) ([]*Question, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	now := e.now()
	if e.history != nil {
		if err := e.history.Cleanup(ctx, now); err != nil {
			return nil, fmt.Errorf("history cleanup: %w", err)
		}
	}

	out := make([]*Question, 0, count)
	inBatch := make(map[string]bool, count)
	skipped := 0

	for attempt := 0; attempt < count*batchAttemptFactor && len(out) < count; attempt++ {
		q, err := e.GenerateOne(ctx, module, level)
		if err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) || errors.Is(err, ErrSamplingExhausted) {
				e.logger.Debug("question rejected", zap.String("module", module), zap.Error(err))
				continue
			}
			return nil, err
		}

		fp := Fingerprint(q)
		if inBatch[fp] {
			skipped++
			continue
		}
		if e.history != nil {
			seen, err := e.history.Seen(ctx, fp, now)
			if err != nil {
				return nil, fmt.Errorf("history lookup: %w", err)
			}
			if seen {
				skipped++
				continue
			}
		}
		inBatch[fp] = true
		out = append(out, q)
	}

	if skipped > 0 {
		e.logger.Warn("skipped duplicate questions",
			zap.String("module", module),
			zap.Int("level", level),
			zap.Int("skipped", skipped),
		)
	}

	if e.history != nil {
		for _, q := range out {
			if err := e.history.Mark(ctx, Fingerprint(q), now); err != nil {
				return nil, fmt.Errorf("history mark: %w", err)
			}
		}
	}

	if len(out) < count {
		e.logger.Warn("short batch",
			zap.String("module", module),
			zap.Int("level", level),
			zap.Int("want", count),
			zap.Int("got", len(out)),
		)
		return out, &ShortBatchError{Module: module, Level: level, Want: count, Got: len(out)}
	}
	return out, nil
}
