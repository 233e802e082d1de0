package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/ks2maths/internal/store"
)

// RecordingProvider logs every call and appends it to the llm_requests
// table. A failing store never fails the call.
type RecordingProvider struct {
	inner    Provider
	provider string
	log      *zap.Logger
	events   store.EventRepo
	now      func() time.Time
}

// WithRecording wraps p. events may be nil.
func WithRecording(p Provider, provider string, log *zap.Logger, events store.EventRepo) *RecordingProvider {
	return &RecordingProvider{inner: p, provider: provider, log: log, events: events, now: time.Now}
}

func (r *RecordingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := r.now()
	resp, err := r.inner.Generate(ctx, req)
	latency := r.now().Sub(start)

	ev := store.LLMRequestEventData{
		Provider:    r.provider,
		Model:       r.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   latency.Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		if resp.Model != "" {
			ev.Model = resp.Model
		}
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	fields := []zap.Field{
		zap.String("provider", ev.Provider),
		zap.String("model", ev.Model),
		zap.String("purpose", ev.Purpose),
		zap.Duration("latency", latency),
		zap.Int("input_tokens", ev.InputTokens),
		zap.Int("output_tokens", ev.OutputTokens),
	}
	if c := LookupCost(ev.Model); c != nil {
		fields = append(fields, zap.Float64("cost_usd", c.Cost(ev.InputTokens, ev.OutputTokens)))
	}
	if err != nil {
		r.log.Warn("llm request failed", append(fields, zap.Error(err))...)
	} else {
		r.log.Info("llm request", fields...)
	}

	if r.events != nil {
		if serr := r.events.AppendLLMRequest(ctx, ev); serr != nil {
			r.log.Warn("record llm request", zap.Error(serr))
		}
	}
	return resp, err
}

func (r *RecordingProvider) ModelID() string { return r.inner.ModelID() }

// transcript renders req as plain text for the request log.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
