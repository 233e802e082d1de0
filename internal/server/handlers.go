package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/abhisek/ks2maths/internal/curriculum"
	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Module describes one topic in /api/v1/modules.
type Module struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Year          int      `json:"year"`
	Strand        string   `json:"strand"`
	Prerequisites []string `json:"prerequisites"`
	Levels        []int    `json:"levels"`
	Operations    []string `json:"operations"`
}

// QuestionsResponse is the body of /api/v1/questions.
type QuestionsResponse struct {
	Module    string                 `json:"module"`
	Level     int                    `json:"level"`
	Total     int                    `json:"total"`
	Partial   bool                   `json:"partial"`
	Questions []*problemgen.Question `json:"questions"`
}

// CheckRequest is the body of POST /api/v1/check.
type CheckRequest struct {
	Question *problemgen.Question `json:"question"`
	Answer   string               `json:"answer"`
}

// CheckResponse reports the grading result.
type CheckResponse struct {
	Correct bool   `json:"correct"`
	Answer  string `json:"answer"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: msg})
}

func (s *Server) module(t curriculum.Topic) Module {
	m := Module{
		ID:            t.ID,
		Name:          t.Name,
		Description:   t.Description,
		Year:          t.Year,
		Strand:        string(t.Strand),
		Prerequisites: append([]string{}, t.Prerequisites...),
		Levels:        []int{},
		Operations:    []string{},
	}
	for lvl := params.MinLevel; lvl <= params.MaxLevel; lvl++ {
		if _, err := params.Lookup(t.ID, lvl); err == nil {
			m.Levels = append(m.Levels, lvl)
		}
	}
	if g, ok := s.engine.Generator(t.ID); ok {
		m.Operations = g.Operations()
	}
	return m
}

func (s *Server) listModules(w http.ResponseWriter, _ *http.Request) {
	out := make([]Module, 0, len(s.topics))
	for _, t := range s.topics {
		out = append(out, s.module(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) getModule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	t, ok := s.topic(id)
	if !ok {
		writeError(w, http.StatusNotFound, "module_not_found", "unknown module "+strconv.Quote(id))
		return
	}
	writeJSON(w, http.StatusOK, s.module(t))
}

func (s *Server) topic(id string) (curriculum.Topic, bool) {
	for _, t := range s.topics {
		if t.ID == id {
			return t, true
		}
	}
	return curriculum.Topic{}, false
}

// unknownModuleLabel replaces client-supplied module ids outside the
// catalogue in metric labels.
const unknownModuleLabel = "unknown"

func (s *Server) moduleLabel(id string) string {
	if _, ok := s.topic(id); ok {
		return id
	}
	return unknownModuleLabel
}

func (s *Server) questions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	module := q.Get("module")
	if module == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "module is required")
		return
	}
	level, err := intParam(q.Get("level"), 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "level must be an integer")
		return
	}
	count, err := intParam(q.Get("count"), 1)
	if err != nil || count < 1 {
		writeError(w, http.StatusBadRequest, "invalid_request", "count must be a positive integer")
		return
	}
	count = min(count, MaxBatch)

	batch, err := s.engine.Generate(r.Context(), module, level, count)
	var short *problemgen.ShortBatchError
	var unknown *problemgen.UnknownModuleError
	switch {
	case err == nil:
	case errors.As(err, &short) && len(batch) > 0:
	case errors.As(err, &unknown):
		writeError(w, http.StatusNotFound, "module_not_found", err.Error())
		return
	case errors.Is(err, problemgen.ErrInvalidLevel):
		writeError(w, http.StatusBadRequest, "invalid_level", err.Error())
		return
	default:
		s.log.Error("generate questions", zap.String("module", module), zap.Int("level", level), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to generate questions")
		return
	}

	s.metrics.generated.WithLabelValues(module).Add(float64(len(batch)))
	writeJSON(w, http.StatusOK, QuestionsResponse{
		Module:    module,
		Level:     level,
		Total:     len(batch),
		Partial:   short != nil,
		Questions: batch,
	})
}

func (s *Server) check(w http.ResponseWriter, r *http.Request) {
	var req CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request payload")
		return
	}
	if req.Question == nil || req.Question.Answer == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "question with an answer is required")
		return
	}
	ok := problemgen.CheckAnswer(req.Answer, req.Question)
	s.metrics.checked.WithLabelValues(s.moduleLabel(req.Question.Module), strconv.FormatBool(ok)).Inc()
	writeJSON(w, http.StatusOK, CheckResponse{Correct: ok, Answer: req.Question.Answer})
}

func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
