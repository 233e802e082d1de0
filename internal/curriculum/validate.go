package curriculum

import (
	"fmt"
	"strings"

	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

// Validate checks the catalogue against the parameter tables and the
// generators: every topic needs a table and a generator, and every
// operation a table enables must be implemented.
func Validate() error {
	return validateTopics(c.topics, Generators())
}

func validateTopics(ts []Topic, gens []problemgen.Generator) error {
	var errs []string

	byModule := make(map[string]problemgen.Generator, len(gens))
	for _, g := range gens {
		byModule[g.Module()] = g
	}

	ids := make(map[string]bool, len(ts))
	for _, t := range ts {
		if ids[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate topic ID: %q", t.ID))
		}
		ids[t.ID] = true
		if t.Year < 3 || t.Year > 6 {
			errs = append(errs, fmt.Sprintf("topic %q: year must be 3-6, got %d", t.ID, t.Year))
		}
	}

	for _, t := range ts {
		for _, pid := range t.Prerequisites {
			if !ids[pid] {
				errs = append(errs, fmt.Sprintf("topic %q references nonexistent prerequisite %q", t.ID, pid))
			}
		}
		if cyclic(t.ID, ts) {
			errs = append(errs, fmt.Sprintf("topic %q is its own prerequisite", t.ID))
		}

		g, ok := byModule[t.ID]
		if !ok {
			errs = append(errs, fmt.Sprintf("topic %q has no generator", t.ID))
			continue
		}
		if !params.Has(t.ID) {
			errs = append(errs, fmt.Sprintf("topic %q has no parameter table", t.ID))
			continue
		}
		implemented := make(map[string]bool)
		for _, op := range g.Operations() {
			implemented[op] = true
		}
		for level := params.MinLevel; level <= params.MaxLevel; level++ {
			p, err := params.Lookup(t.ID, level)
			if err != nil {
				errs = append(errs, fmt.Sprintf("topic %q: %v", t.ID, err))
				continue
			}
			for _, op := range p.Operations {
				if !implemented[op] {
					errs = append(errs, fmt.Sprintf("topic %q level %d: operation %q is not implemented", t.ID, level, op))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// cyclic reports whether id can reach itself through prerequisites.
func cyclic(id string, ts []Topic) bool {
	prereqs := make(map[string][]string, len(ts))
	for _, t := range ts {
		prereqs[t.ID] = t.Prerequisites
	}
	seen := make(map[string]bool)
	stack := append([]string(nil), prereqs[id]...)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == id {
			return true
		}
		if seen[cur] {
			continue
		}
		seen[cur] = true
		stack = append(stack, prereqs[cur]...)
	}
	return false
}
