package problemgen

import (
	"fmt"
	"sort"

	"github.com/abhisek/ks2maths/internal/params"
)

// Op builds one question shape from a level's parameters.
type Op func(p params.Level, level int, rng *Rand) (*Question, error)

// Ops maps operation tags to their builders.
type Ops map[string]Op

// Tags returns the implemented operation tags, sorted.
func (o Ops) Tags() []string {
	tags := make([]string, 0, len(o))
	for t := range o {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// Dispatch selects an operation uniformly from p.Operations, runs its
// builder and stamps the provenance fields on the result.
func Dispatch(module string, ops Ops, p params.Level, level int, rng *Rand) (*Question, error) {
	if len(p.Operations) == 0 {
		return nil, &params.MissingParamError{Module: module, Level: level, Name: "operations"}
	}
	tag := Pick(rng, p.Operations)
	op, ok := ops[tag]
	if !ok {
		return nil, &UnknownOperationError{Module: module, Operation: tag}
	}
	q, err := op(p, level, rng)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", module, tag, err)
	}
	q.Module = module
	q.Operation = tag
	q.Level = level
	return q, nil
}

// OpGenerator adapts a module id and an operation table to Generator.
type OpGenerator struct {
	ID  string
	Ops Ops
}

func (g OpGenerator) Module() string { return g.ID }

func (g OpGenerator) Operations() []string { return g.Ops.Tags() }

func (g OpGenerator) Generate(p params.Level, level int, rng *Rand) (*Question, error) {
	return Dispatch(g.ID, g.Ops, p, level, rng)
}
