// Package params holds the static per-topic, per-level parameter tables that
// drive question generation. Tables are authored as YAML, embedded in the
// binary and parsed once at start-up.
package params

import (
	"fmt"
	"math"
	"slices"
)

// Range is an inclusive numeric range.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// IntBounds returns the range rounded inwards to whole numbers.
func (r Range) IntBounds() (int, int) {
	return int(math.Ceil(r.Min)), int(math.Floor(r.Max))
}

// Object is a named everyday object with a known capacity in millilitres.
type Object struct {
	Name     string `yaml:"name"`
	Capacity int    `yaml:"capacity"`
}

// Level is the parameter set for one difficulty level of a topic.
type Level struct {
	Operations     []string           `yaml:"operations"`
	Ranges         map[string]Range   `yaml:"ranges"`
	Units          []string           `yaml:"units"`
	Conversions    []string           `yaml:"conversions"`
	ValueTypes     []string           `yaml:"value_types"`
	Flags          map[string]bool    `yaml:"flags"`
	Numbers        map[string]float64 `yaml:"numbers"`
	Objects        []Object           `yaml:"objects"`
	QuestionFormat string             `yaml:"question_format"`

	module string
	level  int
}

// Table is the complete parameter table for one topic.
type Table struct {
	Module  string        `yaml:"module"`
	Version string        `yaml:"version"`
	Levels  map[int]Level `yaml:"levels"`
}

// MissingParamError is returned when a generator asks for a range or number
// the level does not define.
type MissingParamError struct {
	Module string
	Level  int
	Name   string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("params %s level %d: missing %q", e.Module, e.Level, e.Name)
}

// Module returns the topic id the level belongs to.
func (l Level) Module() string { return l.module }

// Number returns the level number (1-4).
func (l Level) Number() int { return l.level }

// Range returns the named range.
func (l Level) Range(name string) (Range, error) {
	r, ok := l.Ranges[name]
	if !ok {
		return Range{}, &MissingParamError{Module: l.module, Level: l.level, Name: name}
	}
	return r, nil
}

// Num returns the named scalar knob.
func (l Level) Num(name string) (float64, error) {
	v, ok := l.Numbers[name]
	if !ok {
		return 0, &MissingParamError{Module: l.module, Level: l.level, Name: name}
	}
	return v, nil
}

// NumOr returns the named scalar knob, or def when it is not set.
func (l Level) NumOr(name string, def float64) float64 {
	if v, ok := l.Numbers[name]; ok {
		return v
	}
	return def
}

// Flag reports whether the named feature flag is set.
func (l Level) Flag(name string) bool {
	return l.Flags[name]
}

// HasOperation reports whether the operation tag is enabled at this level.
func (l Level) HasOperation(tag string) bool {
	return slices.Contains(l.Operations, tag)
}

// HasConversion reports whether the conversion is enabled at this level.
func (l Level) HasConversion(conv string) bool {
	return slices.Contains(l.Conversions, conv)
}

// clone returns a deep copy so callers can never mutate the loaded tables.
func (l Level) clone() Level {
	out := l
	out.Operations = slices.Clone(l.Operations)
	out.Units = slices.Clone(l.Units)
	out.Conversions = slices.Clone(l.Conversions)
	out.ValueTypes = slices.Clone(l.ValueTypes)
	out.Objects = slices.Clone(l.Objects)
	if l.Ranges != nil {
		out.Ranges = make(map[string]Range, len(l.Ranges))
		for k, v := range l.Ranges {
			out.Ranges[k] = v
		}
	}
	if l.Flags != nil {
		out.Flags = make(map[string]bool, len(l.Flags))
		for k, v := range l.Flags {
			out.Flags[k] = v
		}
	}
	if l.Numbers != nil {
		out.Numbers = make(map[string]float64, len(l.Numbers))
		for k, v := range l.Numbers {
			out.Numbers[k] = v
		}
	}
	return out
}
