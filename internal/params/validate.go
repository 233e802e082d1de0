package params

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// MinLevel and MaxLevel bound the difficulty levels every table defines.
const (
	MinLevel = 1
	MaxLevel = 4
)

// supportedMajor is the only table schema major version the loader reads.
const supportedMajor = "v1"

// Validate performs the structural checks on a table set.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(tables map[string]Table) error {
	var errs []string

	ids := make([]string, 0, len(tables))
	for id := range tables {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		t := tables[id]
		if t.Module != id {
			errs = append(errs, fmt.Sprintf("table %q declares module %q", id, t.Module))
		}
		if !semver.IsValid(t.Version) {
			errs = append(errs, fmt.Sprintf("table %q: invalid version %q", id, t.Version))
		} else if semver.Major(t.Version) != supportedMajor {
			errs = append(errs, fmt.Sprintf("table %q: unsupported version %s (want %s.x.x)", id, t.Version, supportedMajor))
		}

		for n := MinLevel; n <= MaxLevel; n++ {
			lvl, ok := t.Levels[n]
			if !ok {
				errs = append(errs, fmt.Sprintf("table %q: missing level %d", id, n))
				continue
			}
			errs = append(errs, validateLevel(id, n, lvl)...)
		}
		for n := range t.Levels {
			if n < MinLevel || n > MaxLevel {
				errs = append(errs, fmt.Sprintf("table %q: level %d out of range", id, n))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("parameter table validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateLevel(id string, n int, lvl Level) []string {
	var errs []string
	prefix := fmt.Sprintf("table %q level %d", id, n)

	if len(lvl.Operations) == 0 {
		errs = append(errs, prefix+": no operations")
	}
	seen := make(map[string]bool, len(lvl.Operations))
	for _, op := range lvl.Operations {
		if seen[op] {
			errs = append(errs, fmt.Sprintf("%s: duplicate operation %q", prefix, op))
		}
		seen[op] = true
	}

	names := make([]string, 0, len(lvl.Ranges))
	for name := range lvl.Ranges {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r := lvl.Ranges[name]
		if r.Min > r.Max {
			errs = append(errs, fmt.Sprintf("%s: range %q has min %g > max %g", prefix, name, r.Min, r.Max))
		}
	}

	switch lvl.QuestionFormat {
	case "", "text_input", "multiple_choice":
	default:
		errs = append(errs, fmt.Sprintf("%s: invalid question_format %q", prefix, lvl.QuestionFormat))
	}

	for _, o := range lvl.Objects {
		if o.Name == "" || o.Capacity <= 0 {
			errs = append(errs, fmt.Sprintf("%s: object %q needs a name and positive capacity", prefix, o.Name))
		}
	}
	return errs
}
