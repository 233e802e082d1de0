// Package convert generates unit conversion questions: metric units in
// Year 5, metric and time units in Year 4, and approximate imperial
// equivalents in Year 5.
package convert

import (
	"fmt"
	"strings"

	"github.com/abhisek/ks2maths/internal/params"
)

// Measure groups units that convert into each other.
type Measure string

const (
	Length   Measure = "length"
	Mass     Measure = "mass"
	Capacity Measure = "capacity"
	Time     Measure = "time"
)

type unit struct {
	plural   string
	singular string
	measure  Measure
	metric   bool
}

var units = map[string]unit{
	"km": {"kilometres", "kilometre", Length, true},
	"m":  {"metres", "metre", Length, true},
	"cm": {"centimetres", "centimetre", Length, true},
	"mm": {"millimetres", "millimetre", Length, true},
	"kg": {"kilograms", "kilogram", Mass, true},
	"g":  {"grams", "gram", Mass, true},
	"mg": {"milligrams", "milligram", Mass, true},
	"l":  {"litres", "litre", Capacity, true},
	"ml": {"millilitres", "millilitre", Capacity, true},

	"weeks":   {"weeks", "week", Time, false},
	"days":    {"days", "day", Time, false},
	"hours":   {"hours", "hour", Time, false},
	"minutes": {"minutes", "minute", Time, false},
	"seconds": {"seconds", "second", Time, false},

	"inches":  {"inches", "inch", Length, false},
	"feet":    {"feet", "foot", Length, false},
	"yards":   {"yards", "yard", Length, false},
	"miles":   {"miles", "mile", Length, false},
	"ounces":  {"ounces", "ounce", Mass, false},
	"pounds":  {"pounds", "pound", Mass, false},
	"stone":   {"stone", "stone", Mass, false},
	"pints":   {"pints", "pint", Capacity, false},
	"gallons": {"gallons", "gallon", Capacity, false},
}

// Exact metric factors.
var metricFactors = map[string]float64{
	"km_to_m":  1000,
	"m_to_cm":  100,
	"cm_to_mm": 10,
	"km_to_cm": 100000,
	"km_to_mm": 1000000,
	"kg_to_g":  1000,
	"g_to_mg":  1000,
	"kg_to_mg": 1000000,
	"l_to_ml":  1000,
}

var timeFactors = map[string]float64{
	"weeks_to_days":      7,
	"days_to_hours":      24,
	"hours_to_minutes":   60,
	"minutes_to_seconds": 60,
}

// Approximate imperial to metric factors.
var approxFactors = map[string]float64{
	"inches_to_cm": 2.5,
	"feet_to_cm":   30,
	"yards_to_m":   1,
	"miles_to_km":  1.6,
	"ounces_to_g":  30,
	"pounds_to_g":  450,
	"pounds_to_kg": 0.45,
	"stone_to_kg":  6.5,
	"pints_to_ml":  600,
	"pints_to_l":   0.6,
	"gallons_to_l": 4.5,
}

// Conversion is a directed pair of units with the multiplier that takes a
// value in From to To.
type Conversion struct {
	Tag    string
	From   string
	To     string
	Factor float64
}

// Reverse reports whether the conversion goes from a smaller to a larger
// unit, so the learner divides.
func (c Conversion) Reverse() bool { return c.Factor < 1 }

// MultiStep reports whether the conversion skips an intermediate unit, as
// kilometres to centimetres does.
func (c Conversion) MultiStep() bool { return c.Factor >= 10000 || c.Factor <= 1.0/10000 }

// Measure returns the kind of quantity converted.
func (c Conversion) Measure() Measure { return units[c.From].measure }

// lookup resolves a tag such as "m_to_km" against a factor table, inverting
// the factor of the opposite direction when only that one is listed.
func lookup(tag string, table map[string]float64) (Conversion, error) {
	from, to, ok := strings.Cut(tag, "_to_")
	if !ok {
		return Conversion{}, fmt.Errorf("malformed conversion %q", tag)
	}
	if _, ok := units[from]; !ok {
		return Conversion{}, fmt.Errorf("conversion %q: unknown unit %q", tag, from)
	}
	if _, ok := units[to]; !ok {
		return Conversion{}, fmt.Errorf("conversion %q: unknown unit %q", tag, to)
	}
	if f, ok := table[tag]; ok {
		return Conversion{Tag: tag, From: from, To: to, Factor: f}, nil
	}
	if f, ok := table[to+"_to_"+from]; ok {
		return Conversion{Tag: tag, From: from, To: to, Factor: 1 / f}, nil
	}
	return Conversion{}, fmt.Errorf("unknown conversion %q", tag)
}

// conversions resolves the level's enabled conversions that satisfy keep.
func conversions(p params.Level, table map[string]float64, keep func(Conversion) bool) ([]Conversion, error) {
	var out []Conversion
	for _, tag := range p.Conversions {
		c, err := lookup(tag, table)
		if err != nil {
			continue
		}
		if keep == nil || keep(c) {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, &params.MissingParamError{Module: p.Module(), Level: p.Number(), Name: "conversions"}
	}
	return out, nil
}

// unitName is the singular name for exactly one and the plural otherwise.
func unitName(u string, v float64) string {
	if v == 1 {
		return units[u].singular
	}
	return units[u].plural
}
