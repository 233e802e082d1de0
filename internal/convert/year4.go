package convert

import (
	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

// Year4ModuleID is the Year 4 metric and time conversion topic.
const Year4ModuleID = "M06_Y4_MEAS"

// NewYear4 returns the M06_Y4_MEAS generator. Every answer is a whole
// number: values converted to a larger unit are drawn as exact multiples.
func NewYear4() problemgen.OpGenerator {
	return problemgen.OpGenerator{
		ID: Year4ModuleID,
		Ops: problemgen.Ops{
			"direct_metric_conversion":  year4Direct,
			"reverse_metric_conversion": year4Reverse,
			"time_conversion":           year4Time,
			"word_problem":              year4WordProblem,
		},
	}
}

// wholeValue draws a value for c whose conversion is a whole number.
func wholeValue(p params.Level, c Conversion, rng *problemgen.Rand) (float64, error) {
	if c.Reverse() {
		return drawMultiple(p, c, rng)
	}
	return drawValue(p, c.From, 0, rng)
}

func year4Direct(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	cs, err := conversions(p, metricFactors, func(c Conversion) bool { return !c.Reverse() })
	if err != nil {
		return nil, err
	}
	c := problemgen.Pick(rng, cs)
	v, err := wholeValue(p, c, rng)
	if err != nil {
		return nil, err
	}
	return convertQuestion(c, v, factorHint(c)), nil
}

func year4Reverse(p params.Level, level int, rng *problemgen.Rand) (*problemgen.Question, error) {
	cs, err := conversions(p, metricFactors, Conversion.Reverse)
	if err != nil {
		return year4Direct(p, level, rng)
	}
	c := problemgen.Pick(rng, cs)
	v, err := wholeValue(p, c, rng)
	if err != nil {
		return nil, err
	}
	return convertQuestion(c, v, divideHint(c, v, c.Apply(v))), nil
}

func year4Time(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	cs, err := conversions(p, timeFactors, nil)
	if err != nil {
		return nil, err
	}
	c := problemgen.Pick(rng, cs)
	v, err := wholeValue(p, c, rng)
	if err != nil {
		return nil, err
	}
	hint := factorHint(c)
	if c.Reverse() {
		hint = divideHint(c, v, c.Apply(v))
	}
	return convertQuestion(c, v, hint), nil
}

func year4WordProblem(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	table := metricFactors
	if rng.Chance(0.5) {
		table = timeFactors
	}
	cs, err := conversions(p, table, nil)
	if err != nil {
		return nil, err
	}
	c := problemgen.Pick(rng, cs)
	v, err := wholeValue(p, c, rng)
	if err != nil {
		return nil, err
	}
	return wordProblem(c, v, c.Apply(v), rng), nil
}
