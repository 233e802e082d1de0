package convert

import (
	"fmt"

	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

// MetricModuleID is the Year 5 metric conversion topic.
const MetricModuleID = "M05_Y5_MEAS"

// metricDecimalPlaces is the precision of "decimal" values in Year 5.
const metricDecimalPlaces = 2

// NewMetric returns the M05_Y5_MEAS generator.
func NewMetric() problemgen.OpGenerator {
	return problemgen.OpGenerator{
		ID: MetricModuleID,
		Ops: problemgen.Ops{
			"direct_conversion":  metricDirect,
			"reverse_conversion": metricReverse,
			"word_problem":       metricWordProblem,
			"comparison":         metricComparison,
			"multi_step":         metricMultiStep,
		},
	}
}

func metricDirect(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	cs, err := conversions(p, metricFactors, func(c Conversion) bool { return !c.Reverse() })
	if err != nil {
		return nil, err
	}
	c := problemgen.Pick(rng, cs)
	v, err := drawValue(p, c.From, metricDecimalPlaces, rng)
	if err != nil {
		return nil, err
	}
	return convertQuestion(c, v, factorHint(c)), nil
}

func metricReverse(p params.Level, level int, rng *problemgen.Rand) (*problemgen.Question, error) {
	cs, err := conversions(p, metricFactors, Conversion.Reverse)
	if err != nil {
		return metricDirect(p, level, rng)
	}
	c := problemgen.Pick(rng, cs)
	v, err := drawValue(p, c.From, metricDecimalPlaces, rng)
	if err != nil {
		return nil, err
	}
	return convertQuestion(c, v, divideHint(c, v, c.Apply(v))), nil
}

func metricMultiStep(p params.Level, level int, rng *problemgen.Rand) (*problemgen.Question, error) {
	cs, err := conversions(p, metricFactors, Conversion.MultiStep)
	if err != nil {
		return metricDirect(p, level, rng)
	}
	c := problemgen.Pick(rng, cs)
	v, err := drawValue(p, c.From, metricDecimalPlaces, rng)
	if err != nil {
		return nil, err
	}
	return convertQuestion(c, v,
		"This is a multi-step conversion. Think about the intermediate unit you might need."), nil
}

func metricWordProblem(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	cs, err := conversions(p, metricFactors, nil)
	if err != nil {
		return nil, err
	}
	c := problemgen.Pick(rng, cs)
	v, err := drawValue(p, c.From, metricDecimalPlaces, rng)
	if err != nil {
		return nil, err
	}
	return wordProblem(c, v, c.Apply(v), rng), nil
}

func metricComparison(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	cs, err := conversions(p, metricFactors, nil)
	if err != nil {
		return nil, err
	}
	c := problemgen.Pick(rng, cs)
	v1, err := drawValue(p, c.From, metricDecimalPlaces, rng)
	if err != nil {
		return nil, err
	}
	v2, err := drawValue(p, c.To, metricDecimalPlaces, rng)
	if err != nil {
		return nil, err
	}
	return comparison(c, v1, v2, c.Apply(v1), 0.0001, "They are equal",
		"Convert both measurements to the same unit to compare them."), nil
}

// Apply converts v from c.From to c.To.
func (c Conversion) Apply(v float64) float64 {
	return problemgen.Round(v*c.Factor, answerPlaces)
}

func convertQuestion(c Conversion, v float64, hint string) *problemgen.Question {
	ans := c.Apply(v)
	text := fmt.Sprintf("Convert %s %s to %s.",
		problemgen.FormatNumber(v), unitName(c.From, v), unitName(c.To, ans))
	return problemgen.TextInput(text, ans, hint)
}

func factorHint(c Conversion) string {
	return fmt.Sprintf("1 %s = %s %s",
		units[c.From].singular, problemgen.FormatNumber(c.Factor), unitName(c.To, c.Factor))
}

func divideHint(c Conversion, v, ans float64) string {
	return fmt.Sprintf("You need to divide to convert from %s to %s.",
		unitName(c.From, v), unitName(c.To, ans))
}

// comparison asks which of two amounts in different units is larger.
// within is the gap under which the amounts count as equal.
func comparison(c Conversion, v1, v2, v1Converted, within float64, equal, hint string) *problemgen.Question {
	o1 := problemgen.FormatNumber(v1) + " " + c.From
	o2 := problemgen.FormatNumber(v2) + " " + c.To

	answer := o2
	switch diff := v1Converted - v2; {
	case diff > -within && diff < within:
		answer = equal
	case diff > 0:
		answer = o1
	}

	text := fmt.Sprintf("Which is larger: %s %s or %s %s?",
		problemgen.FormatNumber(v1), unitName(c.From, v1),
		problemgen.FormatNumber(v2), unitName(c.To, v2))
	return problemgen.MultipleChoice(text, answer, []string{o1, o2, equal}, hint)
}
