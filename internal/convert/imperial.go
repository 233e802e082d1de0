package convert

import (
	"fmt"

	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

// ImperialModuleID is the Year 5 approximate imperial equivalence topic.
const ImperialModuleID = "M06_Y5_MEAS"

const imperialDecimalPlaces = 1

var approxPhrases = []string{"approximately", "about", "roughly"}

// NewImperial returns the M06_Y5_MEAS generator. Answers are approximate and
// carry the level's tolerance_percent.
func NewImperial() problemgen.OpGenerator {
	return problemgen.OpGenerator{
		ID: ImperialModuleID,
		Ops: problemgen.Ops{
			"approximate_conversion_metric_to_imperial": metricToImperial,
			"approximate_conversion_imperial_to_metric": imperialToMetric,
			"word_problem":                              imperialWordProblem,
			"comparison":                                imperialComparison,
			"multi_step":                                imperialMultiStep,
		},
	}
}

func fromMetric(c Conversion) bool { return units[c.From].metric }
func toMetric(c Conversion) bool   { return !units[c.From].metric }

// approxAnswer converts v and rounds it the way a Year 5 estimate would be.
// A conversion that rounds to nothing is re-drawn.
func approxAnswer(p params.Level, c Conversion, rng *problemgen.Rand) (v, ans float64, err error) {
	var drawErr error
	err = problemgen.Retry(func() bool {
		v, drawErr = drawValue(p, c.From, imperialDecimalPlaces, rng)
		if drawErr != nil {
			return true
		}
		ans = roughly(v * c.Factor)
		return ans > 0
	})
	if drawErr != nil {
		return 0, 0, drawErr
	}
	return v, ans, err
}

func phrase(p params.Level, rng *problemgen.Rand) string {
	if !p.Flag("use_approximate_language") {
		return ""
	}
	return problemgen.Pick(rng, approxPhrases)
}

func approximate(p params.Level, q *problemgen.Question) *problemgen.Question {
	q.TolerancePercent = p.NumOr("tolerance_percent", 0)
	return q
}

func approxQuestion(p params.Level, c Conversion, v, ans float64, rng *problemgen.Rand, hint string) *problemgen.Question {
	var text string
	if ph := phrase(p, rng); ph != "" {
		text = fmt.Sprintf("%s is %s how many %s?", amount(v, c.From), ph, unitName(c.To, ans))
	} else {
		text = fmt.Sprintf("Convert %s to %s (use approximate conversions).", amount(v, c.From), unitName(c.To, ans))
	}
	return approximate(p, problemgen.TextInput(text, ans, hint))
}

func metricToImperial(p params.Level, level int, rng *problemgen.Rand) (*problemgen.Question, error) {
	cs, err := conversions(p, approxFactors, fromMetric)
	if err != nil {
		return imperialToMetric(p, level, rng)
	}
	c := problemgen.Pick(rng, cs)
	v, ans, err := approxAnswer(p, c, rng)
	if err != nil {
		return nil, err
	}
	hint := fmt.Sprintf("Remember, 1 %s ≈ %s %s",
		units[c.From].singular, problemgen.FormatNumber(problemgen.Round(c.Factor, 4)), units[c.To].plural)
	return approxQuestion(p, c, v, ans, rng, hint), nil
}

func imperialToMetric(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	cs, err := conversions(p, approxFactors, toMetric)
	if err != nil {
		return nil, err
	}
	c := problemgen.Pick(rng, cs)
	v, ans, err := approxAnswer(p, c, rng)
	if err != nil {
		return nil, err
	}
	hint := fmt.Sprintf("Remember, these are approximate conversions. Think about the relationship between %s and %s.",
		units[c.From].plural, units[c.To].plural)
	return approxQuestion(p, c, v, ans, rng, hint), nil
}

func imperialWordProblem(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	cs, err := conversions(p, approxFactors, nil)
	if err != nil {
		return nil, err
	}
	c := problemgen.Pick(rng, cs)
	v, ans, err := approxAnswer(p, c, rng)
	if err != nil {
		return nil, err
	}
	ph := phrase(p, rng)
	if ph == "" {
		ph = "approximately"
	}
	opener := fmt.Sprintf(problemgen.Pick(rng, approxContexts[c.Measure()]), amount(v, c.From))
	text := fmt.Sprintf("%s This is %s how many %s?", opener, ph, unitName(c.To, ans))
	hint := fmt.Sprintf("Use approximate conversions between %s and %s.", units[c.From].plural, units[c.To].plural)
	return approximate(p, problemgen.TextInput(text, ans, hint)), nil
}

func imperialComparison(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	cs, err := conversions(p, approxFactors, nil)
	if err != nil {
		return nil, err
	}
	c := problemgen.Pick(rng, cs)
	v1, err := drawValue(p, c.From, imperialDecimalPlaces, rng)
	if err != nil {
		return nil, err
	}
	v2, err := drawValue(p, c.To, imperialDecimalPlaces, rng)
	if err != nil {
		return nil, err
	}
	return comparison(c, v1, v2, v1*c.Factor, 0.1, "They are approximately equal",
		"Convert both to the same unit to compare. Remember to use approximate conversions."), nil
}

func imperialMultiStep(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	cs, err := conversions(p, approxFactors, toMetric)
	if err != nil {
		return nil, err
	}
	c := problemgen.Pick(rng, cs)
	v, ans, err := approxAnswer(p, c, rng)
	if err != nil {
		return nil, err
	}
	factor := problemgen.FormatNumber(c.Factor)
	text := fmt.Sprintf("A measurement is %s. If 1 %s is approximately %s %s, what is the approximate measurement in %s?",
		amount(v, c.From), units[c.From].singular, factor, c.To, units[c.To].plural)
	hint := fmt.Sprintf("Multiply %s by %s to find the approximate answer.", problemgen.FormatNumber(v), factor)
	return approximate(p, problemgen.TextInput(text, ans, hint)), nil
}
