package convert

import (
	"math"

	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

// Value types a level may enable.
const (
	WholeOnly     = "whole_only"
	Whole         = "whole"
	SimpleDecimal = "simple_decimal"
	Decimal       = "decimal"
)

// answerPlaces absorbs float error in exact conversions.
const answerPlaces = 9

// drawValue picks a value for unit u from the level's range. Decimal values
// carry dp decimal places.
func drawValue(p params.Level, u string, dp int, rng *problemgen.Rand) (float64, error) {
	r, err := p.Range(u)
	if err != nil {
		return 0, err
	}
	lo, hi := r.IntBounds()
	if hi < lo {
		return 0, problemgen.ErrSamplingExhausted
	}
	kind := Whole
	if len(p.ValueTypes) > 0 {
		kind = problemgen.Pick(rng, p.ValueTypes)
	}

	// The whole part stays below max so the decimal part cannot overshoot.
	top := max(lo, hi-1)
	switch kind {
	case SimpleDecimal:
		return float64(rng.Int(lo, top)) + problemgen.Pick(rng, []float64{0, 0.5}), nil
	case Decimal:
		scale := math.Pow(10, float64(dp))
		frac := float64(rng.Int(0, int(scale)-1)) / scale
		return problemgen.Round(float64(rng.Int(lo, top))+frac, dp), nil
	default:
		return float64(rng.Int(lo, hi)), nil
	}
}

// drawMultiple picks a value for a dividing conversion that converts to a
// whole number: a multiple of 1/c.Factor within the range of c.From.
func drawMultiple(p params.Level, c Conversion, rng *problemgen.Rand) (float64, error) {
	r, err := p.Range(c.From)
	if err != nil {
		return 0, err
	}
	step := math.Round(1 / c.Factor)
	lo := int(math.Ceil(r.Min / step))
	hi := int(math.Floor(r.Max / step))
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		return 0, problemgen.ErrSamplingExhausted
	}
	return float64(rng.Int(lo, hi)) * step, nil
}

// roughly rounds an approximate answer to a whole number from 10 upwards and
// to one decimal place below.
func roughly(v float64) float64 {
	if v >= 10 {
		return math.Round(v)
	}
	return problemgen.Round(v, 1)
}
