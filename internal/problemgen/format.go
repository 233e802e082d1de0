package problemgen

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var gbPrinter = message.NewPrinter(language.BritishEnglish)

// FormatNumber renders v without trailing zeros. Float noise is absorbed by
// rounding to 12 significant digits first, so 0.1*3 renders as "0.3".
func FormatNumber(v float64) string {
	f, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 12, 64), 64)
	if err != nil {
		f = v
	}
	if f == 0 {
		f = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatGrouped renders n with en-GB thousands separators, e.g. "1,500".
func FormatGrouped(n int) string {
	return gbPrinter.Sprintf("%d", n)
}

// FormatGroupedNumber is FormatGrouped for values that may carry a
// fractional part.
func FormatGroupedNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return FormatGrouped(int(v))
	}
	s := FormatNumber(v)
	whole, frac, _ := strings.Cut(s, ".")
	n, err := strconv.Atoi(whole)
	if err != nil {
		return s
	}
	return FormatGrouped(n) + "." + frac
}

// Round rounds v to dp decimal places.
func Round(v float64, dp int) float64 {
	p := math.Pow(10, float64(dp))
	return math.Round(v*p) / p
}

// NumericType classifies a numeric answer.
func NumericType(v float64) AnswerType {
	if f := FormatFloatValue(v); f == math.Trunc(f) {
		return AnswerTypeInteger
	}
	return AnswerTypeDecimal
}

// FormatFloatValue returns v after the same significant-digit rounding
// FormatNumber applies.
func FormatFloatValue(v float64) float64 {
	f, err := strconv.ParseFloat(FormatNumber(v), 64)
	if err != nil {
		return v
	}
	return f
}

// NumericTypeOf classifies an answer string: integer, decimal, or text when
// it does not parse as a plain number.
func NumericTypeOf(s string) AnswerType {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return AnswerTypeInteger
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return AnswerTypeDecimal
	}
	return AnswerTypeText
}

func allNumeric(xs []string) bool {
	if len(xs) == 0 {
		return false
	}
	for _, x := range xs {
		if NumericTypeOf(x) == AnswerTypeText {
			return false
		}
	}
	return true
}

// Plural returns word for a count of exactly one and word+"s" otherwise.
func Plural(word string, n float64) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// Distinct reports whether the options are pairwise different, ignoring
// case and surrounding whitespace.
func Distinct(options []string) bool {
	seen := make(map[string]bool, len(options))
	for _, o := range options {
		k := strings.ToLower(strings.TrimSpace(o))
		if seen[k] {
			return false
		}
		seen[k] = true
	}
	return true
}

// Ints formats integers as answer strings.
func Ints(vs ...int) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = strconv.Itoa(v)
	}
	return out
}
