// Package money generates Year 4 questions comparing amounts of money given
// in pounds and in pence.
package money

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

// ModuleID is the curriculum id of the money comparison topic.
const ModuleID = "M01_Y4_MEAS"

const poundHint = "Remember: £1 = 100p. Convert both amounts to the same unit to compare."

var (
	decimalPence = []int{0, 25, 50, 75}
	names        = []string{"Tom", "Sarah", "Alex", "Maya"}
	positions    = []string{"FIRST", "SECOND", "LAST"}
)

// New returns the M01_Y4_MEAS generator.
func New() problemgen.OpGenerator {
	return problemgen.OpGenerator{
		ID: ModuleID,
		Ops: problemgen.Ops{
			"direct_comparison":  directComparison,
			"complete_statement": completeStatement,
			"ordering":           ordering,
			"context_problem":    contextProblem,
			"equivalence":        equivalence,
		},
	}
}

// ToPence parses "£2.50", "£3" or "1,500p" into a whole number of pence.
func ToPence(amount string) (int, error) {
	s := strings.ReplaceAll(strings.TrimSpace(amount), ",", "")
	switch {
	case strings.HasPrefix(s, "£"):
		v, err := strconv.ParseFloat(strings.TrimPrefix(s, "£"), 64)
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", amount, err)
		}
		return int(math.Round(v * 100)), nil
	case strings.HasSuffix(s, "p"):
		v, err := strconv.Atoi(strings.TrimSuffix(s, "p"))
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", amount, err)
		}
		return v, nil
	}
	return 0, fmt.Errorf("parse %q: not a pounds or pence amount", amount)
}

type amount struct {
	display string
	pence   int
}

// ranges reads the pounds and pence bounds of a level.
type ranges struct {
	minPounds, maxPounds int
	minPence, maxPence   int
	decimals             bool
}

func readRanges(p params.Level, level int) (ranges, error) {
	pounds, err := p.Range("pounds")
	if err != nil {
		return ranges{}, err
	}
	pence, err := p.Range("pence")
	if err != nil {
		return ranges{}, err
	}
	var r ranges
	r.minPounds, r.maxPounds = pounds.IntBounds()
	r.minPence, r.maxPence = pence.IntBounds()
	r.decimals = level >= 2
	return r, nil
}

func (r ranges) pounds(rng *problemgen.Rand) amount {
	whole := rng.Int(r.minPounds, r.maxPounds)
	pp := 0
	if r.decimals && rng.Chance(0.7) {
		pp = problemgen.Pick(rng, decimalPence)
	}
	return poundsAmount(whole, pp)
}

func (r ranges) pence(rng *problemgen.Rand) amount {
	return penceAmount(rng.Int(r.minPence, r.maxPence))
}

func (r ranges) either(rng *problemgen.Rand) amount {
	if rng.Chance(0.5) {
		return r.pounds(rng)
	}
	return r.pence(rng)
}

func poundsAmount(whole, pp int) amount {
	display := "£" + strconv.Itoa(whole)
	if pp > 0 {
		display += fmt.Sprintf(".%02d", pp)
	}
	return amount{display: display, pence: whole*100 + pp}
}

func penceAmount(pence int) amount {
	return amount{display: problemgen.FormatGrouped(pence) + "p", pence: pence}
}

func symbol(a, b int) string {
	switch {
	case a > b:
		return ">"
	case a < b:
		return "<"
	}
	return "="
}

// distinctPair draws a pounds amount and a pence amount of different value.
func distinctPair(r ranges, rng *problemgen.Rand) (amount, amount, error) {
	var a, b amount
	err := problemgen.Retry(func() bool {
		a, b = r.pounds(rng), r.pence(rng)
		return a.pence != b.pence
	})
	return a, b, err
}

func directComparison(p params.Level, level int, rng *problemgen.Rand) (*problemgen.Question, error) {
	r, err := readRanges(p, level)
	if err != nil {
		return nil, err
	}
	a, b, err := distinctPair(r, rng)
	if err != nil {
		return nil, err
	}
	if rng.Chance(0.5) {
		a, b = b, a
	}

	larger, smaller := a, b
	if b.pence > a.pence {
		larger, smaller = b, a
	}
	word, answer := "more", larger
	if rng.Chance(0.5) {
		word, answer = "less", smaller
	}

	text := fmt.Sprintf("Which is %s: %s or %s?", word, a.display, b.display)
	options := problemgen.Shuffle(rng, []string{a.display, b.display})
	return problemgen.MultipleChoice(text, answer.display, options, poundHint), nil
}

func completeStatement(p params.Level, level int, rng *problemgen.Rand) (*problemgen.Question, error) {
	r, err := readRanges(p, level)
	if err != nil {
		return nil, err
	}
	a, b := r.pounds(rng), r.pence(rng)
	text := fmt.Sprintf("Complete using >, < or =: %s ___ %s", a.display, b.display)
	return problemgen.MultipleChoice(text, symbol(a.pence, b.pence), []string{">", "<", "="}, poundHint), nil
}

func ordering(p params.Level, level int, rng *problemgen.Rand) (*problemgen.Question, error) {
	r, err := readRanges(p, level)
	if err != nil {
		return nil, err
	}
	count := 3
	if level >= 3 {
		count = 4
	}

	var amounts []amount
	err = problemgen.Retry(func() bool {
		amounts = amounts[:0]
		seen := make(map[int]bool, count)
		for range count {
			a := r.either(rng)
			if seen[a.pence] {
				return false
			}
			seen[a.pence] = true
			amounts = append(amounts, a)
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	sorted := append([]amount(nil), amounts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].pence < sorted[j].pence })

	position := problemgen.Pick(rng, positions)
	var answer amount
	switch position {
	case "FIRST":
		answer = sorted[0]
	case "SECOND":
		answer = sorted[1]
	default:
		answer = sorted[len(sorted)-1]
	}

	displays := make([]string, len(amounts))
	for i, a := range amounts {
		displays[i] = a.display
	}
	text := fmt.Sprintf("Put these in order from smallest to largest: %s. Which comes %s?",
		strings.Join(problemgen.Shuffle(rng, displays), ", "), position)
	return problemgen.MultipleChoice(text, answer.display, problemgen.Shuffle(rng, displays),
		"Convert every amount to pence before putting them in order."), nil
}

func contextProblem(p params.Level, level int, rng *problemgen.Rand) (*problemgen.Question, error) {
	r, err := readRanges(p, level)
	if err != nil {
		return nil, err
	}
	a, b, err := distinctPair(r, rng)
	if err != nil {
		return nil, err
	}
	pair := problemgen.Shuffle(rng, names)[:2]
	name1, name2 := pair[0], pair[1]

	more, less := name1, name2
	if b.pence > a.pence {
		more, less = name2, name1
	}

	var text, answer string
	switch rng.Int(0, 2) {
	case 0:
		text = fmt.Sprintf("%s has %s. %s has %s. Who has more money?", name1, a.display, name2, b.display)
		answer = more
	case 1:
		text = fmt.Sprintf("%s has %s. %s has %s. Who has less money?", name1, a.display, name2, b.display)
		answer = less
	default:
		text = fmt.Sprintf("%s saved %s. %s saved %s. Who saved more?", name1, a.display, name2, b.display)
		answer = more
	}
	return problemgen.MultipleChoice(text, answer, problemgen.Shuffle(rng, []string{name1, name2}), poundHint), nil
}

func equivalence(p params.Level, level int, rng *problemgen.Rand) (*problemgen.Question, error) {
	r, err := readRanges(p, level)
	if err != nil {
		return nil, err
	}
	// Every amount, including the pence form of the pounds value, stays
	// within the level's pence range.
	var pounds amount
	err = problemgen.Retry(func() bool {
		pp := 0
		if r.decimals && rng.Chance(0.5) {
			pp = problemgen.Pick(rng, decimalPence[1:])
		}
		pounds = poundsAmount(rng.Int(r.minPounds, r.maxPounds), pp)
		return pounds.pence <= r.maxPence
	})
	if err != nil {
		return nil, err
	}
	pence := penceAmount(pounds.pence)

	var other amount
	err = problemgen.Retry(func() bool {
		offset := rng.Int(10, 100)
		if rng.Chance(0.5) {
			offset = -offset
		}
		other = penceAmount(pounds.pence + offset)
		return other.pence > 0 && other.pence <= r.maxPence
	})
	if err != nil {
		return nil, err
	}

	shown := problemgen.Shuffle(rng, []string{pounds.display, pence.display, other.display})
	text := "Which TWO amounts are equal? " + strings.Join(shown, ", ")
	answer := pounds.display + " and " + pence.display
	options := append(problemgen.Shuffle(rng, []string{
		answer,
		pounds.display + " and " + other.display,
		pence.display + " and " + other.display,
	}), "None are equal")
	return problemgen.MultipleChoice(text, answer, options, "£1 = 100p, so multiply the pounds by 100."), nil
}
