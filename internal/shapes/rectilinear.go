package shapes

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

// NewRectilinear returns the M07_Y4_MEAS generator for rectilinear
// perimeters and counting squares.
func NewRectilinear() problemgen.OpGenerator {
	return problemgen.OpGenerator{
		ID: RectilinearModuleID,
		Ops: problemgen.Ops{
			"rectilinear_perimeter":     rectilinearPerimeter,
			"count_squares":             countSquares,
			"rectilinear_missing_sides": missingSides,
			"complex_rectilinear":       complexRectilinear,
		},
	}
}

func rectilinearPerimeter(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	d, err := readDims(p, "side", rng)
	if err != nil {
		return nil, err
	}
	l, err := drawLShape(d, rng)
	if err != nil {
		return nil, err
	}
	u := d.unit
	if p.Flag("show_all_sides") {
		text := fmt.Sprintf("An L-shaped figure has the following sides: %d %s, %d %s, %d %s, %d %s, %d %s, and %d %s. What is its perimeter in %s?",
			l.w, u, l.h, u, l.cutW, u, l.cutH, u, l.w-l.cutW, u, l.h-l.cutH, u, u)
		return problemgen.TextInput(text, float64(l.perimeter()), "Add all six sides together"), nil
	}
	text := fmt.Sprintf("An L-shaped figure has these visible sides: %d %s (bottom), %d %s (right), and %d %s (top cut). The shape is rectilinear (all angles are right angles). What is its perimeter in %s?",
		l.w, u, l.h, u, l.cutW, u, u)
	return problemgen.TextInput(text, float64(l.perimeter()),
		"In a rectilinear shape, opposite sides add up to the same total. Work out the missing sides first"), nil
}

func countSquares(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	maxGrid := int(p.NumOr("max_grid", 4))
	if maxGrid < 2 {
		return nil, &params.MissingParamError{Module: p.Module(), Level: p.Number(), Name: "max_grid"}
	}
	w, h := rng.Int(2, maxGrid), rng.Int(2, maxGrid)

	var text string
	for _, cell := range []int{3, 2, 1} {
		text = "Count the number of squares in this rectangle:\n\n" + Grid(w, h, cell) + "\nHow many squares are there?"
		if utf8.RuneCountInString(text) <= problemgen.MaxTextLength {
			break
		}
	}
	return problemgen.TextInput(text, float64(w*h),
		"Count the squares row by row, or multiply width by height"), nil
}

// Grid draws a w by h grid of squares with box-drawing characters. Each
// square is cell characters wide.
func Grid(w, h, cell int) string {
	seg := strings.Repeat("─", cell)
	line := func(left, mid, right string) string {
		return left + strings.Repeat(seg+mid, w-1) + seg + right + "\n"
	}
	row := "│" + strings.Repeat(strings.Repeat(" ", cell)+"│", w) + "\n"

	var b strings.Builder
	b.WriteString(line("┌", "┬", "┐"))
	for i := range h {
		b.WriteString(row)
		if i < h-1 {
			b.WriteString(line("├", "┼", "┤"))
		}
	}
	b.WriteString(line("└", "┴", "┘"))
	return b.String()
}

func missingSides(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	d, err := readDims(p, "side", rng)
	if err != nil {
		return nil, err
	}
	length := d.draw(rng)
	width := rng.Int(d.lo, length)
	perim := 2 * (length + width)
	u := d.unit

	if rng.Chance(0.5) {
		text := fmt.Sprintf("A rectangle has a perimeter of %d %s and a width of %d %s. What is its length in %s?",
			perim, u, width, u, u)
		return problemgen.TextInput(text, float64(length),
			"Perimeter = 2 × (length + width). Use this to find the missing length"), nil
	}
	text := fmt.Sprintf("A rectangle has a perimeter of %d %s and a length of %d %s. What is its width in %s?",
		perim, u, length, u, u)
	return problemgen.TextInput(text, float64(width),
		"Perimeter = 2 × (length + width). Use this to find the missing width"), nil
}

func complexRectilinear(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	d, err := readDims(p, "side", rng)
	if err != nil {
		return nil, err
	}
	l, err := drawLShape(d, rng)
	if err != nil {
		return nil, err
	}
	u := d.unit
	text := fmt.Sprintf("An L-shaped figure fits inside a %d %s by %d %s rectangle. A %d %s by %d %s rectangle has been cut from one corner. What is the perimeter of the L-shape in %s?",
		l.w, u, l.h, u, l.cutW, u, l.cutH, u, u)
	return problemgen.TextInput(text, float64(l.perimeter()),
		"The perimeter of an L-shape equals the perimeter of the original rectangle"), nil
}
