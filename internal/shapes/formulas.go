package shapes

import (
	"fmt"

	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

// NewFormulas returns the M07_Y6_MEAS generator for area formulas and the
// relationship between area and perimeter.
func NewFormulas() problemgen.OpGenerator {
	return problemgen.OpGenerator{
		ID: FormulaModuleID,
		Ops: problemgen.Ops{
			"same_area_diff_perimeter": sameAreaDiffPerimeter,
			"same_perimeter_diff_area": samePerimeterDiffArea,
			"parallelogram_area":       parallelogramArea,
			"triangle_area":            triangleArea,
			"formula_recognition":      formulaRecognition,
			"composite_with_triangles": compositeWithTriangles,
		},
	}
}

var formulas = []struct{ shape, formula string }{
	{"rectangle", "length × width"},
	{"square", "side × side"},
	{"parallelogram", "base × height"},
	{"triangle", "(base × height) ÷ 2"},
}

// factorPairs lists (a, n/a) for every divisor a up to the square root of n.
func factorPairs(n int) [][2]int {
	var out [][2]int
	for a := 1; a*a <= n; a++ {
		if n%a == 0 {
			out = append(out, [2]int{a, n / a})
		}
	}
	return out
}

func sameAreaDiffPerimeter(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	d, err := readDims(p, "dimension", rng)
	if err != nil {
		return nil, err
	}
	var area int
	var pairs [][2]int
	err = problemgen.Retry(func() bool {
		area = rng.Int(12, 48)
		pairs = factorPairs(area)
		return len(pairs) >= 2
	})
	if err != nil {
		return nil, err
	}
	a, b := pairs[0], pairs[len(pairs)-1]
	pa, pb := 2*(a[0]+a[1]), 2*(b[0]+b[1])
	u := d.unit
	text := fmt.Sprintf("Two rectangles both have an area of %d %s. Rectangle A has dimensions %d %s by %d %s. Rectangle B has dimensions %d %s by %d %s. What is the difference between their perimeters (in %s)?",
		area, d.sq(), a[0], u, a[1], u, b[0], u, b[1], u, u)
	return problemgen.TextInput(text, float64(abs(pa-pb)),
		"Calculate both perimeters using 2 × (length + width), then find the difference"), nil
}

func samePerimeterDiffArea(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	d, err := readDims(p, "dimension", rng)
	if err != nil {
		return nil, err
	}
	var perim, l1, w1, l2, w2 int
	err = problemgen.Retry(func() bool {
		perim = rng.Int(10, 30) * 2
		half := perim / 2
		l1 = rng.Int(perim/4, perim/3)
		l2 = rng.Int(perim/6, perim/5)
		w1, w2 = half-l1, half-l2
		return l1*w1 != l2*w2
	})
	if err != nil {
		return nil, err
	}
	u := d.unit
	text := fmt.Sprintf("Two rectangles both have a perimeter of %d %s. Rectangle A has dimensions %d %s by %d %s. Rectangle B has dimensions %d %s by %d %s. What is the difference between their areas (in %s)?",
		perim, u, l1, u, w1, u, l2, u, w2, u, d.sq())
	return problemgen.TextInput(text, float64(abs(l1*w1-l2*w2)),
		"Calculate both areas using length × width, then find the difference"), nil
}

func parallelogramArea(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	d, err := readDims(p, "dimension", rng)
	if err != nil {
		return nil, err
	}
	b, h := d.draw(rng), d.draw(rng)
	text := fmt.Sprintf("A parallelogram has a base of %d %s and a perpendicular height of %d %s. What is its area in %s?",
		b, d.unit, h, d.unit, d.sq())
	return problemgen.TextInput(text, float64(b*h), "Area of parallelogram = base × perpendicular height"), nil
}

// triangleArea keeps base × height even so the area is whole.
func triangleArea(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	d, err := readDims(p, "dimension", rng)
	if err != nil {
		return nil, err
	}
	var b, h int
	err = problemgen.Retry(func() bool {
		b, h = d.draw(rng), d.draw(rng)
		return b*h%2 == 0
	})
	if err != nil {
		return nil, err
	}
	text := fmt.Sprintf("A triangle has a base of %d %s and a perpendicular height of %d %s. What is its area in %s?",
		b, d.unit, h, d.unit, d.sq())
	return problemgen.TextInput(text, float64(b*h/2), "Area of triangle = (base × perpendicular height) ÷ 2"), nil
}

func formulaRecognition(_ params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	f := problemgen.Pick(rng, formulas)
	options := make([]string, len(formulas))
	for i, x := range formulas {
		options[i] = x.formula
	}
	text := fmt.Sprintf("Which formula would you use to calculate the area of a %s?", f.shape)
	return problemgen.MultipleChoice(text, f.formula, problemgen.Shuffle(rng, options),
		"Think about the shape's properties and how area is calculated"), nil
}

func compositeWithTriangles(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	d, err := readDims(p, "dimension", rng)
	if err != nil {
		return nil, err
	}
	var l, w, h int
	err = problemgen.Retry(func() bool {
		l, w = d.draw(rng), d.draw(rng)
		h = rng.Int(d.lo, max(d.lo, d.hi/2))
		return h*w%2 == 0
	})
	if err != nil {
		return nil, err
	}
	u := d.unit
	text := fmt.Sprintf("A house-shaped figure is made of a rectangle (%d %s by %d %s) with a triangular roof on top. The triangle has a base of %d %s (same as the rectangle width) and a height of %d %s. What is the total area in %s?",
		l, u, w, u, w, u, h, u, d.sq())
	return problemgen.TextInput(text, float64(l*w+w*h/2),
		"Calculate the area of the rectangle and the triangle separately, then add them together"), nil
}
