package shapes

import (
	"fmt"

	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

// NewArea returns the M07_Y5_MEAS generator for rectangle areas and
// composite shapes.
func NewArea() problemgen.OpGenerator {
	return problemgen.OpGenerator{
		ID: AreaModuleID,
		Ops: problemgen.Ops{
			"rectangle_area":      rectangleArea,
			"square_area":         squareArea,
			"composite_perimeter": compositePerimeter,
			"compare_areas":       compareAreas,
			"composite_area":      compositeArea,
			"estimate_irregular":  estimateIrregular,
		},
	}
}

func rectangleArea(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	d, err := readDims(p, "dimension", rng)
	if err != nil {
		return nil, err
	}
	l, w := d.draw(rng), d.draw(rng)
	text := fmt.Sprintf("A rectangle has a length of %d %s and a width of %d %s. What is its area in %s?",
		l, d.unit, w, d.unit, d.sq())
	return problemgen.TextInput(text, float64(l*w), "Area of rectangle = length × width"), nil
}

func squareArea(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	d, err := readDims(p, "dimension", rng)
	if err != nil {
		return nil, err
	}
	s := d.draw(rng)
	text := fmt.Sprintf("A square has sides of length %d %s. What is its area in %s?", s, d.unit, d.sq())
	return problemgen.TextInput(text, float64(s*s), "Area of square = side × side"), nil
}

func compositePerimeter(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	d, err := readDims(p, "dimension", rng)
	if err != nil {
		return nil, err
	}
	if p.Flag("t_shapes") && rng.Chance(0.5) {
		return tShapePerimeter(d, rng)
	}
	l, err := drawLShape(d, rng)
	if err != nil {
		return nil, err
	}
	u := d.unit
	text := fmt.Sprintf("An L-shaped figure is made by cutting a %d %s by %d %s rectangle from the corner of a %d %s by %d %s rectangle. What is the perimeter of the L-shape in %s?",
		l.cutW, u, l.cutH, u, l.w, u, l.h, u, u)
	return problemgen.TextInput(text, float64(l.perimeter()),
		"The perimeter of the L-shape is the same as the perimeter of the original rectangle"), nil
}

// tShapePerimeter centres a stem under a top bar. The overhang on each side
// is a whole number.
func tShapePerimeter(d dims, rng *problemgen.Rand) (*problemgen.Question, error) {
	var topW, topH, stemW, stemH int
	err := problemgen.Retry(func() bool {
		topW = d.draw(rng)
		topH = rng.Int(d.lo, max(d.lo, d.hi/2))
		stemH = d.draw(rng)
		if topW < 3 {
			return false
		}
		stemW = cut(topW, rng)
		if (topW-stemW)%2 != 0 {
			stemW--
		}
		return stemW >= 1
	})
	if err != nil {
		return nil, err
	}
	u := d.unit
	text := fmt.Sprintf("A T-shaped figure has a top bar of %d %s wide and %d %s tall, and a stem of %d %s wide and %d %s tall (centered below the top bar). What is the perimeter in %s?",
		topW, u, topH, u, stemW, u, stemH, u, u)
	return problemgen.TextInput(text, float64(2*topW+2*topH+2*stemH),
		"Draw the T-shape and label all the outer edges, then add them up"), nil
}

func compareAreas(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	d, err := readDims(p, "dimension", rng)
	if err != nil {
		return nil, err
	}
	var l1, w1, l2, w2 int
	err = problemgen.Retry(func() bool {
		l1, w1, l2, w2 = d.draw(rng), d.draw(rng), d.draw(rng), d.draw(rng)
		return l1*w1 != l2*w2
	})
	if err != nil {
		return nil, err
	}
	larger := "first"
	if l2*w2 > l1*w1 {
		larger = "second"
	}
	u := d.unit
	text := fmt.Sprintf("Rectangle A has dimensions %d %s by %d %s. Rectangle B has dimensions %d %s by %d %s. How much larger is the area of the %s rectangle (in %s)?",
		l1, u, w1, u, l2, u, w2, u, larger, d.sq())
	return problemgen.TextInput(text, float64(abs(l1*w1-l2*w2)),
		"Calculate both areas first, then find the difference"), nil
}

func compositeArea(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	d, err := readDims(p, "dimension", rng)
	if err != nil {
		return nil, err
	}
	l, err := drawLShape(d, rng)
	if err != nil {
		return nil, err
	}
	u := d.unit
	text := fmt.Sprintf("An L-shaped figure is made by cutting a %d %s by %d %s rectangle from the corner of a %d %s by %d %s rectangle. What is the area of the L-shape in %s?",
		l.cutW, u, l.cutH, u, l.w, u, l.h, u, d.sq())
	return problemgen.TextInput(text, float64(l.area()),
		"Calculate the area of the large rectangle, then subtract the area of the cut-out rectangle"), nil
}

// estimateIrregular counts two half squares as one full square. The number
// of half squares is even so the estimate is whole.
func estimateIrregular(_ params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	full := rng.Int(8, 20)
	halves := 2 * rng.Int(1, 4)
	text := fmt.Sprintf("An irregular shape drawn on a square grid covers %d complete squares and approximately %d half-squares. Estimate the area of the shape (counting 2 half-squares as 1 full square).",
		full, halves)
	return problemgen.TextInput(text, float64(full+halves/2),
		"Count the full squares, then count pairs of half-squares as one full square"), nil
}
