package shapes

import (
	"fmt"

	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

// NewPerimeter returns the M07_Y3_MEAS generator for perimeters of
// rectangles, squares, triangles and regular pentagons and hexagons.
func NewPerimeter() problemgen.OpGenerator {
	return problemgen.OpGenerator{
		ID: PerimeterModuleID,
		Ops: problemgen.Ops{
			"rectangle_perimeter": rectanglePerimeter,
			"square_perimeter":    squarePerimeter,
			"triangle_perimeter":  trianglePerimeter,
			"pentagon_perimeter":  regularPerimeter("pentagon", 5),
			"hexagon_perimeter":   regularPerimeter("hexagon", 6),
		},
	}
}

func rectanglePerimeter(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	d, err := readDims(p, "side", rng)
	if err != nil {
		return nil, err
	}
	if d.hi <= d.lo {
		return nil, problemgen.ErrSamplingExhausted
	}
	length := rng.Int(d.lo+1, d.hi)
	width := rng.Int(d.lo, length-1)
	text := fmt.Sprintf("A rectangle has a length of %d %s and a width of %d %s. What is its perimeter in %s?",
		length, d.unit, width, d.unit, d.unit)
	return problemgen.TextInput(text, float64(2*(length+width)),
		"Add up all four sides: length + width + length + width"), nil
}

func squarePerimeter(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	d, err := readDims(p, "side", rng)
	if err != nil {
		return nil, err
	}
	s := d.draw(rng)
	text := fmt.Sprintf("A square has sides of length %d %s. What is its perimeter in %s?", s, d.unit, d.unit)
	return problemgen.TextInput(text, float64(4*s),
		"A square has 4 equal sides. Multiply the side length by 4"), nil
}

// trianglePerimeter draws three sides satisfying the triangle inequality.
func trianglePerimeter(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	d, err := readDims(p, "side", rng)
	if err != nil {
		return nil, err
	}
	var a, b, c int
	err = problemgen.Retry(func() bool {
		a, b = d.draw(rng), d.draw(rng)
		lo := max(abs(a-b)+1, d.lo)
		hi := min(a+b-1, d.hi)
		if hi < lo {
			return false
		}
		c = rng.Int(lo, hi)
		return true
	})
	if err != nil {
		return nil, err
	}
	text := fmt.Sprintf("A triangle has sides of length %d %s, %d %s, and %d %s. What is its perimeter in %s?",
		a, d.unit, b, d.unit, c, d.unit, d.unit)
	return problemgen.TextInput(text, float64(a+b+c), "Add all three sides together"), nil
}

func regularPerimeter(name string, sides int) problemgen.Op {
	return func(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
		d, err := readDims(p, "side", rng)
		if err != nil {
			return nil, err
		}
		s := d.draw(rng)
		text := fmt.Sprintf("A regular %s (%d-sided shape) has sides of length %d %s. What is its perimeter in %s?",
			name, sides, s, d.unit, d.unit)
		hint := fmt.Sprintf("A %s has %d equal sides. Add them all up", name, sides)
		return problemgen.TextInput(text, float64(sides*s), hint), nil
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
