package volume

import (
	"fmt"

	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

// NewCuboids returns the M08_Y6_MEAS generator: the V = l × w × h formula,
// missing dimensions, cubic unit conversion and composite solids.
func NewCuboids() problemgen.OpGenerator {
	return problemgen.OpGenerator{
		ID: CuboidsModuleID,
		Ops: problemgen.Ops{
			"calculate_volume":    calculateVolume,
			"cube_volume":         cubeVolume,
			"compare_volumes":     compareCuboids,
			"formula_recognition": formulaRecognition,
			"missing_dimension":   missingDimension,
			"unit_conversion":     unitConversion,
			"composite_volume":    compositeVolume,
		},
	}
}

const formulaHint = "Volume = length × width × height"

func calculateVolume(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	b, err := readBounds(p)
	if err != nil {
		return nil, err
	}
	u, err := units(p, rng)
	if err != nil {
		return nil, err
	}
	c := b.cuboid(rng)
	var text string
	switch rng.Int(0, 2) {
	case 0:
		text = fmt.Sprintf("Calculate the volume of a cuboid with length %d %s, width %d %s and height %d %s.", c.l, u, c.w, u, c.h, u)
	case 1:
		text = fmt.Sprintf("A box measures %s. What is its volume in %s³?", dims(c, u), u)
	default:
		text = fmt.Sprintf("A cuboid is %d %s long, %d %s wide and %d %s tall. Find its volume.", c.l, u, c.w, u, c.h, u)
	}
	return problemgen.TextInput(text, float64(c.volume()), formulaHint), nil
}

func cubeVolume(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	b, err := readBounds(p)
	if err != nil {
		return nil, err
	}
	u, err := units(p, rng)
	if err != nil {
		return nil, err
	}
	s := b.draw(rng)
	text := fmt.Sprintf("A cube has sides of %d %s. What is its volume in %s³?", s, u, u)
	hint := fmt.Sprintf("For a cube, volume = side × side × side = %d × %d × %d", s, s, s)
	return problemgen.TextInput(text, float64(s*s*s), hint), nil
}

func compareCuboids(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	b, err := readBounds(p)
	if err != nil {
		return nil, err
	}
	u, err := units(p, rng)
	if err != nil {
		return nil, err
	}
	x, y, err := distinctPair(b, 20, rng)
	if err != nil {
		return nil, err
	}
	setup := fmt.Sprintf("Cuboid A measures %s. Cuboid B measures %s.", dims(x, u), dims(y, u))
	return comparison(setup, "Cuboid A", "Cuboid B", x, y, u, rng), nil
}

var (
	cuboidShapes = []string{"cuboid", "cube", "rectangular prism"}
	otherShapes  = []string{"cylinder", "sphere", "pyramid", "cone"}
)

func formulaRecognition(_ params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	shape, answer := problemgen.Pick(rng, cuboidShapes), "Yes"
	if rng.Chance(0.5) {
		shape, answer = problemgen.Pick(rng, otherShapes), "No"
	}
	text := fmt.Sprintf("Can the formula V = l × w × h be used to find the volume of a %s?", shape)
	return problemgen.MultipleChoice(text, answer, []string{"Yes", "No"},
		"The formula works for shapes with six rectangular faces"), nil
}

func missingDimension(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	b, err := readBounds(p)
	if err != nil {
		return nil, err
	}
	u, err := units(p, rng)
	if err != nil {
		return nil, err
	}
	c := b.cuboid(rng)
	v := problemgen.FormatGrouped(c.volume())
	var text, hint string
	var answer int
	switch rng.Int(0, 2) {
	case 0:
		text = fmt.Sprintf("A cuboid has a volume of %s %s³. Its length is %d %s and its width is %d %s. What is its height?", v, u, c.l, u, c.w, u)
		hint = fmt.Sprintf("Height = volume ÷ (length × width) = %s ÷ %d", v, c.l*c.w)
		answer = c.h
	case 1:
		text = fmt.Sprintf("A cuboid has a volume of %s %s³. Its length is %d %s and its height is %d %s. What is its width?", v, u, c.l, u, c.h, u)
		hint = fmt.Sprintf("Width = volume ÷ (length × height) = %s ÷ %d", v, c.l*c.h)
		answer = c.w
	default:
		text = fmt.Sprintf("A cuboid has a volume of %s %s³. Its width is %d %s and its height is %d %s. What is its length?", v, u, c.w, u, c.h, u)
		hint = fmt.Sprintf("Length = volume ÷ (width × height) = %s ÷ %d", v, c.w*c.h)
		answer = c.l
	}
	return problemgen.TextInput(text, float64(answer), hint), nil
}

type cubicConversion struct {
	from, to string
	factor   int
	lo, hi   int
}

var cubicConversions = map[string]cubicConversion{
	"mm_to_cm": {from: "mm", to: "cm", factor: 1_000, lo: 2, hi: 10},
	"cm_to_m":  {from: "cm", to: "m", factor: 1_000_000, lo: 2, hi: 20},
	"m_to_km":  {from: "m", to: "km", factor: 1_000_000_000, lo: 2, hi: 10},
}

func unitConversion(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	var known []cubicConversion
	for _, tag := range p.Conversions {
		if c, ok := cubicConversions[tag]; ok {
			known = append(known, c)
		}
	}
	if len(known) == 0 {
		return nil, &params.MissingParamError{Module: p.Module(), Level: p.Number(), Name: "conversions"}
	}
	c := problemgen.Pick(rng, known)
	n := rng.Int(c.lo, c.hi)
	text := fmt.Sprintf("Convert %s %s³ to %s³.", problemgen.FormatGrouped(n*c.factor), c.from, c.to)
	hint := fmt.Sprintf("1 %s³ = %s %s³", c.to, problemgen.FormatGrouped(c.factor), c.from)
	return problemgen.TextInput(text, float64(n), hint), nil
}

func compositeVolume(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	b, err := readBounds(p)
	if err != nil {
		return nil, err
	}
	u := "cm"
	if rng.Chance(0.5) {
		u = "m"
	}
	small := b.scaled(0.6)
	x, y := small.cuboid(rng), small.cuboid(rng)
	text := fmt.Sprintf("A shape is made from two cuboids joined together. One measures %s and the other measures %s. What is the total volume in %s³?",
		dims(x, u), dims(y, u), u)
	hint := "Find the volume of each cuboid, then add them together"
	return problemgen.TextInput(text, float64(x.volume()+y.volume()), hint), nil
}
