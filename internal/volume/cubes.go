package volume

import (
	"fmt"
	"math"
	"slices"

	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

// NewCubes returns the M08_Y5_MEAS generator: counting unit cubes,
// estimating capacity and converting between cm³ and ml.
func NewCubes() problemgen.OpGenerator {
	return problemgen.OpGenerator{
		ID: CubesModuleID,
		Ops: problemgen.Ops{
			"count_unit_cubes":        countUnitCubes,
			"estimate_capacity":       estimateCapacity,
			"convert_volume_capacity": convertVolumeCapacity,
			"compare_volumes":         compareBoxes,
		},
	}
}

func countUnitCubes(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	b, err := readBounds(p)
	if err != nil {
		return nil, err
	}
	c := b.cuboid(rng)
	var text string
	switch rng.Int(0, 2) {
	case 0:
		text = fmt.Sprintf("A cuboid is built from unit cubes. It is %d cubes long, %d cubes wide, and %d cubes tall. How many unit cubes were used?", c.l, c.w, c.h)
	case 1:
		text = fmt.Sprintf("A box measures %d cm by %d cm by %d cm. How many 1 cm³ cubes would fit inside it?", c.l, c.w, c.h)
	default:
		text = fmt.Sprintf("A rectangular prism is %d cm long, %d cm wide, and %d cm high. Estimate how many cubic centimetres (cm³) of space it contains.", c.l, c.w, c.h)
	}
	hint := fmt.Sprintf("Multiply length × width × height: %d × %d × %d", c.l, c.w, c.h)
	return problemgen.TextInput(text, float64(c.volume()), hint), nil
}

// FormatCapacity renders a capacity in ml, or in litres when litres is set
// and the amount is at least 1000 ml.
func FormatCapacity(ml int, litres bool) string {
	if !litres || ml < 1000 {
		return fmt.Sprintf("%d ml", ml)
	}
	l := float64(ml) / 1000
	if l == math.Trunc(l) {
		return fmt.Sprintf("%d %s", int(l), problemgen.Plural("litre", l))
	}
	return fmt.Sprintf("%s litres", problemgen.FormatNumber(problemgen.Round(l, 1)))
}

func estimateCapacity(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	if len(p.Objects) == 0 {
		return nil, &params.MissingParamError{Module: p.Module(), Level: p.Number(), Name: "objects"}
	}
	obj := problemgen.Pick(rng, p.Objects)
	litres := p.Flag("use_litres") && obj.Capacity >= 1000

	values := []int{obj.Capacity, obj.Capacity / 2, obj.Capacity * 3 / 2, obj.Capacity * 2}
	slices.Sort(values)
	options := make([]string, len(values))
	for i, v := range values {
		options[i] = FormatCapacity(v, litres)
	}
	text := fmt.Sprintf("Estimate the capacity of a typical %s.", obj.Name)
	return problemgen.MultipleChoice(text, FormatCapacity(obj.Capacity, litres), options,
		"Think about how many cups of water it would hold. A cup holds about 250 ml."), nil
}

func convertVolumeCapacity(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	b, err := readBounds(p)
	if err != nil {
		return nil, err
	}
	d := b.draw(rng)
	v := d * d * rng.Int(2, 4)

	if p.Flag("use_litres") && v >= 100 && rng.Chance(0.5) {
		ml := v * 10
		if ml >= 1000 && ml%1000 == 0 {
			l := ml / 1000
			text := fmt.Sprintf("A container holds %d %s. How many cm³ is this?", l, problemgen.Plural("litre", float64(l)))
			return problemgen.TextInput(text, float64(ml), "1 litre = 1000 ml, and 1 ml = 1 cm³"), nil
		}
		text := fmt.Sprintf("A tank holds %s ml. How many cm³ is this?", problemgen.FormatGrouped(ml))
		return problemgen.TextInput(text, float64(ml), "1 ml = 1 cm³"), nil
	}
	if rng.Chance(0.5) {
		text := fmt.Sprintf("A container holds %d cm³. How many millilitres (ml) is this?", v)
		return problemgen.TextInput(text, float64(v), "1 cm³ = 1 ml, so the number stays the same"), nil
	}
	text := fmt.Sprintf("A box has a volume of %d cubic centimetres. What is this in millilitres?", v)
	return problemgen.TextInput(text, float64(v), "Remember: 1 cm³ = 1 ml"), nil
}

func compareBoxes(p params.Level, _ int, rng *problemgen.Rand) (*problemgen.Question, error) {
	b, err := readBounds(p)
	if err != nil {
		return nil, err
	}
	x, y, err := distinctPair(b, 10, rng)
	if err != nil {
		return nil, err
	}
	setup := fmt.Sprintf("Box A measures %d cm by %d cm by %d cm. Box B measures %d cm by %d cm by %d cm.",
		x.l, x.w, x.h, y.l, y.w, y.h)
	return comparison(setup, "Box A", "Box B", x, y, "cm", rng), nil
}
