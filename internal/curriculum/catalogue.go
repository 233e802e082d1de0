package curriculum

import (
	"fmt"
	"slices"
	"sort"

	"github.com/abhisek/ks2maths/internal/bodmas"
	"github.com/abhisek/ks2maths/internal/convert"
	"github.com/abhisek/ks2maths/internal/money"
	"github.com/abhisek/ks2maths/internal/shapes"
	"github.com/abhisek/ks2maths/internal/volume"
)

var topics = []Topic{
	{
		ID:          money.ModuleID,
		Name:        "Comparing money",
		Description: "Compare, order and convert amounts in pounds and pence",
		Year:        4,
		Strand:      StrandMeasurement,
		Substrand:   "money",
	},
	{
		ID:          convert.Year4ModuleID,
		Name:        "Units and time",
		Description: "Convert between metric units and between units of time",
		Year:        4,
		Strand:      StrandMeasurement,
		Substrand:   "conversion",
	},
	{
		ID:            convert.MetricModuleID,
		Name:          "Metric conversions",
		Description:   "Convert between kilometres, metres, grams, litres and more, including decimals",
		Year:          5,
		Strand:        StrandMeasurement,
		Substrand:     "conversion",
		Prerequisites: []string{convert.Year4ModuleID},
	},
	{
		ID:            convert.ImperialModuleID,
		Name:          "Imperial units",
		Description:   "Approximate equivalences between metric units and inches, pounds and pints",
		Year:          5,
		Strand:        StrandMeasurement,
		Substrand:     "conversion",
		Prerequisites: []string{convert.MetricModuleID},
	},
	{
		ID:          shapes.PerimeterModuleID,
		Name:        "Perimeter",
		Description: "Measure the perimeter of simple 2-D shapes",
		Year:        3,
		Strand:      StrandMeasurement,
		Substrand:   "perimeter-area",
	},
	{
		ID:            shapes.RectilinearModuleID,
		Name:          "Rectilinear shapes",
		Description:   "Perimeter of rectilinear figures and area by counting squares",
		Year:          4,
		Strand:        StrandMeasurement,
		Substrand:     "perimeter-area",
		Prerequisites: []string{shapes.PerimeterModuleID},
	},
	{
		ID:            shapes.AreaModuleID,
		Name:          "Area",
		Description:   "Area of rectangles and composite rectilinear shapes, and estimating irregular areas",
		Year:          5,
		Strand:        StrandMeasurement,
		Substrand:     "perimeter-area",
		Prerequisites: []string{shapes.RectilinearModuleID},
	},
	{
		ID:            shapes.FormulaModuleID,
		Name:          "Area formulae",
		Description:   "Area of parallelograms and triangles, and shapes with the same area",
		Year:          6,
		Strand:        StrandMeasurement,
		Substrand:     "perimeter-area",
		Prerequisites: []string{shapes.AreaModuleID},
	},
	{
		ID:            volume.CubesModuleID,
		Name:          "Volume and capacity",
		Description:   "Estimate volume by counting cubes and estimate capacity",
		Year:          5,
		Strand:        StrandMeasurement,
		Substrand:     "volume",
		Prerequisites: []string{shapes.AreaModuleID},
	},
	{
		ID:            volume.CuboidsModuleID,
		Name:          "Volume of cuboids",
		Description:   "Use the formula for the volume of a cuboid and convert cubic units",
		Year:          6,
		Strand:        StrandMeasurement,
		Substrand:     "volume",
		Prerequisites: []string{volume.CubesModuleID},
	},
	{
		ID:          bodmas.ModuleID,
		Name:        "Order of operations",
		Description: "Use BIDMAS to carry out calculations with the four operations and brackets",
		Year:        6,
		Strand:      StrandCalculation,
		Substrand:   "order-of-operations",
	},
}

// catalogue holds the topics with precomputed indices.
type catalogue struct {
	topics   []Topic
	byID     map[string]*Topic
	byYear   map[int][]Topic
	byStrand map[Strand][]Topic
}

var c = build(topics)

func build(ts []Topic) *catalogue {
	sorted := slices.Clone(ts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Year != sorted[j].Year {
			return sorted[i].Year < sorted[j].Year
		}
		return sorted[i].ID < sorted[j].ID
	})

	cat := &catalogue{
		topics:   sorted,
		byID:     make(map[string]*Topic, len(sorted)),
		byYear:   make(map[int][]Topic),
		byStrand: make(map[Strand][]Topic),
	}
	for i := range cat.topics {
		t := &cat.topics[i]
		cat.byID[t.ID] = t
		cat.byYear[t.Year] = append(cat.byYear[t.Year], *t)
		cat.byStrand[t.Strand] = append(cat.byStrand[t.Strand], *t)
	}
	return cat
}

// GetTopic returns a topic by module id.
func GetTopic(id string) (Topic, error) {
	t, ok := c.byID[id]
	if !ok {
		return Topic{}, fmt.Errorf("topic not found: %q", id)
	}
	return *t, nil
}

// AllTopics returns every topic, ordered by year then id.
func AllTopics() []Topic {
	return slices.Clone(c.topics)
}

// ByYear returns the topics for a school year, ordered by id.
func ByYear(year int) []Topic {
	return slices.Clone(c.byYear[year])
}

// ByStrand returns the topics in a strand, ordered by year then id.
func ByStrand(strand Strand) []Topic {
	return slices.Clone(c.byStrand[strand])
}

// Prerequisites returns the direct prerequisite topics for a module id.
func Prerequisites(id string) []Topic {
	t, ok := c.byID[id]
	if !ok {
		return nil
	}
	out := make([]Topic, 0, len(t.Prerequisites))
	for _, pid := range t.Prerequisites {
		if p, ok := c.byID[pid]; ok {
			out = append(out, *p)
		}
	}
	return out
}

// Years returns the school years that have topics, ascending.
func Years() []int {
	years := make([]int, 0, len(c.byYear))
	for y := range c.byYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
