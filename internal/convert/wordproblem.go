package convert

import (
	"fmt"

	"github.com/abhisek/ks2maths/internal/problemgen"
)

// Exact-conversion story openers. %s is the amount with its unit.
var exactContexts = map[Measure][]string{
	Length: {
		"A rope measures %s.",
		"The distance to the shop is %s.",
		"A garden path is %s long.",
	},
	Mass: {
		"A bag of flour weighs %s.",
		"A parcel has a mass of %s.",
		"A watermelon weighs %s.",
	},
	Capacity: {
		"A bottle holds %s.",
		"A jug contains %s of water.",
		"A bucket has a capacity of %s.",
	},
	Time: {
		"A film lasts %s.",
		"A journey takes %s.",
		"A lesson is %s long.",
		"A football match lasts %s.",
	},
}

// Approximate-conversion story openers for imperial measures.
var approxContexts = map[Measure][]string{
	Length: {
		"A rope in the shop is labelled as %s long.",
		"The height of a door is given as %s.",
		"A recipe book says to roll pastry to %s.",
		"The distance on a road sign shows %s.",
	},
	Mass: {
		"A package weighs %s.",
		"A recipe calls for %s of flour.",
		"A bag of potatoes is labelled %s.",
		"An athlete's weight is %s.",
	},
	Capacity: {
		"A recipe needs %s of milk.",
		"A water bottle holds %s.",
		"A car's petrol tank holds %s.",
		"A jug contains %s of juice.",
	},
}

func amount(v float64, u string) string {
	return problemgen.FormatNumber(v) + " " + unitName(u, v)
}

// wordProblem sets an exact conversion in an everyday context.
func wordProblem(c Conversion, v, ans float64, rng *problemgen.Rand) *problemgen.Question {
	opener := fmt.Sprintf(problemgen.Pick(rng, exactContexts[c.Measure()]), amount(v, c.From))
	text := fmt.Sprintf("%s How many %s is this?", opener, unitName(c.To, ans))
	hint := fmt.Sprintf("Convert %s to %s.", unitName(c.From, v), unitName(c.To, ans))
	return problemgen.TextInput(text, ans, hint)
}
