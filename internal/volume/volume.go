// Package volume generates questions on the volume of cuboids, counting
// unit cubes and relating cubic centimetres to millilitres.
package volume

import (
	"fmt"
	"math"

	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

// Module ids.
const (
	CubesModuleID   = "M08_Y5_MEAS"
	CuboidsModuleID = "M08_Y6_MEAS"
)

type cuboid struct{ l, w, h int }

func (c cuboid) volume() int { return c.l * c.w * c.h }

type bounds struct{ lo, hi int }

func readBounds(p params.Level) (bounds, error) {
	r, err := p.Range("dimension")
	if err != nil {
		return bounds{}, err
	}
	lo, hi := r.IntBounds()
	if hi < lo {
		return bounds{}, problemgen.ErrSamplingExhausted
	}
	return bounds{lo, hi}, nil
}

func (b bounds) draw(rng *problemgen.Rand) int { return rng.Int(b.lo, b.hi) }

func (b bounds) cuboid(rng *problemgen.Rand) cuboid {
	return cuboid{b.draw(rng), b.draw(rng), b.draw(rng)}
}

// scaled shrinks the bounds by f, keeping at least 1.
func (b bounds) scaled(f float64) bounds {
	lo := max(1, int(math.Round(float64(b.lo)*f)))
	hi := max(lo, int(math.Round(float64(b.hi)*f)))
	return bounds{lo, hi}
}

// distinctPair draws two cuboids whose volumes differ by at least gap.
func distinctPair(b bounds, gap int, rng *problemgen.Rand) (cuboid, cuboid, error) {
	var a, c cuboid
	err := problemgen.Retry(func() bool {
		a, c = b.cuboid(rng), b.cuboid(rng)
		return abs(a.volume()-c.volume()) >= gap
	})
	return a, c, err
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func units(p params.Level, rng *problemgen.Rand) (string, error) {
	if len(p.Units) == 0 {
		return "", &params.MissingParamError{Module: p.Module(), Level: p.Number(), Name: "units"}
	}
	return problemgen.Pick(rng, p.Units), nil
}

// comparison asks which of two named cuboids is larger, or by how much.
func comparison(setup, nameA, nameB string, a, b cuboid, unit string, rng *problemgen.Rand) *problemgen.Question {
	va, vb := a.volume(), b.volume()
	if rng.Chance(0.5) {
		answer := "They are equal"
		switch {
		case va > vb:
			answer = nameA
		case vb > va:
			answer = nameB
		}
		return problemgen.MultipleChoice(setup+" Which has the greater volume?", answer,
			[]string{nameA, nameB, "They are equal"},
			"Calculate the volume of each using length × width × height")
	}
	text := fmt.Sprintf("%s What is the difference in their volumes (in %s³)?", setup, unit)
	return problemgen.TextInput(text, float64(abs(va-vb)),
		"Calculate both volumes, then subtract the smaller from the larger")
}

func dims(c cuboid, unit string) string {
	return fmt.Sprintf("%d %s × %d %s × %d %s", c.l, unit, c.w, unit, c.h, unit)
}
