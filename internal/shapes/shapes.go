// Package shapes generates perimeter and area questions for Years 3 to 6:
// regular polygons, rectilinear L and T shapes, composite areas and the
// area formulas for triangles and parallelograms.
package shapes

import (
	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

// Module ids.
const (
	PerimeterModuleID   = "M07_Y3_MEAS"
	RectilinearModuleID = "M07_Y4_MEAS"
	AreaModuleID        = "M07_Y5_MEAS"
	FormulaModuleID     = "M07_Y6_MEAS"
)

// dims holds the level's side range and a drawn unit.
type dims struct {
	lo, hi int
	unit   string
}

func readDims(p params.Level, rangeName string, rng *problemgen.Rand) (dims, error) {
	r, err := p.Range(rangeName)
	if err != nil {
		return dims{}, err
	}
	if len(p.Units) == 0 {
		return dims{}, &params.MissingParamError{Module: p.Module(), Level: p.Number(), Name: "units"}
	}
	lo, hi := r.IntBounds()
	if hi < lo {
		return dims{}, problemgen.ErrSamplingExhausted
	}
	return dims{lo: lo, hi: hi, unit: problemgen.Pick(rng, p.Units)}, nil
}

func (d dims) draw(rng *problemgen.Rand) int { return rng.Int(d.lo, d.hi) }

// sq is the square unit, e.g. cm².
func (d dims) sq() string { return d.unit + "²" }

// lshape is a rectangle with a smaller rectangle cut from one corner.
type lshape struct {
	w, h       int // bounding rectangle
	cutW, cutH int
}

// cut picks a cut between a third and two thirds of side, leaving at least
// one unit on each side.
func cut(side int, rng *problemgen.Rand) int {
	lo := max(1, side/3)
	hi := min(side-1, side*2/3)
	if hi < lo {
		hi = lo
	}
	return rng.Int(lo, hi)
}

func drawLShape(d dims, rng *problemgen.Rand) (lshape, error) {
	var l lshape
	err := problemgen.Retry(func() bool {
		l.w, l.h = d.draw(rng), d.draw(rng)
		return l.w >= 2 && l.h >= 2
	})
	if err != nil {
		return l, err
	}
	l.cutW, l.cutH = cut(l.w, rng), cut(l.h, rng)
	return l, nil
}

// Perimeter of any rectilinear shape equals that of its bounding box.
func (l lshape) perimeter() int { return 2 * (l.w + l.h) }

func (l lshape) area() int { return l.w*l.h - l.cutW*l.cutH }
