package shapes

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

var numRE = regexp.MustCompile(`\d+`)

// numbers returns the integers in s in order of appearance.
func numbers(s string) []int {
	var out []int
	for _, m := range numRE.FindAllString(s, -1) {
		n, _ := strconv.Atoi(m)
		out = append(out, n)
	}
	return out
}

func answer(t *testing.T, q *problemgen.Question) int {
	t.Helper()
	n, err := strconv.Atoi(q.Answer)
	require.NoError(t, err, q.Text)
	return n
}

// each runs every enabled operation of every level many times and hands
// the validated questions to check.
func each(t *testing.T, g problemgen.OpGenerator, check func(level int, p params.Level, q *problemgen.Question)) {
	t.Helper()
	for level := params.MinLevel; level <= params.MaxLevel; level++ {
		p, err := params.Lookup(g.ID, level)
		require.NoError(t, err)
		for _, op := range p.Operations {
			lp := p
			lp.Operations = []string{op}
			rng := problemgen.NewRand(uint64(100*level + len(op)))
			for range 200 {
				q, err := g.Generate(lp, level, rng)
				require.NoError(t, err, "%s level %d %s", g.ID, level, op)
				require.Nil(t, problemgen.RunValidators(q, problemgen.DefaultValidators()), q.Text)
				assert.Equal(t, problemgen.AnswerTypeInteger, q.AnswerType, q.Text)
				check(level, p, q)
			}
		}
	}
}

func inRange(t *testing.T, p params.Level, name string, vs ...int) {
	t.Helper()
	r, err := p.Range(name)
	require.NoError(t, err)
	for _, v := range vs {
		assert.True(t, r.Contains(float64(v)), "%d outside [%v, %v]", v, r.Min, r.Max)
	}
}

func sum(vs []int) int {
	total := 0
	for _, v := range vs {
		total += v
	}
	return total
}

func TestPerimeter(t *testing.T) {
	each(t, NewPerimeter(), func(_ int, p params.Level, q *problemgen.Question) {
		ns := numbers(q.Text)
		got := answer(t, q)
		switch q.Operation {
		case "rectangle_perimeter":
			require.Len(t, ns, 2)
			assert.Greater(t, ns[0], ns[1], "width must be shorter than length")
			inRange(t, p, "side", ns...)
			assert.Equal(t, 2*(ns[0]+ns[1]), got)
		case "square_perimeter":
			assert.Equal(t, 4*ns[0], got)
		case "triangle_perimeter":
			require.Len(t, ns, 3)
			a, b, c := ns[0], ns[1], ns[2]
			inRange(t, p, "side", a, b, c)
			assert.Less(t, c, a+b)
			assert.Less(t, a, b+c)
			assert.Less(t, b, a+c)
			assert.Equal(t, a+b+c, got)
		case "pentagon_perimeter":
			// "(5-sided shape)" precedes the side length.
			assert.Equal(t, 5*ns[1], got)
		case "hexagon_perimeter":
			assert.Equal(t, 6*ns[1], got)
		}
	})
}

func TestRectilinear(t *testing.T) {
	each(t, NewRectilinear(), func(level int, p params.Level, q *problemgen.Question) {
		ns := numbers(q.Text)
		got := answer(t, q)
		switch q.Operation {
		case "rectilinear_perimeter":
			if p.Flag("show_all_sides") {
				require.Len(t, ns, 6)
				assert.Equal(t, sum(ns), got)
				assert.Equal(t, 2*(ns[0]+ns[1]), got)
				for _, n := range ns {
					assert.Positive(t, n, q.Text)
				}
			} else {
				assert.Equal(t, 2*(ns[0]+ns[1]), got)
			}
		case "count_squares":
			rows := strings.Count(q.Text, "\n│")
			cells := strings.Count(q.Text, "│")
			assert.Equal(t, cells-rows, got, q.Text)
			assert.LessOrEqual(t, len([]rune(q.Text)), problemgen.MaxTextLength)
		case "rectilinear_missing_sides":
			perim, known := ns[0], ns[1]
			assert.Equal(t, perim, 2*(known+got))
		case "complex_rectilinear":
			w, h, cw, ch := ns[0], ns[1], ns[2], ns[3]
			assert.Less(t, cw, w)
			assert.Less(t, ch, h)
			assert.Equal(t, 2*(w+h), got)
		}
	})
}

func TestGrid(t *testing.T) {
	want := "┌───┬───┐\n" +
		"│   │   │\n" +
		"├───┼───┤\n" +
		"│   │   │\n" +
		"└───┴───┘\n"
	assert.Equal(t, want, Grid(2, 2, 3))
}

func TestArea(t *testing.T) {
	each(t, NewArea(), func(_ int, p params.Level, q *problemgen.Question) {
		ns := numbers(q.Text)
		got := answer(t, q)
		switch q.Operation {
		case "rectangle_area":
			inRange(t, p, "dimension", ns[0], ns[1])
			assert.Equal(t, ns[0]*ns[1], got)
		case "square_area":
			assert.Equal(t, ns[0]*ns[0], got)
		case "composite_perimeter":
			if strings.HasPrefix(q.Text, "A T-shaped") {
				topW, topH, stemW, stemH := ns[0], ns[1], ns[2], ns[3]
				assert.Less(t, stemW, topW)
				assert.Zero(t, (topW-stemW)%2, q.Text)
				assert.Equal(t, 2*topW+2*topH+2*stemH, got)
			} else {
				cw, ch, w, h := ns[0], ns[1], ns[2], ns[3]
				assert.Less(t, cw, w)
				assert.Less(t, ch, h)
				assert.Equal(t, 2*(w+h), got)
			}
		case "compare_areas":
			a, b := ns[0]*ns[1], ns[2]*ns[3]
			require.NotEqual(t, a, b)
			if a > b {
				assert.Contains(t, q.Text, "the first rectangle")
			} else {
				assert.Contains(t, q.Text, "the second rectangle")
			}
			assert.Equal(t, abs(a-b), got)
		case "composite_area":
			cw, ch, w, h := ns[0], ns[1], ns[2], ns[3]
			assert.Equal(t, w*h-cw*ch, got)
			assert.Positive(t, got)
		case "estimate_irregular":
			full, halves := ns[0], ns[1]
			assert.Zero(t, halves%2)
			assert.Equal(t, full+halves/2, got)
		}
	})
}

func TestFormulas(t *testing.T) {
	g := NewFormulas()
	for level := params.MinLevel; level <= params.MaxLevel; level++ {
		p, err := params.Lookup(FormulaModuleID, level)
		require.NoError(t, err)
		rng := problemgen.NewRand(uint64(level))
		for range 300 {
			q, err := g.Generate(p, level, rng)
			require.NoError(t, err)
			require.Nil(t, problemgen.RunValidators(q, problemgen.DefaultValidators()), q.Text)

			if q.Operation == "formula_recognition" {
				assert.Len(t, q.Choices, 4)
				continue
			}
			ns := numbers(q.Text)
			got := answer(t, q)
			switch q.Operation {
			case "same_area_diff_perimeter":
				area := ns[0]
				assert.Equal(t, area, ns[1]*ns[2])
				assert.Equal(t, area, ns[3]*ns[4])
				assert.Equal(t, abs(2*(ns[1]+ns[2])-2*(ns[3]+ns[4])), got)
			case "same_perimeter_diff_area":
				perim := ns[0]
				assert.Equal(t, perim, 2*(ns[1]+ns[2]))
				assert.Equal(t, perim, 2*(ns[3]+ns[4]))
				assert.Equal(t, abs(ns[1]*ns[2]-ns[3]*ns[4]), got)
				assert.Positive(t, got)
			case "parallelogram_area":
				assert.Equal(t, ns[0]*ns[1], got)
			case "triangle_area":
				assert.Zero(t, ns[0]*ns[1]%2)
				assert.Equal(t, ns[0]*ns[1]/2, got)
			case "composite_with_triangles":
				l, w, h := ns[0], ns[1], ns[3]
				assert.Equal(t, l*w+w*h/2, got)
			}
		}
	}
}

func TestFactorPairs(t *testing.T) {
	assert.Equal(t, [][2]int{{1, 24}, {2, 12}, {3, 8}, {4, 6}}, factorPairs(24))
	assert.Len(t, factorPairs(13), 1)
}

func TestPerimeter_OperationTags(t *testing.T) {
	assert.Equal(t, []string{
		"hexagon_perimeter", "pentagon_perimeter", "rectangle_perimeter",
		"square_perimeter", "triangle_perimeter",
	}, NewPerimeter().Operations())
}
