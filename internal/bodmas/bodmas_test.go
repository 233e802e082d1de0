package bodmas

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ks2maths/internal/expr"
	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

func TestGenerate_AllOperations(t *testing.T) {
	g := New()
	for level := params.MinLevel; level <= params.MaxLevel; level++ {
		p, err := params.Lookup(ModuleID, level)
		require.NoError(t, err)
		n, err := readNumbers(p)
		require.NoError(t, err)

		for _, op := range p.Operations {
			lp := p
			lp.Operations = []string{op}
			rng := problemgen.NewRand(uint64(level*31 + len(op)))
			for range 200 {
				q, err := g.Generate(lp, level, rng)
				require.NoError(t, err, "level %d %s", level, op)
				require.Nil(t, problemgen.RunValidators(q, problemgen.DefaultValidators()), q.Text)
				assert.Equal(t, op, q.Operation)

				src, ok := strings.CutPrefix(q.Text, calculatePrefix)
				if !ok {
					assert.Equal(t, problemgen.FormatMultipleChoice, q.Format, q.Text)
					continue
				}
				v, err := strconv.ParseInt(q.Answer, 10, 64)
				require.NoError(t, err)
				assert.True(t, n.allows(v), "%s = %d outside bounds", src, v)

				if n.choice {
					require.Len(t, q.Choices, 4, q.Text)
					for _, c := range q.Choices {
						cv, err := strconv.ParseInt(c, 10, 64)
						require.NoError(t, err)
						if c != q.Answer {
							assert.Positive(t, cv, q.Text)
						}
					}
				} else {
					assert.Equal(t, problemgen.FormatTextInput, q.Format)
				}
			}
		}
	}
}

func TestDistractors(t *testing.T) {
	node, err := expr.Parse("3 + 4 × 2")
	require.NoError(t, err)
	got := distractors(11, node, nil, 3, problemgen.NewRand(1))
	require.Len(t, got, 3)
	assert.Equal(t, int64(14), got[0], "left to right comes first")
	for _, d := range got {
		assert.NotEqual(t, int64(11), d)
		assert.Positive(t, d)
	}
}

func TestDistractors_SmallAnswer(t *testing.T) {
	node, err := expr.Parse("6 ÷ 2 - 2")
	require.NoError(t, err)
	got := distractors(1, node, []int64{0, -4}, 3, problemgen.NewRand(2))
	require.Len(t, got, 3)
	seen := map[int64]bool{}
	for _, d := range got {
		assert.Positive(t, d)
		assert.NotEqual(t, int64(1), d)
		assert.False(t, seen[d])
		seen[d] = true
	}
}

func TestParenthesesComparison(t *testing.T) {
	p, err := params.Lookup(ModuleID, 1)
	require.NoError(t, err)
	rng := problemgen.NewRand(3)
	for range 50 {
		q, err := parenthesesComparison(p, 1, rng)
		require.NoError(t, err)
		// With a multiplier of at least 2 the bracketed form is always larger.
		assert.True(t, strings.HasPrefix(q.Answer, "("), q.Answer)
		assert.Contains(t, q.Choices, "They are equal")
	}
}

func TestMissingParentheses(t *testing.T) {
	p, err := params.Lookup(ModuleID, 3)
	require.NoError(t, err)
	rng := problemgen.NewRand(4)
	for range 50 {
		q, err := missingParentheses(p, 3, rng)
		require.NoError(t, err)
		target, err := strconv.ParseInt(strings.TrimSuffix(strings.TrimPrefix(q.Text, "Which expression equals "), "?"), 10, 64)
		require.NoError(t, err)
		matches := 0
		for _, c := range q.Choices {
			node, err := expr.Parse(c)
			require.NoError(t, err)
			v, err := expr.Eval(node)
			require.NoError(t, err)
			if v == target {
				matches++
				assert.Equal(t, q.Answer, c)
			}
		}
		assert.Equal(t, 1, matches, q.Text)
	}
}

func TestOrderIdentification(t *testing.T) {
	p, err := params.Lookup(ModuleID, 1)
	require.NoError(t, err)
	rng := problemgen.NewRand(5)
	for range 50 {
		q, err := orderIdentification(p, 1, rng)
		require.NoError(t, err)
		assert.ElementsMatch(t, operationNames, q.Choices)
		if strings.Contains(q.Text, "(") {
			assert.Equal(t, "addition", q.Answer)
		} else {
			assert.Contains(t, []string{"multiplication", "division"}, q.Answer)
		}
	}
}

func TestErrorSpotting(t *testing.T) {
	p, err := params.Lookup(ModuleID, 4)
	require.NoError(t, err)
	q, err := errorSpotting(p, 4, problemgen.NewRand(6))
	require.NoError(t, err)
	assert.Equal(t, "multiplication must be done before addition", q.Answer)
	assert.Len(t, q.Choices, 4)
	assert.True(t, strings.HasPrefix(q.Hint, "Using BIDMAS correctly: "))
}
