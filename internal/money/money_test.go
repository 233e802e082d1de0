package money

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ks2maths/internal/params"
	"github.com/abhisek/ks2maths/internal/problemgen"
)

func TestToPence(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"£2.50", 250},
		{"£3", 300},
		{"£0.75", 75},
		{"250p", 250},
		{"1,500p", 1500},
		{" £12.25 ", 1225},
	}
	for _, tc := range tests {
		got, err := ToPence(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ToPence(%q) = %d, %v; want %d", tc.in, got, err, tc.want)
		}
	}
	for _, bad := range []string{"", "2.50", "£x", "p"} {
		if _, err := ToPence(bad); err == nil {
			t.Errorf("ToPence(%q): expected error", bad)
		}
	}
}

func generate(t *testing.T, op string, level int, seed uint64) *problemgen.Question {
	t.Helper()
	p, err := params.Lookup(ModuleID, level)
	require.NoError(t, err)
	p.Operations = []string{op}
	q, err := New().Generate(p, level, problemgen.NewRand(seed))
	require.NoError(t, err)
	require.Nil(t, problemgen.RunValidators(q, problemgen.DefaultValidators()), q.Text)
	return q
}

var amountRE = regexp.MustCompile(`£\d+(?:\.\d\d)?|[\d,]+p`)

func amounts(t *testing.T, text string) []int {
	t.Helper()
	var out []int
	for _, m := range amountRE.FindAllString(text, -1) {
		v, err := ToPence(m)
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestDirectComparison(t *testing.T) {
	for level := 1; level <= 4; level++ {
		for i := range 200 {
			q := generate(t, "direct_comparison", level, uint64(i+1))
			a, err := ToPence(q.Choices[0])
			require.NoError(t, err)
			b, err := ToPence(q.Choices[1])
			require.NoError(t, err)
			require.NotEqual(t, a, b, q.Text)

			want := max(a, b)
			if strings.Contains(q.Text, "less") {
				want = min(a, b)
			}
			got, err := ToPence(q.Answer)
			require.NoError(t, err)
			assert.Equal(t, want, got, q.Text)
		}
	}
}

func TestCompleteStatement(t *testing.T) {
	for level := 1; level <= 4; level++ {
		for i := range 200 {
			q := generate(t, "complete_statement", level, uint64(i+1))
			vs := amounts(t, strings.TrimPrefix(q.Text, "Complete using >, < or =: "))
			require.Len(t, vs, 2, q.Text)
			assert.Equal(t, symbol(vs[0], vs[1]), q.Answer, q.Text)
		}
	}
}

func TestCompleteStatement_Example(t *testing.T) {
	a, _ := ToPence("£2.50")
	b, _ := ToPence("200p")
	assert.Equal(t, ">", symbol(a, b))
}

func TestOrdering(t *testing.T) {
	for level := 1; level <= 4; level++ {
		wantCount := 3
		if level >= 3 {
			wantCount = 4
		}
		for i := range 200 {
			q := generate(t, "ordering", level, uint64(i+1))
			require.Len(t, q.Choices, wantCount)

			var vals []int
			for _, c := range q.Choices {
				v, err := ToPence(c)
				require.NoError(t, err)
				vals = append(vals, v)
			}
			ans, _ := ToPence(q.Answer)
			lo, hi := vals[0], vals[0]
			for _, v := range vals {
				lo, hi = min(lo, v), max(hi, v)
			}
			switch {
			case strings.HasSuffix(q.Text, "FIRST?"):
				assert.Equal(t, lo, ans, q.Text)
			case strings.HasSuffix(q.Text, "LAST?"):
				assert.Equal(t, hi, ans, q.Text)
			default:
				smaller := 0
				for _, v := range vals {
					if v < ans {
						smaller++
					}
				}
				assert.Equal(t, 1, smaller, q.Text)
			}
		}
	}
}

func TestContextProblem(t *testing.T) {
	for level := 3; level <= 4; level++ {
		for i := range 200 {
			q := generate(t, "context_problem", level, uint64(i+1))
			vs := amounts(t, q.Text)
			require.Len(t, vs, 2)
			require.NotEqual(t, vs[0], vs[1])

			first := strings.Fields(q.Text)[0]
			firstMore := vs[0] > vs[1]
			wantFirst := firstMore
			if strings.Contains(q.Text, "less money") {
				wantFirst = !firstMore
			}
			assert.Equal(t, wantFirst, q.Answer == first, q.Text)
		}
	}
}

func TestEquivalence(t *testing.T) {
	p, err := params.Lookup(ModuleID, 4)
	require.NoError(t, err)
	maxPence := int(p.Ranges["pence"].Max)

	for i := range 300 {
		q := generate(t, "equivalence", 4, uint64(i+1))
		require.Len(t, q.Choices, 4)
		assert.Equal(t, "None are equal", q.Choices[3])

		pair := strings.Split(q.Answer, " and ")
		require.Len(t, pair, 2)
		a, err := ToPence(pair[0])
		require.NoError(t, err)
		b, err := ToPence(pair[1])
		require.NoError(t, err)
		assert.Equal(t, a, b, q.Text)

		vs := amounts(t, strings.TrimPrefix(q.Text, "Which TWO amounts are equal? "))
		require.Len(t, vs, 3)
		for _, v := range vs {
			assert.Positive(t, v)
			assert.LessOrEqual(t, v, maxPence, q.Text)
		}
	}
}

func TestPoundsFormatting(t *testing.T) {
	assert.Equal(t, "£2.50", poundsAmount(2, 50).display)
	assert.Equal(t, "£7", poundsAmount(7, 0).display)
	assert.Equal(t, "1,500p", penceAmount(1500).display)
}
