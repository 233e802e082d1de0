package problemgen

import "math/rand/v2"

// Rand is the random source handed to generators. It is not safe for
// concurrent use; the Engine serializes access.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a deterministic source for the seed. A zero seed draws a
// seed from the runtime's entropy source.
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Int returns a uniform integer in [min, max]. The bounds may be given in
// either order.
func (r *Rand) Int(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return min + r.r.IntN(max-min+1)
}

// Float returns a uniform float in [0, 1).
func (r *Rand) Float() float64 {
	return r.r.Float64()
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Pick returns a uniformly chosen element of xs, or the zero value when xs
// is empty.
func Pick[T any](r *Rand, xs []T) T {
	var zero T
	if len(xs) == 0 {
		return zero
	}
	return xs[r.r.IntN(len(xs))]
}

// Shuffle returns a shuffled copy of xs.
func Shuffle[T any](r *Rand, xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	r.r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
