package arrivalTool

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// NewSource returns the seeded random source that drives a simulation run
func NewSource(
	seed uint64) rand.Source {

	return rand.NewPCG(seed, seed)
}

// SampleHourCount draws the number of patients arriving in one hour.
//
// The draw comes from a normal distribution and is rounded half to even and
// clamped at zero. The mass below zero is folded onto zero without
// renormalizing, which biases the discretized distribution upward for hours
// with small means.
func SampleHourCount(
	mean, std float64,
	src rand.Source) int {

	// set patient distribution
	dist := distuv.Normal{
		Mu:    mean,
		Sigma: std,
		Src:   src,
	}

	return clampCount(dist.Rand())
}

// SampleHourAcuities spreads count patients over the six acuity levels with
// probabilities p. Level i+1 receives outcome i of the draw, so the expected
// count for level i+1 is count * p[i] / sum(p) under either method.
//
// Categorical draws one level per patient and consumes count draws of random
// state. Multinomial draws the same distribution as a chain of conditional
// binomials and consumes at most five. Seeded output therefore differs
// between methods.
func SampleHourAcuities(
	count int,
	p []float64,
	method AcuityMethod,
	src rand.Source) ([lvls]int, error) {

	var counts [lvls]int

	// check inputs
	if count < 0 {
		return counts, invalidf(-1, "total_arrivals", "negative patient count %d", count)
	}
	if len(p) != lvls {
		return counts, mismatchf(-1, "", "expected %d acuity proportions, got %d", lvls, len(p))
	}
	for k, v := range p {
		if !finiteNonNegative(v) {
			return counts, invalidf(-1, levelName("pa", k), "proportion %g is not a non-negative number", v)
		}
	}
	if count == 0 {
		return counts, nil
	}
	sum := floats.Sum(p)
	if sum == 0 {
		return counts, invalidf(-1, "", "no acuity proportions for %d patients", count)
	}

	switch method {
	case Categorical:

		// set acuity distribution
		dist := distuv.NewCategorical(p, src)

		// draw one acuity level per patient
		for n := 0; n < count; n++ {
			counts[int(dist.Rand())]++
		}

	case Multinomial:
		counts = multinomial(count, p, sum, src)

	default:
		return counts, invalidf(-1, "", "unknown acuity method %d", int(method))
	}

	return counts, nil
}

// multinomial draws count patients over p as successive binomials, each level
// conditioned on the patients left after the levels before it
func multinomial(
	count int,
	p []float64,
	sum float64,
	src rand.Source) [lvls]int {

	var counts [lvls]int

	// the last level with any mass takes whatever remains
	last := lvls - 1
	for last > 0 && p[last] == 0 {
		last--
	}

	remaining := count
	mass := sum
	for k := 0; k < last && remaining > 0; k++ {
		if p[k] == 0 {
			continue
		}
		x := remaining
		if q := p[k] / mass; q < 1 {
			dist := distuv.Binomial{
				N:   float64(remaining),
				P:   q,
				Src: src,
			}
			x = int(dist.Rand())
		}
		counts[k] = x
		remaining -= x
		mass -= p[k]
	}
	counts[last] += remaining

	return counts
}

// clampCount rounds a drawn arrival count half to even and floors it at zero.
// Draws too large for an int are capped at math.MaxInt.
func clampCount(
	draw float64) int {

	n := math.RoundToEven(draw)
	if n < 0 || math.IsNaN(n) {
		return 0
	}
	if n >= float64(math.MaxInt) {
		return math.MaxInt
	}

	return int(n)
}
