package arrivalTool

import (
	"errors"
	"math"
	"testing"

	"github.com/aclements/go-moremath/stats"
)

func TestClampCount(t *testing.T) {
	cases := []struct {
		draw float64
		want int
	}{
		{-1.3, 0},
		{-0.4, 0},
		{0.49, 0},
		{2.5, 2},
		{3.5, 4},
		{7.2, 7},
		{math.NaN(), 0},
		{1e20, math.MaxInt},
		{math.Inf(1), math.MaxInt},
	}
	for _, c := range cases {
		if got := clampCount(c.draw); got != c.want {
			t.Fatalf("clampCount(%v) = %d, want %d", c.draw, got, c.want)
		}
	}
}

func TestSampleHourCount_ZeroStdReturnsMean(t *testing.T) {
	src := NewSource(1)
	for i := 0; i < 20; i++ {
		if got := SampleHourCount(7, 0, src); got != 7 {
			t.Fatalf("draw %d: got %d, want 7", i, got)
		}
	}
}

// The normal tail below zero is folded onto zero rather than renormalized.
func TestSampleHourCount_TruncatedAtZero(t *testing.T) {
	src := NewSource(2)
	for i := 0; i < 200; i++ {
		if got := SampleHourCount(-50, 1, src); got != 0 {
			t.Fatalf("draw %d: got %d, want 0", i, got)
		}
	}

	zeros := 0
	for i := 0; i < 2000; i++ {
		n := SampleHourCount(0, 2, src)
		if n < 0 {
			t.Fatalf("negative count %d", n)
		}
		if n == 0 {
			zeros++
		}
	}
	// about 60% of N(0, 2) rounds to zero or below
	if zeros < 1000 {
		t.Fatalf("expected the lower tail to pile up on zero, got %d zeros in 2000", zeros)
	}
}

func TestSampleHourAcuities_SumsToCount(t *testing.T) {
	vectors := [][]float64{
		{2.0 / 15, 3.0 / 15, 4.0 / 15, 3.0 / 15, 2.0 / 15, 1.0 / 15},
		{1, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 1},
		{0.25, 0, 0.25, 0.25, 0.25, 0},
		{0.1333, 0.2, 0.2667, 0.2, 0.1333, 0.0667},
	}
	for _, method := range []AcuityMethod{Categorical, Multinomial} {
		src := NewSource(3)
		for _, p := range vectors {
			for count := 0; count <= 60; count++ {
				counts, err := SampleHourAcuities(count, p, method, src)
				if err != nil {
					t.Fatalf("%s count %d p %v: %v", method, count, p, err)
				}
				sum := 0
				for k, n := range counts {
					if n < 0 {
						t.Fatalf("%s: negative count at level %d: %v", method, k+1, counts)
					}
					if p[k] == 0 && n != 0 {
						t.Fatalf("%s: level %d has no mass but got %d patients", method, k+1, n)
					}
					sum += n
				}
				if sum != count {
					t.Fatalf("%s: counts %v sum to %d, want %d", method, counts, sum, count)
				}
			}
		}
	}
}

func TestSampleHourAcuities_MethodsAgreeInExpectation(t *testing.T) {
	const count = 20
	const trials = 4000
	p := []float64{2.0 / 15, 3.0 / 15, 4.0 / 15, 3.0 / 15, 2.0 / 15, 1.0 / 15}

	for _, method := range []AcuityMethod{Categorical, Multinomial} {
		src := NewSource(4)
		var levels [lvls]stats.Sample
		for i := 0; i < trials; i++ {
			counts, err := SampleHourAcuities(count, p, method, src)
			if err != nil {
				t.Fatalf("%s: %v", method, err)
			}
			for k, n := range counts {
				levels[k].Xs = append(levels[k].Xs, float64(n))
			}
		}
		for k := range levels {
			want := count * p[k]
			if got := levels[k].Mean(); math.Abs(got-want) > 0.15 {
				t.Fatalf("%s level %d: mean %.3f, want %.3f", method, k+1, got, want)
			}
		}
	}
}

func TestSampleHourAcuities_SeededDrawsRepeat(t *testing.T) {
	p := []float64{0.1, 0.2, 0.3, 0.2, 0.1, 0.1}
	for _, method := range []AcuityMethod{Categorical, Multinomial} {
		a, b := NewSource(5), NewSource(5)
		for i := 0; i < 50; i++ {
			x, err := SampleHourAcuities(12, p, method, a)
			if err != nil {
				t.Fatalf("%s: %v", method, err)
			}
			y, err := SampleHourAcuities(12, p, method, b)
			if err != nil {
				t.Fatalf("%s: %v", method, err)
			}
			if x != y {
				t.Fatalf("%s draw %d: %v != %v", method, i, x, y)
			}
		}
	}
}

func TestSampleHourAcuities_InvalidInputs(t *testing.T) {
	good := []float64{0.1, 0.2, 0.3, 0.2, 0.1, 0.1}
	cases := []struct {
		name   string
		count  int
		p      []float64
		method AcuityMethod
		kind   error
	}{
		{"negative count", -1, good, Categorical, ErrInvalidDistribution},
		{"negative proportion", 3, []float64{0.5, -0.1, 0.3, 0.2, 0.1, 0}, Categorical, ErrInvalidDistribution},
		{"short vector", 3, good[:5], Multinomial, ErrInputMismatch},
		{"no mass", 3, make([]float64, lvls), Multinomial, ErrInvalidDistribution},
		{"unknown method", 3, good, AcuityMethod(7), ErrInvalidDistribution},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := SampleHourAcuities(c.count, c.p, c.method, NewSource(6))
			if !errors.Is(err, c.kind) {
				t.Fatalf("expected %v, got %v", c.kind, err)
			}
		})
	}
}

func TestSampleHourAcuities_ZeroCountNeedsNoMass(t *testing.T) {
	counts, err := SampleHourAcuities(0, make([]float64, lvls), Categorical, NewSource(7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts != [lvls]int{} {
		t.Fatalf("expected no patients, got %v", counts)
	}
}
