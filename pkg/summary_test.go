package arrivalTool

import (
	"errors"
	"math"
	"testing"
)

func TestSummarizeDays_ConstantArrivals(t *testing.T) {
	hours := []int{0, 1, 2}
	ms := NewArrivalMeanStd(hours)
	ap := NewAcuityProportion(hours)
	for i := range hours {
		ms.Values.SetRow(i, []float64{3, 0})
		ap.Proportions.SetRow(i, []float64{0, 0.5, 0.5, 0, 0, 0})
	}

	days, err := SimulateDays(10, ms, ap, Multinomial, NewSource(11))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	summary, err := SummarizeDays(days, ms)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	if len(summary) != len(hours) {
		t.Fatalf("got %d summary rows, want %d", len(summary), len(hours))
	}
	for _, hs := range summary {
		if hs.SimMean != 3 || math.Abs(hs.SimStd) > 1e-9 {
			t.Fatalf("hour %d: sim mean %v std %v, want 3 and 0", hs.Hour, hs.SimMean, hs.SimStd)
		}
		if hs.TargetCov != 0 {
			t.Fatalf("hour %d: target cov %v, want 0", hs.Hour, hs.TargetCov)
		}
		if hs.LevelMeans[0] != 0 || hs.LevelMeans[3] != 0 {
			t.Fatalf("hour %d: levels without mass got patients: %v", hs.Hour, hs.LevelMeans)
		}
		if sum := hs.LevelMeans[1] + hs.LevelMeans[2]; math.Abs(sum-3) > 1e-9 {
			t.Fatalf("hour %d: level means sum to %v, want 3", hs.Hour, sum)
		}
	}
}

func TestSummarizeDays_TracksTargetMean(t *testing.T) {
	ms, ap := fixtureDistributions(t)

	days, err := SimulateDays(400, ms, ap, Categorical, NewSource(12))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	summary, err := SummarizeDays(days, ms)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	for _, hs := range summary {
		// the zero clamp only lifts the mean, and only slightly at these rates
		if math.Abs(hs.SimMean-hs.TargetMean) > 0.25*hs.TargetStd+0.3 {
			t.Fatalf("hour %d: sim mean %.3f far from target %.3f", hs.Hour, hs.SimMean, hs.TargetMean)
		}
	}
}

func TestSummarizeDays_Mismatches(t *testing.T) {
	ms, ap := fixtureDistributions(t)

	if _, err := SummarizeDays(nil, ms); !errors.Is(err, ErrInputMismatch) {
		t.Fatalf("expected ErrInputMismatch for no days, got %v", err)
	}

	day, err := SimulateDay(ms, ap, Categorical, NewSource(13))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	day.Hours[0] = 99
	if _, err := SummarizeDays([]*SimulatedDay{day}, ms); !errors.Is(err, ErrInputMismatch) {
		t.Fatalf("expected ErrInputMismatch for shifted hours, got %v", err)
	}
}

func TestSummarizeDays_UndefinedCovIsNaN(t *testing.T) {
	ms := NewArrivalMeanStd([]int{0})
	ms.Values.SetRow(0, []float64{0, 0.2})
	ap := NewAcuityProportion([]int{0})
	ap.Proportions.SetRow(0, []float64{1, 0, 0, 0, 0, 0})

	days, err := SimulateDays(3, ms, ap, Categorical, NewSource(14))
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	summary, err := SummarizeDays(days, ms)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !math.IsNaN(summary[0].TargetCov) {
		t.Fatalf("target cov for zero mean and positive std = %v, want NaN", summary[0].TargetCov)
	}
}
