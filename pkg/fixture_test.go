package arrivalTool

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// cumulative share of arrivals at or below each acuity level
var fixtureShares = [lvls]float64{0.1, 0.3, 0.55, 0.8, 0.95, 1}

// hourly arrival totals, quiet overnight with a late morning peak
var fixtureTotals = []float64{6, 5, 4, 4, 3, 4, 5, 8, 15, 14, 13, 13, 12, 12, 11, 11, 10, 10, 10, 9, 9, 8, 7, 7}

func fixtureHours() []int {
	hours := make([]int, len(fixtureTotals))
	for h := range hours {
		hours[h] = h
	}
	return hours
}

// fixtureSeries returns cumulative a1-a6 series; hour 8 carries the counts
// 2, 5, 9, 12, 14, 15
func fixtureSeries() []*HourlySeries {
	hours := fixtureHours()
	series := make([]*HourlySeries, lvls)
	for k := range series {
		values := make([]float64, len(hours))
		for h, total := range fixtureTotals {
			values[h] = total * fixtureShares[k]
		}
		series[k] = &HourlySeries{Name: levelName("a", k), Hours: fixtureHours(), Values: values}
	}
	hourEight := [lvls]float64{2, 5, 9, 12, 14, 15}
	for k := range series {
		series[k].Values[8] = hourEight[k]
	}
	return series
}

func fixtureCov() *HourlySeries {
	hours := fixtureHours()
	values := make([]float64, len(hours))
	for h := range values {
		values[h] = 0.3 + 0.01*float64(h)
	}
	return &HourlySeries{Name: "cov", Hours: hours, Values: values}
}

func fixtureDistributions(t *testing.T) (*ArrivalMeanStd, *AcuityProportion) {
	t.Helper()

	combined, err := CombineArrivalSeries(fixtureSeries())
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	ms, err := ComputeMeanStd(combined.Total(), fixtureCov())
	if err != nil {
		t.Fatalf("mean/std: %v", err)
	}
	ap, err := ComputeAcuityProportions(combined)
	if err != nil {
		t.Fatalf("proportions: %v", err)
	}
	return ms, ap
}

// writeFixtureInputs writes the raw headerless inputs the build stage reads
func writeFixtureInputs(t *testing.T, dir string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	all := append(fixtureSeries(), fixtureCov())
	for _, s := range all {
		var b strings.Builder
		for i, h := range s.Hours {
			fmt.Fprintf(&b, "%d,%g\n", h, s.Values[i])
		}
		name := s.Name
		if name == "cov" {
			name = "a_cov"
		}
		if err := os.WriteFile(filepath.Join(dir, name+".csv"), []byte(b.String()), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}
