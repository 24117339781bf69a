package arrivalTool

import (
	"errors"
	"log"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// ProportionTolerance bounds how far a row of acuity proportions may drift
// from 1 after being rounded to prec decimal places and read back
const ProportionTolerance = 1e-3

// CombineArrivalSeries function
func CombineArrivalSeries(
	series []*HourlySeries) (*HourlyAcuitySeries, error) {

	// check acuity level count
	if len(series) != lvls {
		return nil, mismatchf(-1, "", "expected %d acuity level series, got %d", lvls, len(series))
	}

	// use the first level as the reference hour index
	hours := series[0].Hours
	if len(hours) == 0 {
		return nil, mismatchf(-1, seriesName(series[0], 0), "series has no hours")
	}

	// check every level against the reference index
	for k, s := range series {
		name := seriesName(s, k)
		if len(s.Values) != len(s.Hours) {
			return nil, mismatchf(-1, name, "%d hours but %d values", len(s.Hours), len(s.Values))
		}
		if len(s.Hours) != len(hours) {
			return nil, mismatchf(-1, name, "%d hours, expected %d", len(s.Hours), len(hours))
		}
		if err := matchHours(hours, s.Hours, name); err != nil {
			return nil, err
		}
	}

	// allocate combined series
	combined := NewHourlyAcuitySeries(hours)

	// write each level into its column
	for k, s := range series {
		combined.Counts.SetCol(k, s.Values)
	}

	return combined, nil
}

// ComputeMeanStd function
func ComputeMeanStd(
	total, cov *HourlySeries) (*ArrivalMeanStd, error) {

	// hour indexes must agree
	if len(total.Values) != len(total.Hours) {
		return nil, mismatchf(-1, "mean", "%d hours but %d values", len(total.Hours), len(total.Values))
	}
	if len(cov.Values) != len(cov.Hours) {
		return nil, mismatchf(-1, "cov", "%d hours but %d values", len(cov.Hours), len(cov.Values))
	}
	if len(total.Hours) != len(cov.Hours) {
		return nil, mismatchf(-1, "cov", "%d hours, expected %d", len(cov.Hours), len(total.Hours))
	}
	if len(total.Hours) == 0 {
		return nil, mismatchf(-1, "mean", "series has no hours")
	}
	if err := matchHours(total.Hours, cov.Hours, "cov"); err != nil {
		return nil, err
	}

	// scale hourly means by the coefficient of variation
	stds := make([]float64, len(total.Values))
	floats.MulTo(stds, total.Values, cov.Values)

	// allocate output table
	ms := NewArrivalMeanStd(total.Hours)
	ms.Values.SetCol(0, total.Values)
	ms.Values.SetCol(1, stds)

	if err := ValidateMeanStd(ms); err != nil {
		return nil, err
	}

	return ms, nil
}

// ComputeAcuityProportions function
//
// Cumulative counts are decoded by successive differences, so column k of the
// result is (a(k+1) - a(k)) / a6. An hour with no arrivals gets a row of zeros.
func ComputeAcuityProportions(
	series *HourlyAcuitySeries) (*AcuityProportion, error) {

	// allocate output table
	ap := NewAcuityProportion(series.Hours)

	// allocate per hour buffers
	row := make([]float64, lvls)
	diff := make([]float64, lvls)

	for i, hour := range series.Hours {

		// decode cumulative counts into exclusive counts
		mat.Row(row, i, series.Counts)
		diff[0] = row[0]
		for k := 1; k < lvls; k++ {
			diff[k] = row[k] - row[k-1]
		}

		// cumulative ordering must hold
		for k, d := range diff {
			if math.IsNaN(d) || d < 0 {
				return nil, invalidf(hour, levelName("a", k), "cumulative count %g below previous level", row[k])
			}
		}

		// divide through by total arrivals, the row stays zero when there are none
		total := row[lvls-1]
		for k, d := range diff {
			p, err := ratio(d, total, hour, levelName("pa", k))
			if errors.Is(err, ErrDivisionByZero) {
				log.Printf("\tHour %d has no arrivals, acuity proportions set to zero", hour)
				break
			}
			ap.Proportions.Set(i, k, p)
		}
	}

	return ap, nil
}

// CumulativeProportions function
func CumulativeProportions(
	ap *AcuityProportion) *AcuityProportion {

	// allocate output table
	cp := NewAcuityProportion(ap.Hours)

	// running sum across acuity levels per hour
	sum := make([]float64, lvls)
	for i := range ap.Hours {
		floats.CumSum(sum, ap.Row(i))
		cp.Proportions.SetRow(i, sum)
	}

	return cp
}

// ImpliedCoefficientOfVariation returns std / mean for every hour of ms.
// Hours with zero mean and zero std report zero.
func ImpliedCoefficientOfVariation(
	ms *ArrivalMeanStd) ([]float64, error) {

	covs := make([]float64, len(ms.Hours))
	for i, hour := range ms.Hours {
		cov, err := impliedCov(ms.Mean(i), ms.Std(i), hour)
		if err != nil {
			return nil, err
		}
		covs[i] = cov
	}

	return covs, nil
}

// ValidateMeanStd checks the shape of ms and that every mean and std is a
// finite non-negative number
func ValidateMeanStd(
	ms *ArrivalMeanStd) error {

	if ms == nil || ms.Values == nil {
		return mismatchf(-1, "", "mean/std table is empty")
	}
	rows, cols := ms.Values.Dims()
	if rows != len(ms.Hours) || cols != 2 {
		return mismatchf(-1, "", "mean/std table is %dx%d for %d hours", rows, cols, len(ms.Hours))
	}
	for i, hour := range ms.Hours {
		if v := ms.Mean(i); !finiteNonNegative(v) {
			return invalidf(hour, "mean", "mean %g is not a non-negative number", v)
		}
		if v := ms.Std(i); !finiteNonNegative(v) {
			return invalidf(hour, "std", "std %g is not a non-negative number", v)
		}
	}

	return nil
}

// ValidateProportions checks that every row of ap is non-negative and sums
// to 1 within ProportionTolerance, or is entirely zero
func ValidateProportions(
	ap *AcuityProportion) error {

	if ap == nil || ap.Proportions == nil {
		return mismatchf(-1, "", "acuity proportion table is empty")
	}
	rows, cols := ap.Proportions.Dims()
	if rows != len(ap.Hours) || cols != lvls {
		return mismatchf(-1, "", "acuity proportion table is %dx%d for %d hours", rows, cols, len(ap.Hours))
	}
	for i, hour := range ap.Hours {
		row := ap.Row(i)
		for k, p := range row {
			if !finiteNonNegative(p) {
				return invalidf(hour, levelName("pa", k), "proportion %g is not a non-negative number", p)
			}
		}
		sum := floats.Sum(row)
		if sum != 0 && !scalar.EqualWithinAbs(sum, 1, ProportionTolerance) {
			return invalidf(hour, "", "proportions sum to %.6f", sum)
		}
	}

	return nil
}

// ratio divides num by den, refusing a zero denominator
func ratio(
	num, den float64,
	hour int,
	column string) (float64, error) {

	if den == 0 {
		return 0, zeroDivf(hour, column, "%g / 0", num)
	}

	return num / den, nil
}

// impliedCov recovers the coefficient of variation of one hour
func impliedCov(
	mean, std float64,
	hour int) (float64, error) {

	if mean == 0 && std == 0 {
		return 0, nil
	}

	return ratio(std, mean, hour, "cov")
}

// matchHours reports the first row at which got departs from want
func matchHours(
	want, got []int,
	column string) error {

	if len(want) != len(got) {
		return mismatchf(-1, column, "%d hours, expected %d", len(got), len(want))
	}
	for i := range want {
		if want[i] != got[i] {
			return mismatchf(want[i], column, "row %d has hour %d", i, got[i])
		}
	}

	return nil
}

func seriesName(
	s *HourlySeries,
	k int) string {

	if s.Name != "" {
		return s.Name
	}

	return levelName("a", k)
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
