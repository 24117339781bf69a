package arrivalTool

import (
	"errors"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// SummarizeDays compares simulated hourly arrivals against the distribution
// that produced them. Coefficients of variation that cannot be formed (zero
// mean with a positive std) are reported as NaN.
func SummarizeDays(
	days []*SimulatedDay,
	ms *ArrivalMeanStd) ([]HourSummary, error) {

	if len(days) == 0 {
		return nil, mismatchf(-1, "", "no simulated days to summarize")
	}
	if err := ValidateMeanStd(ms); err != nil {
		return nil, err
	}
	for _, day := range days {
		if err := matchHours(ms.Hours, day.Hours, "total_arrivals"); err != nil {
			return nil, err
		}
	}

	summary := make([]HourSummary, len(ms.Hours))
	totals := stats.Sample{Xs: make([]float64, len(days))}
	levels := stats.Sample{Xs: make([]float64, len(days))}

	for i, hour := range ms.Hours {

		// collect simulated totals for the hour
		for d, day := range days {
			totals.Xs[d] = float64(day.Total[i])
		}

		hs := HourSummary{
			Hour:       hour,
			TargetMean: ms.Mean(i),
			TargetStd:  ms.Std(i),
			SimMean:    totals.Mean(),
			SimStd:     totals.StdDev(),
		}
		if len(days) == 1 {
			hs.SimStd = 0
		}
		hs.TargetCov = summaryCov(hs.TargetMean, hs.TargetStd, hour)
		hs.SimCov = summaryCov(hs.SimMean, hs.SimStd, hour)

		// average simulated arrivals per acuity level
		for k := 0; k < lvls; k++ {
			for d, day := range days {
				levels.Xs[d] = float64(day.Arrivals[i][k])
			}
			hs.LevelMeans[k] = levels.Mean()
		}

		summary[i] = hs
	}

	return summary, nil
}

func summaryCov(
	mean, std float64,
	hour int) float64 {

	cov, err := impliedCov(mean, std, hour)
	if errors.Is(err, ErrDivisionByZero) {
		return math.NaN()
	}

	return cov
}
