package arrivalTool

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"gopkg.in/cheggaaa/pb.v1"
)

// SimulateDay draws one day of hourly arrivals broken out by acuity level.
// Inputs are validated before any sampling takes place.
func SimulateDay(
	ms *ArrivalMeanStd,
	ap *AcuityProportion,
	method AcuityMethod,
	src rand.Source) (*SimulatedDay, error) {

	if err := ValidateSimulationInputs(ms, ap, method); err != nil {
		return nil, err
	}

	return simulateDay(ms, ap, method, src)
}

// SimulateDays draws n independent days from the same random source
func SimulateDays(
	n int,
	ms *ArrivalMeanStd,
	ap *AcuityProportion,
	method AcuityMethod,
	src rand.Source) ([]*SimulatedDay, error) {

	if n < 1 {
		return nil, fmt.Errorf("simulate days: day count must be positive, got %d", n)
	}
	if err := ValidateSimulationInputs(ms, ap, method); err != nil {
		return nil, err
	}

	// allocate status bar
	bar := pb.StartNew(n)
	bar.ShowTimeLeft = false

	days := make([]*SimulatedDay, 0, n)
	for d := 0; d < n; d++ {
		day, err := simulateDay(ms, ap, method, src)
		if err != nil {
			return nil, fmt.Errorf("simulate day %d: %w", d, err)
		}
		days = append(days, day)

		// increment status bar
		bar.Increment()
	}

	// close status bar
	bar.FinishPrint("\tDaily Arrivals Simulated")

	return days, nil
}

// ValidateSimulationInputs checks that the two tables share an hour index,
// hold valid distributions and that every hour able to produce patients has
// acuity proportions to assign them with
func ValidateSimulationInputs(
	ms *ArrivalMeanStd,
	ap *AcuityProportion,
	method AcuityMethod) error {

	if method != Categorical && method != Multinomial {
		return invalidf(-1, "", "unknown acuity method %d", int(method))
	}
	if err := ValidateMeanStd(ms); err != nil {
		return err
	}
	if err := ValidateProportions(ap); err != nil {
		return err
	}
	if err := matchHours(ms.Hours, ap.Hours, "acuity"); err != nil {
		return err
	}
	for i, hour := range ms.Hours {
		if ms.Mean(i) == 0 && ms.Std(i) == 0 {
			continue
		}
		empty := true
		for _, p := range ap.Row(i) {
			if p != 0 {
				empty = false
				break
			}
		}
		if empty {
			return invalidf(hour, "", "arrivals expected but acuity proportions are all zero")
		}
	}

	return nil
}

func simulateDay(
	ms *ArrivalMeanStd,
	ap *AcuityProportion,
	method AcuityMethod,
	src rand.Source) (*SimulatedDay, error) {

	// allocate output day
	day := NewSimulatedDay(ms.Hours)

	for i, hour := range ms.Hours {

		// draw hourly patient count
		count := SampleHourCount(ms.Mean(i), ms.Std(i), src)

		// assign acuity levels
		counts, err := SampleHourAcuities(count, ap.Row(i), method, src)
		if err != nil {
			var de *DistributionError
			if errors.As(err, &de) {
				de.Hour = hour
			}
			return nil, err
		}

		day.Total[i] = count
		day.Arrivals[i] = counts
	}

	return day, nil
}
