package arrivalTool

import (
	"gonum.org/v1/gonum/mat"
)

// NewHourlyAcuitySeries generator
func NewHourlyAcuitySeries(
	hours []int) *HourlyAcuitySeries {

	// allocate empty cumulative count matrix
	var (
		counts = mat.NewDense(len(hours), lvls, nil)
	)

	// return output
	return &HourlyAcuitySeries{
		Hours:  copyHours(hours),
		Counts: counts,
	}
}

// NewArrivalMeanStd generator
func NewArrivalMeanStd(
	hours []int) *ArrivalMeanStd {

	// allocate empty mean and std matrix
	var (
		values = mat.NewDense(len(hours), 2, nil)
	)

	// return output
	return &ArrivalMeanStd{
		Hours:  copyHours(hours),
		Values: values,
	}
}

// NewAcuityProportion generator
func NewAcuityProportion(
	hours []int) *AcuityProportion {

	// allocate empty proportion matrix
	var (
		proportions = mat.NewDense(len(hours), lvls, nil)
	)

	// return output
	return &AcuityProportion{
		Hours:       copyHours(hours),
		Proportions: proportions,
	}
}

// NewSimulatedDay generator
func NewSimulatedDay(
	hours []int) *SimulatedDay {

	// return output
	return &SimulatedDay{
		Hours:    copyHours(hours),
		Total:    make([]int, len(hours)),
		Arrivals: make([][lvls]int, len(hours)),
	}
}

// copyHours detaches an hour index from its caller
func copyHours(
	hours []int) []int {

	out := make([]int, len(hours))
	copy(out, hours)

	return out
}
